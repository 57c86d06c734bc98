// Package config loads environment variables into typed structs using Go generics.
// Each configuration type is parsed once and cached for subsequent calls.
//
// A .env file in the working directory is loaded on first use through joho/godotenv;
// variables already present in the environment take precedence. Parsing uses the
// caarlos0/env struct tags.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/viewrouter/core/config"
//
//	type RoutesConfig struct {
//		RoutesFile  string `env:"ROUTES_FILE"`
//		BasePath    string `env:"BASE_URL" envDefault:"/"`
//		StrictSlash bool   `env:"ROUTES_STRICT_SLASH" envDefault:"false"`
//	}
//
//	var cfg RoutesConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure at startup
//	config.MustLoad(&cfg)
//
// # Caching Behavior
//
// The first Load of a type reads the environment; later loads of the same type
// return the cached value even if the environment changed in between. Different
// types are cached independently, so admin.Config and a test-only struct never
// share an entry.
package config
