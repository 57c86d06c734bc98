package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/viewrouter/core/config"
)

type routesConfig struct {
	File   string `env:"CONFIG_TEST_ROUTES_FILE"`
	Base   string `env:"CONFIG_TEST_BASE_URL" envDefault:"/"`
	Strict bool   `env:"CONFIG_TEST_STRICT" envDefault:"false"`
}

type requiredConfig struct {
	Secret string `env:"CONFIG_TEST_REQUIRED_SECRET,required"`
}

type cachedConfig struct {
	Name string `env:"CONFIG_TEST_CACHED_NAME" envDefault:"first"`
}

func TestLoad(t *testing.T) {
	t.Run("parses environment with defaults", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_ROUTES_FILE", "routes.yaml")
		t.Setenv("CONFIG_TEST_STRICT", "true")

		var cfg routesConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "routes.yaml", cfg.File)
		assert.Equal(t, "/", cfg.Base)
		assert.True(t, cfg.Strict)
	})

	t.Run("returns error for missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CONFIG_TEST_REQUIRED_SECRET")
	})

	t.Run("caches per type", func(t *testing.T) {
		var first cachedConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "first", first.Name)

		t.Setenv("CONFIG_TEST_CACHED_NAME", "second")

		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Name)
	})

	t.Run("rejects non-struct targets", func(t *testing.T) {
		var s string
		assert.ErrorIs(t, config.Load(&s), config.ErrNotStructPointer)

		var nilCfg *routesConfig
		assert.ErrorIs(t, config.Load(nilCfg), config.ErrNotStructPointer)
	})
}

func TestMustLoad(t *testing.T) {
	type mustConfig struct {
		Value string `env:"CONFIG_TEST_MUST_VALUE,required"`
	}

	assert.Panics(t, func() {
		var cfg mustConfig
		config.MustLoad(&cfg)
	})
}
