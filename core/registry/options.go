package registry

import (
	"log/slog"
	"strings"
)

// Option configures a Registry during creation.
type Option[H any] func(*Registry[H])

// WithLogger sets a custom logger for the registry.
func WithLogger[H any](logger *slog.Logger) Option[H] {
	return func(r *Registry[H]) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithBasePath sets the path prefix every location lives under.
// Resolve strips it and Reverse prepends it. "/" and "" mean no prefix.
func WithBasePath[H any](base string) Option[H] {
	return func(r *Registry[H]) {
		r.basePath = normalizeBase(base)
	}
}

// WithStrictSlash makes a trailing slash significant on both sides.
// "/admin/clientes/" no longer resolves to the "/admin/clientes" route, and a
// pattern registered as "/admin/" keeps its slash: it resolves only "/admin/"
// and reverses to "/admin/". Without strict mode a pattern's trailing slash is
// dropped at registration.
func WithStrictSlash[H any](strict bool) Option[H] {
	return func(r *Registry[H]) {
		r.strictSlash = strict
	}
}

func normalizeBase(base string) string {
	base = strings.TrimRight(base, "/")
	if base == "" {
		return ""
	}
	if base[0] != '/' {
		base = "/" + base
	}
	return base
}
