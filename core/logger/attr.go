package logger

import (
	"log/slog"
	"sort"
)

// Attribute helpers return the empty Attr for missing values, so calls like
// log.Debug("msg", logger.Error(err)) need no nil checks.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ============================================================================
// Routing
// ============================================================================

// Route creates an attribute for a route name.
func Route(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("route", name)
}

// Pattern creates an attribute for a route pattern.
func Pattern(pattern string) slog.Attr {
	return slog.String("pattern", pattern)
}

// Path creates an attribute for a location path.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Params groups route parameters under the key "params", sorted by name.
func Params(params map[string]string) slog.Attr {
	if len(params) == 0 {
		return slog.Attr{}
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	as := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		as = append(as, slog.String(k, params[k]))
	}
	return Group("params", as...)
}

// ============================================================================
// Generic Metadata
// ============================================================================

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Action creates an attribute for action names.
func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// Result creates an attribute for operation results.
func Result(result string) slog.Attr {
	return slog.String("result", result)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Key creates a generic key-value attribute.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}
