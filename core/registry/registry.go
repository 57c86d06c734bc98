package registry

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"sync/atomic"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/viewrouter/core/logger"
)

// Params maps parameter names to their values.
type Params map[string]string

// Match is the result of resolving a location.
type Match[H any] struct {
	Route    *Route[H]
	Params   Params
	Query    url.Values
	Fragment string
}

// table is the immutable snapshot swapped in by Register.
type table[H any] struct {
	routes []*Route[H]
	byName map[string]*Route[H]
}

// Registry holds an ordered route table and resolves locations against it.
// Reads never lock; Register swaps the whole table atomically.
type Registry[H any] struct {
	active      atomic.Pointer[table[H]]
	logger      *slog.Logger
	basePath    string
	strictSlash bool
}

// New creates an empty registry with the given options.
func New[H any](opts ...Option[H]) *Registry[H] {
	r := &Registry[H]{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}

	for _, opt := range opts {
		opt(r)
	}

	r.active.Store(&table[H]{byName: map[string]*Route[H]{}})
	return r
}

// Register compiles defs and replaces the active table with them.
// Definition order is match priority. On error the previous table stays active.
func (r *Registry[H]) Register(defs []Definition[H]) error {
	t := &table[H]{
		routes: make([]*Route[H], 0, len(defs)),
		byName: make(map[string]*Route[H], len(defs)),
	}

	for _, def := range defs {
		rt, err := compile(def, r.strictSlash)
		if err != nil {
			return err
		}
		if prev, exists := t.byName[rt.name]; exists {
			return fmt.Errorf("%w: '%s' used by '%s' and '%s'", ErrDuplicateName, rt.name, prev.path, rt.path)
		}
		t.byName[rt.name] = rt
		t.routes = append(t.routes, rt)
	}

	r.active.Store(t)
	for _, rt := range t.routes {
		r.logger.Debug("route compiled",
			logger.Component("registry"),
			logger.Action("register"),
			logger.Route(rt.name),
			logger.Pattern(rt.path),
		)
	}
	r.logger.Debug("route table registered",
		logger.Component("registry"),
		logger.Action("register"),
		logger.Count("routes", len(t.routes)),
	)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry[H]) MustRegister(defs []Definition[H]) {
	if err := r.Register(defs); err != nil {
		panic(err)
	}
}

// Resolve finds the first route whose pattern matches path and extracts its parameters.
// The query string and fragment are split off and returned with the match.
func (r *Registry[H]) Resolve(path string) (Match[H], error) {
	loc, rawQuery, fragment := splitLocation(path)

	segments, ok := r.segments(loc)
	if ok {
		for _, rt := range r.active.Load().routes {
			params, matched := rt.match(segments)
			if !matched {
				continue
			}
			query, err := url.ParseQuery(rawQuery)
			if err != nil {
				r.logger.Debug("malformed query string",
					logger.Component("registry"),
					logger.Path(path),
					logger.Error(err),
				)
			}
			return Match[H]{Route: rt, Params: params, Query: query, Fragment: fragment}, nil
		}
	}

	r.logger.Debug("no route matched",
		logger.Component("registry"),
		logger.Action("resolve"),
		logger.Result("not_found"),
		logger.Path(path),
	)
	return Match[H]{}, fmt.Errorf("%w: '%s'", ErrNotFound, path)
}

// Reverse builds the location of the named route, substituting params into its pattern.
// Extra params are ignored.
func (r *Registry[H]) Reverse(name string, params Params) (string, error) {
	rt, ok := r.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: '%s'", ErrUnknownRoute, name)
	}

	var b strings.Builder
	b.WriteString(r.basePath)
	for _, seg := range rt.segments {
		b.WriteByte('/')
		if !seg.Param {
			b.WriteString(url.PathEscape(seg.Value))
			continue
		}
		v := params[seg.Value]
		if v == "" {
			return "", fmt.Errorf("%w: %w: '%s' requires '%s'", ErrUnknownRoute, ErrMissingParam, name, seg.Value)
		}
		b.WriteString(url.PathEscape(v))
	}

	if len(rt.segments) == 0 {
		b.WriteByte('/')
	}
	return b.String(), nil
}

// Lookup returns the route registered under name.
func (r *Registry[H]) Lookup(name string) (*Route[H], bool) {
	rt, ok := r.active.Load().byName[name]
	return rt, ok
}

// Routes returns the registered routes in match priority order.
func (r *Registry[H]) Routes() []*Route[H] {
	routes := r.active.Load().routes
	out := make([]*Route[H], len(routes))
	copy(out, routes)
	return out
}

// Len returns the number of registered routes.
func (r *Registry[H]) Len() int {
	return len(r.active.Load().routes)
}

// segments strips the base path and splits loc into decoded segments.
// It reports false when loc cannot match any route.
func (r *Registry[H]) segments(loc string) ([]string, bool) {
	if loc == "" {
		loc = "/"
	}

	if r.basePath != "" {
		rest, found := strings.CutPrefix(loc, r.basePath)
		if !found || (rest != "" && rest[0] != '/') {
			return nil, false
		}
		loc = rest
		if loc == "" {
			loc = "/"
		}
	}

	if loc[0] != '/' {
		return nil, false
	}
	// Drop one trailing slash, but never out of a run of slashes: "//" and
	// "/login//" keep their empty segments and cannot match.
	if !r.strictSlash && len(loc) > 1 && loc[len(loc)-1] == '/' && loc[len(loc)-2] != '/' {
		loc = loc[:len(loc)-1]
	}

	raw := splitPath(loc)
	for i, seg := range raw {
		decoded, err := url.PathUnescape(seg)
		if err != nil {
			return nil, false
		}
		raw[i] = decoded
	}
	return raw, true
}

// match compares decoded path segments against the route pattern.
// Literals compare in NFC form; parameters bind the decoded value as is.
func (rt *Route[H]) match(segments []string) (Params, bool) {
	if len(segments) != len(rt.segments) {
		return nil, false
	}

	for i, seg := range rt.segments {
		if seg.Param {
			if segments[i] == "" {
				return nil, false
			}
			continue
		}
		if norm.NFC.String(segments[i]) != seg.Value {
			return nil, false
		}
	}

	params := make(Params, len(rt.params))
	for i, seg := range rt.segments {
		if seg.Param {
			params[seg.Value] = segments[i]
		}
	}
	return params, true
}

// splitLocation separates path, raw query and fragment.
func splitLocation(location string) (path, query, fragment string) {
	path, fragment, _ = strings.Cut(location, "#")
	path, query, _ = strings.Cut(path, "?")
	return path, query, fragment
}
