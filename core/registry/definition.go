package registry

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// paramPrefix marks a named parameter segment, e.g. ":id".
const paramPrefix = ':'

// Definition is a route as declared in a static table.
// Handle is an opaque reference to the view to render; the registry never inspects it.
type Definition[H any] struct {
	Path   string
	Name   string
	Handle H
}

// Segment is a single compiled segment of a route pattern.
type Segment struct {
	// Value is the literal text, or the parameter name when Param is true.
	Value string
	Param bool
}

// String returns the segment as written in a pattern.
func (s Segment) String() string {
	if s.Param {
		return string(paramPrefix) + s.Value
	}
	return s.Value
}

// Route is a compiled, immutable route definition.
type Route[H any] struct {
	name     string
	path     string
	segments []Segment
	params   []string
	handle   H
}

// Name returns the unique route name.
func (r *Route[H]) Name() string { return r.name }

// Path returns the pattern as it was registered.
func (r *Route[H]) Path() string { return r.path }

// Handle returns the opaque view reference.
func (r *Route[H]) Handle() H { return r.handle }

// Segments returns a copy of the compiled pattern segments.
func (r *Route[H]) Segments() []Segment {
	out := make([]Segment, len(r.segments))
	copy(out, r.segments)
	return out
}

// Params returns the parameter names in pattern order.
func (r *Route[H]) Params() []string {
	out := make([]string, len(r.params))
	copy(out, r.params)
	return out
}

// compile validates a definition and splits its pattern into segments.
func compile[H any](def Definition[H], strictSlash bool) (*Route[H], error) {
	if def.Name == "" {
		return nil, fmt.Errorf("%w: path '%s'", ErrEmptyName, def.Path)
	}
	if !strings.HasPrefix(def.Path, "/") {
		return nil, fmt.Errorf("%w: '%s' must begin with '/'", ErrInvalidPattern, def.Path)
	}

	raw := splitPath(def.Path)
	segments := make([]Segment, 0, len(raw))
	var params []string
	seen := make(map[string]struct{})

	for i, seg := range raw {
		if seg == "" {
			// A single trailing slash is allowed. Strict registries keep it as an
			// empty literal segment so it must be present in the location too.
			if i == len(raw)-1 {
				if strictSlash {
					segments = append(segments, Segment{})
				}
				continue
			}
			return nil, fmt.Errorf("%w: '%s' has an empty segment", ErrInvalidPattern, def.Path)
		}

		if seg[0] != paramPrefix {
			segments = append(segments, Segment{Value: norm.NFC.String(seg)})
			continue
		}

		key := seg[1:]
		if key == "" {
			return nil, fmt.Errorf("%w: '%s' has an unnamed parameter", ErrInvalidPattern, def.Path)
		}
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: '%s' has duplicate key '%s'", ErrDuplicateParam, def.Path, key)
		}
		seen[key] = struct{}{}
		params = append(params, key)
		segments = append(segments, Segment{Value: key, Param: true})
	}

	return &Route[H]{
		name:     def.Name,
		path:     def.Path,
		segments: segments,
		params:   params,
		handle:   def.Handle,
	}, nil
}

// splitPath splits a path on '/' without the leading slash.
// The root path yields no segments.
func splitPath(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
