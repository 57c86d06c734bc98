// Package routefile loads static route tables from YAML, TOML or JSON files.
//
// A route file lists the definitions a registry is populated with at startup:
//
//	base: /panel
//	routes:
//	  - path: /admin/clientes/editar/:id
//	    name: ClientEdit
//	    component: ClientEdit
//
// Entries without a name get one derived from their path, so "/admin/productos/crear"
// is registered as "admin.productos.crear", "/admin/facturas/:id" as
// "admin.facturas.:id" and "/" as "root".
package routefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/viewrouter/core/registry"
	"github.com/dmitrymomot/viewrouter/pkg/slug"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported route file format")
	ErrMissingPath       = errors.New("route entry has no path")
	ErrMissingComponent  = errors.New("route entry has no component")
)

const (
	// rootName is the derived name of the "/" route.
	rootName = "root"
	// nameSeparator joins segments of a derived name.
	nameSeparator = "."
)

// Format identifies a route file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, path)
	}
}

// Entry is a single route as written in a file.
type Entry struct {
	Path      string `yaml:"path" toml:"path" json:"path"`
	Name      string `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Component string `yaml:"component" toml:"component" json:"component"`
}

// File is a decoded route file.
type File struct {
	Base   string  `yaml:"base,omitempty" toml:"base,omitempty" json:"base,omitempty"`
	Routes []Entry `yaml:"routes" toml:"routes" json:"routes"`
}

// Load reads and decodes the route file at path.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open route file: %w", err)
	}
	defer f.Close()

	file, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Decode parses a route file in the given format. Unknown fields are rejected.
func Decode(r io.Reader, format Format) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read route file: %w", err)
	}

	var file File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, format)
	}

	if err := file.validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

func (f *File) validate() error {
	for i, e := range f.Routes {
		if e.Path == "" {
			return fmt.Errorf("%w: entry %d", ErrMissingPath, i)
		}
		if e.Component == "" {
			return fmt.Errorf("%w: entry %d '%s'", ErrMissingComponent, i, e.Path)
		}
	}
	return nil
}

// Definitions converts the entries to registry definitions, in file order.
// The component becomes the route handle. Derived names never collide with
// another name in the file; a taken name gets a numeric suffix.
func (f *File) Definitions() []registry.Definition[string] {
	taken := make(map[string]struct{}, len(f.Routes))
	for _, e := range f.Routes {
		if e.Name != "" {
			taken[e.Name] = struct{}{}
		}
	}

	defs := make([]registry.Definition[string], 0, len(f.Routes))
	for _, e := range f.Routes {
		name := e.Name
		if name == "" {
			name = unique(deriveName(e.Path), taken)
			taken[name] = struct{}{}
		}
		defs = append(defs, registry.Definition[string]{
			Path:   e.Path,
			Name:   name,
			Handle: e.Component,
		})
	}
	return defs
}

// deriveName builds a case-preserving name from a path: each literal segment is
// slugged and parameters keep their marker, so "/admin/facturas/:id" becomes
// "admin.facturas.:id" and never equals "/admin/facturas/id".
func deriveName(path string) string {
	parts := make([]string, 0, strings.Count(path, "/"))
	for _, seg := range strings.Split(strings.Trim(path, "/"), "/") {
		switch {
		case seg == "":
			continue
		case seg[0] == ':':
			parts = append(parts, ":"+slug.Make(seg[1:], slug.Lowercase(false), slug.Separator("_")))
		default:
			if s := slug.Make(seg, slug.Lowercase(false)); s != "" {
				parts = append(parts, s)
			} else {
				parts = append(parts, url.PathEscape(seg))
			}
		}
	}
	if len(parts) == 0 {
		return rootName
	}
	return strings.Join(parts, nameSeparator)
}

func unique(name string, taken map[string]struct{}) string {
	if _, ok := taken[name]; !ok {
		return name
	}
	for i := 2; ; i++ {
		candidate := name + "~" + strconv.Itoa(i)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}
