package routefile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/viewrouter/core/registry"
	"github.com/dmitrymomot/viewrouter/core/routefile"
)

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want routefile.Format
	}{
		{"routes.yaml", routefile.FormatYAML},
		{"routes.YML", routefile.FormatYAML},
		{"conf/routes.toml", routefile.FormatTOML},
		{"routes.json", routefile.FormatJSON},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			got, err := routefile.FormatFromPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := routefile.FormatFromPath("routes.ini")
	assert.ErrorIs(t, err, routefile.ErrUnsupportedFormat)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		file, err := routefile.Load("testdata/routes.yaml")
		require.NoError(t, err)

		assert.Equal(t, "/panel", file.Base)
		require.Len(t, file.Routes, 5)
		assert.Equal(t, "/admin/productos/crear", file.Routes[2].Path)
		assert.Equal(t, "crear productos", file.Routes[2].Name)
		assert.Equal(t, "ProductsCreate", file.Routes[2].Component)
	})

	t.Run("toml", func(t *testing.T) {
		t.Parallel()

		file, err := routefile.Load("testdata/routes.toml")
		require.NoError(t, err)

		assert.Equal(t, "/panel", file.Base)
		require.Len(t, file.Routes, 3)
		assert.Equal(t, "ClientEdit", file.Routes[2].Name)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		file, err := routefile.Load("testdata/routes.json")
		require.NoError(t, err)

		assert.Empty(t, file.Base)
		require.Len(t, file.Routes, 2)
		assert.Equal(t, "/admin/facturas/:id", file.Routes[1].Path)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := routefile.Load("testdata/missing.yaml")
		assert.Error(t, err)
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown yaml fields", func(t *testing.T) {
		t.Parallel()

		src := "routes:\n  - path: /\n    component: Home\n    title: Home\n"
		_, err := routefile.Decode(strings.NewReader(src), routefile.FormatYAML)
		assert.Error(t, err)
	})

	t.Run("rejects unknown toml fields", func(t *testing.T) {
		t.Parallel()

		src := "[[routes]]\npath = \"/\"\ncomponent = \"Home\"\nguard = true\n"
		_, err := routefile.Decode(strings.NewReader(src), routefile.FormatTOML)
		assert.Error(t, err)
	})

	t.Run("rejects unknown json fields", func(t *testing.T) {
		t.Parallel()

		src := `{"routes":[{"path":"/","component":"Home","meta":{}}]}`
		_, err := routefile.Decode(strings.NewReader(src), routefile.FormatJSON)
		assert.Error(t, err)
	})

	t.Run("empty yaml is an empty table", func(t *testing.T) {
		t.Parallel()

		file, err := routefile.Decode(strings.NewReader(""), routefile.FormatYAML)
		require.NoError(t, err)
		assert.Empty(t, file.Routes)
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		src := "routes:\n  - component: Home\n"
		_, err := routefile.Decode(strings.NewReader(src), routefile.FormatYAML)
		assert.ErrorIs(t, err, routefile.ErrMissingPath)
	})

	t.Run("missing component", func(t *testing.T) {
		t.Parallel()

		src := "routes:\n  - path: /login\n"
		_, err := routefile.Decode(strings.NewReader(src), routefile.FormatYAML)
		assert.ErrorIs(t, err, routefile.ErrMissingComponent)
	})

	t.Run("unsupported format", func(t *testing.T) {
		t.Parallel()

		_, err := routefile.Decode(strings.NewReader(""), routefile.Format("xml"))
		assert.ErrorIs(t, err, routefile.ErrUnsupportedFormat)
	})
}

func TestDefinitions(t *testing.T) {
	t.Parallel()

	file, err := routefile.Load("testdata/routes.yaml")
	require.NoError(t, err)

	defs := file.Definitions()
	require.Len(t, defs, 5)

	assert.Equal(t, registry.Definition[string]{Path: "/", Name: "root", Handle: "IndexView"}, defs[0])
	assert.Equal(t, "productos", defs[1].Name)
	assert.Equal(t, "IndexViewCustomer", defs[3].Handle)

	t.Run("derives names from paths", func(t *testing.T) {
		t.Parallel()

		f := &routefile.File{Routes: []routefile.Entry{
			{Path: "/admin/productos/crear", Component: "ProductsCreate"},
			{Path: "/admin/facturas/:id", Component: "InvoiceShow"},
			{Path: "/Admin/Categorías/", Component: "CategoryIndex"},
		}}
		defs := f.Definitions()
		assert.Equal(t, "admin.productos.crear", defs[0].Name)
		assert.Equal(t, "admin.facturas.:id", defs[1].Name)
		assert.Equal(t, "Admin.Categorias", defs[2].Name)
	})

	t.Run("derived names stay distinct", func(t *testing.T) {
		t.Parallel()

		f := &routefile.File{Routes: []routefile.Entry{
			{Path: "/x/:id", Component: "A"},
			{Path: "/x/id", Component: "B"},
			{Path: "/X/id", Component: "C"},
			{Path: "/a b", Component: "D"},
			{Path: "/a-b", Component: "E"},
			{Path: "/login", Name: "login", Component: "F"},
			{Path: "/Login", Component: "G"},
			{Path: "/auth/login", Name: "Login", Component: "H"},
		}}
		defs := f.Definitions()

		names := make([]string, 0, len(defs))
		for _, d := range defs {
			names = append(names, d.Name)
		}
		assert.Equal(t, []string{"x.:id", "x.id", "X.id", "a-b", "a-b~2", "login", "Login~2", "Login"}, names)

		r := registry.New[string]()
		require.NoError(t, r.Register(defs))

		rt, ok := r.Lookup("x.id")
		require.True(t, ok)
		assert.Equal(t, "/x/id", rt.Path())

		m, err := r.Resolve("/X/id")
		require.NoError(t, err)
		assert.Equal(t, "C", m.Route.Handle())
	})

	t.Run("registers into a registry", func(t *testing.T) {
		t.Parallel()

		r := registry.New(registry.WithBasePath[string](file.Base))
		require.NoError(t, r.Register(defs))

		m, err := r.Resolve("/panel/admin/clientes/editar/7")
		require.NoError(t, err)
		assert.Equal(t, "ClientEdit", m.Route.Name())
		assert.Equal(t, "CustomerEdit", m.Route.Handle())
		assert.Equal(t, registry.Params{"id": "7"}, m.Params)
	})
}
