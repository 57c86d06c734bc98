package registry_test

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/viewrouter/core/registry"
)

func Example() {
	r := registry.New[string]()
	r.MustRegister([]registry.Definition[string]{
		{Path: "/admin/clientes", Name: "ClientIndex", Handle: "IndexViewCustomer"},
		{Path: "/admin/clientes/crear", Name: "ClientCreate", Handle: "CustomerCreate"},
		{Path: "/admin/clientes/editar/:id", Name: "ClientEdit", Handle: "CustomerEdit"},
	})

	m, _ := r.Resolve("/admin/clientes/editar/42")
	fmt.Println(m.Route.Name(), m.Route.Handle(), m.Params["id"])

	path, _ := r.Reverse("ClientCreate", nil)
	fmt.Println(path)

	_, err := r.Resolve("/unknown/path")
	fmt.Println(errors.Is(err, registry.ErrNotFound))

	// Output:
	// ClientEdit CustomerEdit 42
	// /admin/clientes/crear
	// true
}
