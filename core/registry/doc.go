// Package registry provides an ordered, declarative route table for client-side views.
// It resolves location paths to route definitions with extracted parameters and
// builds locations back from route names.
//
// # Features
//
//   - Ordered matching: the first registered pattern that fits wins
//   - Named parameter segments (":id") with percent-decoding
//   - Reverse lookup by route name with parameter substitution
//   - Opaque, type-safe view handles through generics
//   - Base path support mirroring a history router's base URL
//   - Lock-free reads; Register swaps the whole table atomically
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/viewrouter/core/registry"
//
//	r := registry.New[string]()
//	r.MustRegister([]registry.Definition[string]{
//		{Path: "/admin/clientes", Name: "ClientIndex", Handle: "IndexViewCustomer"},
//		{Path: "/admin/clientes/crear", Name: "ClientCreate", Handle: "CustomerCreate"},
//		{Path: "/admin/clientes/editar/:id", Name: "ClientEdit", Handle: "CustomerEdit"},
//	})
//
//	m, err := r.Resolve("/admin/clientes/editar/42")
//	if errors.Is(err, registry.ErrNotFound) {
//		// render a not-found view
//	}
//	view := m.Route.Handle() // "CustomerEdit"
//	id := m.Params["id"]     // "42"
//
//	path, err := r.Reverse("ClientEdit", registry.Params{"id": "42"})
//	// path == "/admin/clientes/editar/42"
//
// # Matching Rules
//
// A literal segment must equal the path segment exactly (case-sensitive, compared in
// Unicode NFC form). A parameter segment matches any non-empty segment. The number of
// segments must be equal, so "/admin" never matches "/admin/clientes". A single
// trailing slash is ignored unless WithStrictSlash is set. The query string and
// fragment are returned with the match and never take part in matching.
//
// # Errors
//
// Register fails with ErrDuplicateName, ErrEmptyName, ErrInvalidPattern or
// ErrDuplicateParam and leaves the previous table active. Resolve fails with
// ErrNotFound. Reverse fails with ErrUnknownRoute; a missing parameter error also
// matches ErrMissingParam.
package registry
