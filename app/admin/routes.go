package admin

import "github.com/dmitrymomot/viewrouter/core/registry"

// View identifies a renderable admin view. The registry treats it as opaque.
type View string

// Views rendered by the admin interface.
const (
	ViewIndex          View = "IndexView"
	ViewLogin          View = "LoginView"
	ViewProductIndex   View = "IndexViewProducts"
	ViewProductCreate  View = "ProductsCreate"
	ViewProductEdit    View = "ProductsEdit"
	ViewCustomerIndex  View = "IndexViewCustomer"
	ViewCustomerCreate View = "CustomerCreate"
	ViewCustomerEdit   View = "CustomerEdit"
	ViewInvoiceIndex   View = "IndexViewInvoices"
	ViewInvoiceCreate  View = "InvoicesCreate"
	ViewInvoiceShow    View = "InvoiceShow"
)

// Route names.
const (
	RouteHome          = "Home"
	RouteLogin         = "Login"
	RouteProductIndex  = "ProductIndex"
	RouteProductCreate = "ProductCreate"
	RouteProductEdit   = "ProductEdit"
	RouteClientIndex   = "ClientIndex"
	RouteClientCreate  = "ClientCreate"
	RouteClientEdit    = "ClientEdit"
	RouteInvoiceIndex  = "InvoiceIndex"
	RouteInvoiceCreate = "InvoiceCreate"
	RouteInvoiceShow   = "InvoiceShow"
)

// Definitions returns the admin route table in match priority order.
// Static "crear" routes come before sibling parameter routes so they are not shadowed.
func Definitions() []registry.Definition[View] {
	return []registry.Definition[View]{
		{Path: "/", Name: RouteHome, Handle: ViewIndex},
		{Path: "/login", Name: RouteLogin, Handle: ViewLogin},

		{Path: "/admin/productos", Name: RouteProductIndex, Handle: ViewProductIndex},
		{Path: "/admin/productos/crear", Name: RouteProductCreate, Handle: ViewProductCreate},
		{Path: "/admin/productos/editar/:id", Name: RouteProductEdit, Handle: ViewProductEdit},

		{Path: "/admin/clientes", Name: RouteClientIndex, Handle: ViewCustomerIndex},
		{Path: "/admin/clientes/crear", Name: RouteClientCreate, Handle: ViewCustomerCreate},
		{Path: "/admin/clientes/editar/:id", Name: RouteClientEdit, Handle: ViewCustomerEdit},

		{Path: "/admin/facturas", Name: RouteInvoiceIndex, Handle: ViewInvoiceIndex},
		{Path: "/admin/facturas/crear", Name: RouteInvoiceCreate, Handle: ViewInvoiceCreate},
		{Path: "/admin/facturas/:id", Name: RouteInvoiceShow, Handle: ViewInvoiceShow},
	}
}
