package store

// Collection names used by the application.
const (
	CollCuisines   = "cuisines"
	CollCategories = "categories"
	CollProducts   = "products"
	CollCouriers   = "deliverymen"
	CollAdmins     = "admins"
	CollUsers      = "users"
	CollOrders     = "orders"
)

// Doc is a raw document as it comes back from the database: its id, the
// tenant (user) that owns it when it was read from a tenant sub-collection,
// and the untyped field map. Services normalize Docs into typed models; the
// raw map is never handed past the normalization boundary.
type Doc struct {
	ID     string
	Tenant string
	Data   map[string]interface{}
}
