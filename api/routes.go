package api

// Backend endpoint paths, relative to the configured base URL.
// All endpoints are defined here to ensure consistency and prevent typos.
const (
	// Auth endpoints - these never carry a bearer credential
	PathAuthRegister = "/auth/register"
	PathAuthLogin    = "/auth/login"
	PathAuthRefresh  = "/auth/refresh"
	PathAuthLogout   = "/auth/logout"
	PathAuthMe       = "/auth/me"

	// Domain endpoints
	PathProducts   = "/products"
	PathCategories = "/categories"
	PathOrders     = "/orders"
	PathUsers      = "/users"
	PathCart       = "/cart"
)

// excludedPaths are the endpoints that must never carry or require a
// bearer credential, to avoid a circular dependency during
// authentication itself.
var excludedPaths = []string{
	PathAuthLogin,
	PathAuthRegister,
	PathAuthRefresh,
}
