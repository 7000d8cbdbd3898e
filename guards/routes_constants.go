package guards

// Application route constants
// All guarded navigation targets are defined here to ensure consistency
// and prevent typos
const (
	RouteLanding  = "/"
	RouteLogin    = "/login"
	RouteRegister = "/register"
	RouteProducts = "/products"
	RouteCart     = "/cart"
	RouteCheckout = "/checkout"
	RouteAdmin    = "/admin"
)

// ReturnURLParam is the query parameter carrying the destination a user
// attempted before being redirected to login, so it can be resumed
// after a successful login.
const ReturnURLParam = "returnUrl"
