// Package guards holds the route-entry predicates deciding whether
// navigation may proceed. Guards are pure: a single synchronous read of
// the current session state, no I/O, no subscriptions.
package guards

import (
	"net/url"

	"github.com/jrsteele09/go-shop-client/session"
)

// Decision is the outcome of evaluating a guard at route entry.
type Decision struct {
	Allowed    bool
	RedirectTo string // route to navigate to instead, when not allowed
}

// allow is the passing decision.
var allow = Decision{Allowed: true}

// Auth passes when the session is authenticated; otherwise it redirects
// to login carrying the attempted destination so it can be resumed.
func Auth(sess *session.Session, destination string) Decision {
	if sess.IsAuthenticated() {
		return allow
	}
	return Decision{RedirectTo: loginWithReturn(destination)}
}

// Admin passes when the session is authenticated and the cached role is
// the admin role. An unauthenticated user is sent to login with the
// destination preserved; an authenticated non-admin is sent to the
// landing route without one, since resuming to an admin page is not
// meaningful for a non-admin.
func Admin(sess *session.Session, destination string) Decision {
	if !sess.IsAuthenticated() {
		return Decision{RedirectTo: loginWithReturn(destination)}
	}
	if sess.IsAdmin() {
		return allow
	}
	return Decision{RedirectTo: RouteLanding}
}

// NoAuth passes only for unauthenticated sessions; login and register
// pages are pointless for a signed-in user.
func NoAuth(sess *session.Session) Decision {
	if sess.IsAuthenticated() {
		return Decision{RedirectTo: RouteLanding}
	}
	return allow
}

func loginWithReturn(destination string) string {
	if destination == "" {
		return RouteLogin
	}
	query := url.Values{ReturnURLParam: {destination}}
	return RouteLogin + "?" + query.Encode()
}
