package credentials

import "github.com/jrsteele09/go-shop-client/users"

// Store persists the token pair and the cached user profile. It is pure
// storage: implementations never inspect token content and never decide
// policy. All operations are synchronous.
//
// A store that cannot parse its persisted profile record treats the
// record as absent rather than surfacing an error.
type Store interface {
	// Save replaces the stored token pair.
	Save(creds Credentials) error
	// Get returns the stored token pair, or nil when none is stored.
	Get() (*Credentials, error)
	// Clear removes the token pair and the cached profile together.
	Clear() error
	// SaveProfile replaces the cached user profile.
	SaveProfile(user *users.User) error
	// Profile returns the cached user profile, or nil when absent or
	// unreadable.
	Profile() (*users.User, error)
}
