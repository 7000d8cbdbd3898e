package guards_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-shop-client/credentials"
	"github.com/jrsteele09/go-shop-client/credentials/memstore"
	"github.com/jrsteele09/go-shop-client/guards"
	"github.com/jrsteele09/go-shop-client/session"
	"github.com/jrsteele09/go-shop-client/users"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"sub": "user-1",
		"exp": expiresAt.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func authenticatedSession(t *testing.T, role string) *session.Session {
	t.Helper()
	store := memstore.New()
	require.NoError(t, store.Save(credentials.Credentials{
		AccessToken:  signedToken(t, time.Now().Add(time.Hour)),
		RefreshToken: "refresh",
	}))
	sess := session.New(store)
	sess.SetUser(&users.User{ID: "user-1", Role: users.Role{Name: role}})
	return sess
}

func anonymousSession() *session.Session {
	return session.New(memstore.New())
}

func TestAuthGuard(t *testing.T) {
	decision := guards.Auth(authenticatedSession(t, "customer"), guards.RouteCart)
	require.True(t, decision.Allowed)
	require.Empty(t, decision.RedirectTo)

	decision = guards.Auth(anonymousSession(), guards.RouteCart)
	require.False(t, decision.Allowed)
	require.Equal(t, "/login?returnUrl=%2Fcart", decision.RedirectTo)
}

func TestAuthGuardWithoutDestination(t *testing.T) {
	decision := guards.Auth(anonymousSession(), "")
	require.False(t, decision.Allowed)
	require.Equal(t, guards.RouteLogin, decision.RedirectTo)
}

func TestAuthGuardExpiredToken(t *testing.T) {
	store := memstore.New()
	require.NoError(t, store.Save(credentials.Credentials{
		AccessToken:  signedToken(t, time.Now().Add(-time.Minute)),
		RefreshToken: "refresh",
	}))
	sess := session.New(store)
	sess.SetUser(&users.User{ID: "user-1"})

	// A cached user does not override an expired token.
	decision := guards.Auth(sess, guards.RouteCheckout)
	require.False(t, decision.Allowed)
}

func TestAdminGuard(t *testing.T) {
	decision := guards.Admin(authenticatedSession(t, users.AdminRoleName), guards.RouteAdmin)
	require.True(t, decision.Allowed)

	// Authenticated non-admins land on the landing route with no
	// return URL.
	decision = guards.Admin(authenticatedSession(t, "customer"), guards.RouteAdmin)
	require.False(t, decision.Allowed)
	require.Equal(t, guards.RouteLanding, decision.RedirectTo)

	// Unauthenticated users go to login and keep the destination.
	decision = guards.Admin(anonymousSession(), guards.RouteAdmin)
	require.False(t, decision.Allowed)
	require.Equal(t, "/login?returnUrl=%2Fadmin", decision.RedirectTo)
}

func TestNoAuthGuard(t *testing.T) {
	decision := guards.NoAuth(anonymousSession())
	require.True(t, decision.Allowed)

	decision = guards.NoAuth(authenticatedSession(t, "customer"))
	require.False(t, decision.Allowed)
	require.Equal(t, guards.RouteLanding, decision.RedirectTo)
}
