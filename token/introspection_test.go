package token_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-shop-client/token"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwtlib.MapClaims) string {
	t.Helper()
	raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestIntrospectValidToken(t *testing.T) {
	now := time.Now()
	raw := signedToken(t, jwtlib.MapClaims{
		"sub":   "user-1",
		"email": "john.doe@example.com",
		"role":  "admin",
		"iat":   now.Unix(),
		"exp":   now.Add(15 * time.Minute).Unix(),
	})

	introspection := token.Introspect(raw)
	require.True(t, introspection.Active)
	require.Equal(t, "user-1", *introspection.Sub)
	require.Equal(t, "john.doe@example.com", introspection.Email)
	require.Equal(t, "admin", introspection.Role)
	require.Equal(t, now.Add(15*time.Minute).Unix(), *introspection.Exp)
}

func TestIntrospectExpiredToken(t *testing.T) {
	raw := signedToken(t, jwtlib.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-10 * time.Second).Unix(),
	})

	introspection := token.Introspect(raw)
	require.False(t, introspection.Active)
	require.False(t, token.IsValid(raw))
}

func TestIntrospectFailsClosed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"garbage", "not-a-jwt"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.False(t, token.Introspect(tc.raw).Active)
		})
	}
}

func TestIntrospectMissingExpiry(t *testing.T) {
	raw := signedToken(t, jwtlib.MapClaims{"sub": "user-1"})
	require.False(t, token.Introspect(raw).Active)
}

func TestIntrospectUsesInjectedClock(t *testing.T) {
	raw := signedToken(t, jwtlib.MapClaims{
		"exp": time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC).Unix(),
	})

	original := token.NowTimeFunc
	defer func() { token.NowTimeFunc = original }()

	token.NowTimeFunc = func() time.Time { return time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC) }
	require.True(t, token.IsValid(raw))

	token.NowTimeFunc = func() time.Time { return time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC) }
	require.False(t, token.IsValid(raw))
}
