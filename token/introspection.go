package token

import (
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Introspection represents the metadata the client reads out of an
// access token. The 'active' field indicates the state of the token -
// if it's false, other fields may not be populated.
type Introspection struct {
	Active bool    `json:"active"`          // True or false - is the token still usable
	Exp    *int64  `json:"exp,omitempty"`   // Expiration
	Iat    *int64  `json:"iat,omitempty"`   // Issued at time
	Sub    *string `json:"sub,omitempty"`   // Users unique ID
	Email  string  `json:"email,omitempty"` // Email claim, when present
	Role   string  `json:"role,omitempty"`  // Role claim, when present
}

// Introspect reads the claims of a JWT without verifying its signature.
// The client only uses the result as a UX-level expiry hint; the backend
// re-checks authorization on every request. Any decode failure yields an
// inactive introspection rather than an error - an unreadable token is
// never treated as valid.
func Introspect(rawToken string) *Introspection {
	if strings.TrimSpace(rawToken) == "" {
		return &Introspection{Active: false}
	}

	unverifiedToken, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return &Introspection{Active: false}
	}

	claims, ok := unverifiedToken.Claims.(jwtlib.MapClaims)
	if !ok {
		return &Introspection{Active: false}
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		// A token without a readable expiry is treated as expired.
		return &Introspection{Active: false}
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	iat, _ := claims["iat"].(float64)

	iatInt := int64(iat)
	expInt := int64(exp)

	active := NowTimeFunc().Unix() < expInt

	return &Introspection{
		Active: active,
		Exp:    &expInt,
		Iat:    &iatInt,
		Sub:    &sub,
		Email:  email,
		Role:   role,
	}
}

// IsValid reports whether the raw token decodes and its expiry is still
// in the future.
func IsValid(rawToken string) bool {
	return Introspect(rawToken).Active
}
