package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-shop-client/credentials"
	"github.com/rs/zerolog"
)

// TokenRefresher obtains a fresh token pair when the current access
// token is rejected. A failed refresh is terminal for the session: the
// implementation is expected to have torn the session down before
// returning the error.
type TokenRefresher interface {
	RefreshToken(ctx context.Context) error
}

// Authenticator is an http.RoundTripper that attaches the stored bearer
// credential to every outgoing request, except for the excluded auth
// endpoints, and on a 401 response performs a single refresh-then-retry
// cycle before giving up.
//
// Guarantee: at most one refresh attempt and at most one retry per
// original request. Non-401 failures are never retried.
type Authenticator struct {
	store     credentials.Store
	refresher TokenRefresher
	base      http.RoundTripper
	logger    zerolog.Logger
}

var _ http.RoundTripper = (*Authenticator)(nil)

// AuthenticatorOption defines a function type to modify the
// Authenticator instance.
type AuthenticatorOption func(*Authenticator)

// WithBaseTransport sets the transport the Authenticator wraps.
func WithBaseTransport(base http.RoundTripper) AuthenticatorOption {
	return func(a *Authenticator) {
		a.base = base
	}
}

// WithAuthenticatorLogger sets the logger for refresh/retry decisions.
func WithAuthenticatorLogger(logger zerolog.Logger) AuthenticatorOption {
	return func(a *Authenticator) {
		a.logger = logger
	}
}

// NewAuthenticator creates an Authenticator reading credentials from
// store. The refresher is wired in afterwards via SetRefresher, because
// the auth service that performs refreshes itself sends its requests
// through a client built on this transport.
func NewAuthenticator(store credentials.Store, options ...AuthenticatorOption) *Authenticator {
	a := &Authenticator{
		store:  store,
		base:   http.DefaultTransport,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// SetRefresher installs the refresh implementation. Until one is set, a
// 401 response is returned to the caller unchanged.
func (a *Authenticator) SetRefresher(refresher TokenRefresher) {
	a.refresher = refresher
}

// RoundTrip implements http.RoundTripper.
func (a *Authenticator) RoundTrip(req *http.Request) (*http.Response, error) {
	if isExcludedPath(req.URL.Path) {
		return a.base.RoundTrip(req)
	}

	creds, err := a.store.Get()
	if err != nil || creds == nil || creds.AccessToken == "" {
		return a.base.RoundTrip(req)
	}

	resp, err := a.base.RoundTrip(withBearer(req, creds.AccessToken))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || a.refresher == nil {
		return resp, nil
	}

	// The access token was rejected: refresh once, then retry the
	// original request exactly once with the new token.
	a.logger.Debug().Str("path", req.URL.Path).Msg("401 received, refreshing token")
	resp.Body.Close()

	if err := a.refresher.RefreshToken(req.Context()); err != nil {
		// The session has already been torn down by the refresher's
		// internal logout; the caller observes the refresh failure.
		return nil, err
	}

	fresh, err := a.store.Get()
	if err != nil || fresh == nil {
		return nil, &APIError{StatusCode: http.StatusUnauthorized, Message: genericErrorMessage}
	}

	retry := withBearer(req, fresh.AccessToken)
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		retry.Body = body
	}
	return a.base.RoundTrip(retry)
}

// withBearer clones the request with the Authorization header set.
// RoundTrippers must not mutate the request they are handed.
func withBearer(req *http.Request, accessToken string) *http.Request {
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+accessToken)
	return cloned
}

func isExcludedPath(path string) bool {
	for _, excluded := range excludedPaths {
		if strings.HasSuffix(path, excluded) {
			return true
		}
	}
	return false
}
