// Package shopclient wires the storefront API client together: token
// storage, observable session state, the auth protocol, the
// refresh-and-retry transport, route guards and the typed domain
// services all share one credential store and one session holder.
package shopclient

import (
	"net/http"
	"time"

	"github.com/jrsteele09/go-shop-client/api"
	"github.com/jrsteele09/go-shop-client/auth"
	"github.com/jrsteele09/go-shop-client/cart"
	"github.com/jrsteele09/go-shop-client/catalog"
	"github.com/jrsteele09/go-shop-client/credentials"
	"github.com/jrsteele09/go-shop-client/credentials/memstore"
	"github.com/jrsteele09/go-shop-client/orders"
	"github.com/jrsteele09/go-shop-client/session"
	"github.com/jrsteele09/go-shop-client/users/admin"
	"github.com/rs/zerolog"
)

// Client is the assembled storefront client. Construct one per process
// and share it; the session holder inside it is the single source of
// truth for authentication state.
type Client struct {
	Session *session.Session
	Auth    *auth.Service
	Catalog *catalog.Service
	Cart    *cart.Service
	Orders  *orders.Service
	Users   *admin.Service
	API     *api.Client

	store credentials.Store
}

// Option defines a function type to modify the client configuration.
type Option func(*settings)

type settings struct {
	store     credentials.Store
	logger    zerolog.Logger
	timeout   time.Duration
	transport http.RoundTripper
	navigate  auth.Navigate
}

// WithStore replaces the default in-memory credential store, e.g. with
// the file-backed store for a CLI session.
func WithStore(store credentials.Store) Option {
	return func(s *settings) {
		s.store = store
	}
}

// WithLogger sets the logger shared by the transport and services.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithTimeout bounds every backend request end to end.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.timeout = timeout
	}
}

// WithTransport replaces the base HTTP transport underneath the
// authenticator (primarily for tests).
func WithTransport(transport http.RoundTripper) Option {
	return func(s *settings) {
		s.transport = transport
	}
}

// WithNavigate sets the callback fired when the auth protocol directs
// the UI to a route (e.g. back to login after logout).
func WithNavigate(navigate auth.Navigate) Option {
	return func(s *settings) {
		s.navigate = navigate
	}
}

// New assembles a Client against the backend at baseURL.
func New(baseURL string, options ...Option) (*Client, error) {
	cfg := &settings{
		store:     memstore.New(),
		logger:    zerolog.Nop(),
		timeout:   30 * time.Second,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(cfg)
	}

	sess := session.New(cfg.store)

	authenticator := api.NewAuthenticator(cfg.store,
		api.WithBaseTransport(cfg.transport),
		api.WithAuthenticatorLogger(cfg.logger),
	)
	httpClient := &http.Client{Transport: authenticator, Timeout: cfg.timeout}

	apiClient, err := api.NewClient(baseURL,
		api.WithHTTPClient(httpClient),
		api.WithLogger(cfg.logger),
	)
	if err != nil {
		return nil, err
	}

	authOptions := []auth.ServiceOption{auth.WithLogger(cfg.logger)}
	if cfg.navigate != nil {
		authOptions = append(authOptions, auth.WithNavigate(cfg.navigate))
	}
	authService, err := auth.NewService(apiClient, cfg.store, sess, authOptions...)
	if err != nil {
		return nil, err
	}
	// The auth service both rides the authenticated transport and
	// performs its refreshes, so it is installed after construction.
	authenticator.SetRefresher(authService)

	catalogService, err := catalog.NewService(apiClient)
	if err != nil {
		return nil, err
	}
	cartService, err := cart.NewService(apiClient)
	if err != nil {
		return nil, err
	}
	ordersService, err := orders.NewService(apiClient)
	if err != nil {
		return nil, err
	}
	usersService, err := admin.NewService(apiClient)
	if err != nil {
		return nil, err
	}

	return &Client{
		Session: sess,
		Auth:    authService,
		Catalog: catalogService,
		Cart:    cartService,
		Orders:  ordersService,
		Users:   usersService,
		API:     apiClient,
		store:   cfg.store,
	}, nil
}

// Store exposes the credential store backing the client.
func (c *Client) Store() credentials.Store {
	return c.store
}
