package auth

import (
	"context"

	"github.com/jrsteele09/go-shop-client/api"
	"github.com/jrsteele09/go-shop-client/credentials"
	"github.com/jrsteele09/go-shop-client/guards"
	"github.com/jrsteele09/go-shop-client/session"
	"github.com/jrsteele09/go-shop-client/users"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Navigate is invoked when an auth event requires the UI to move to a
// different route, e.g. back to the login entry point after logout.
type Navigate func(route string)

// AuthResponse is the payload of a successful login or register
// exchange.
type AuthResponse struct {
	User   users.User              `json:"user"`
	Tokens credentials.Credentials `json:"tokens"`
}

type refreshResponse struct {
	Tokens credentials.Credentials `json:"tokens"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Service owns the login, register, refresh and logout exchanges with
// the backend, and the rule for deciding token validity. On every
// auth-affecting event it persists credentials through the store and
// broadcasts the result through the session.
//
// Service implements api.TokenRefresher, so the request authenticator
// can drive the refresh-then-retry cycle through it.
type Service struct {
	client    *api.Client
	store     credentials.Store
	session   *session.Session
	validator *Validator
	navigate  Navigate
	logger    zerolog.Logger

	// Concurrent 401s race past an expired token independently; the
	// group coalesces their refreshes into a single in-flight call.
	refreshGroup singleflight.Group
}

var _ api.TokenRefresher = (*Service)(nil)

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithNavigate sets the navigation callback fired after logout.
func WithNavigate(navigate Navigate) ServiceOption {
	return func(s *Service) {
		s.navigate = navigate
	}
}

// WithLogger sets the service logger.
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService initializes a new auth Service with required dependencies.
func NewService(client *api.Client, store credentials.Store, sess *session.Session, options ...ServiceOption) (*Service, error) {
	if client == nil {
		return nil, errors.New("[NewService] client is required")
	}
	if store == nil {
		return nil, errors.New("[NewService] store is required")
	}
	if sess == nil {
		return nil, errors.New("[NewService] session is required")
	}

	service := &Service{
		client:    client,
		store:     store,
		session:   sess,
		validator: NewValidator(),
		navigate:  func(string) {},
		logger:    zerolog.Nop(),
	}
	for _, opt := range options {
		opt(service)
	}
	return service, nil
}

// Register creates a new account. On success the returned credentials
// and profile are persisted together and the session flips to present;
// on failure nothing changes.
func (s *Service) Register(ctx context.Context, data users.RegisterData) (*users.User, error) {
	if err := s.validator.ValidateRegistration(data); err != nil {
		return nil, err
	}

	var resp AuthResponse
	if err := s.client.Post(ctx, api.PathAuthRegister, data, &resp); err != nil {
		return nil, err
	}
	if err := s.persistAuth(&resp); err != nil {
		return nil, err
	}
	s.logger.Info().Str("email", resp.User.Email).Msg("registered")
	return &resp.User, nil
}

// Login exchanges credentials for a token pair. Same persistence
// contract as Register.
func (s *Service) Login(ctx context.Context, data users.LoginData) (*users.User, error) {
	if err := s.validator.ValidateLogin(data); err != nil {
		return nil, err
	}

	var resp AuthResponse
	if err := s.client.Post(ctx, api.PathAuthLogin, data, &resp); err != nil {
		return nil, err
	}
	if err := s.persistAuth(&resp); err != nil {
		return nil, err
	}
	s.logger.Info().Str("email", resp.User.Email).Msg("logged in")
	return &resp.User, nil
}

// LoadCurrentUser fetches the authoritative profile from /auth/me and
// refreshes the cached copy. A failure means the token was rejected, so
// the session is logged out as a side effect and the failure surfaced.
func (s *Service) LoadCurrentUser(ctx context.Context) (*users.User, error) {
	var user users.User
	if err := s.client.Get(ctx, api.PathAuthMe, nil, &user); err != nil {
		if logoutErr := s.Logout(ctx); logoutErr != nil {
			s.logger.Warn().Err(logoutErr).Msg("logout after profile fetch failure")
		}
		return nil, err
	}
	if err := s.store.SaveProfile(&user); err != nil {
		return nil, errors.Wrap(err, "[Service.LoadCurrentUser] SaveProfile")
	}
	s.session.SetUser(&user)
	return &user, nil
}

// RefreshToken exchanges the stored refresh token for a new pair.
// Without a stored refresh token it fails immediately with
// NoRefreshTokenErr and no backend call is made. Any refresh failure is
// terminal: the session is torn down before the failure propagates, so
// callers know a retry cannot proceed.
//
// Concurrent callers share a single in-flight refresh.
func (s *Service) RefreshToken(ctx context.Context) error {
	_, err, _ := s.refreshGroup.Do("refresh", func() (any, error) {
		return nil, s.refreshToken(ctx)
	})
	return err
}

func (s *Service) refreshToken(ctx context.Context) error {
	creds, err := s.store.Get()
	if err != nil {
		return errors.Wrap(err, "[Service.RefreshToken] store.Get")
	}
	if creds == nil || creds.RefreshToken == "" {
		// Still a refresh failure: whatever partial state is stored
		// cannot be recovered, so it is torn down like any other
		// rejected refresh. No backend call is made.
		s.clearSession()
		return NoRefreshTokenErr
	}

	var resp refreshResponse
	if err := s.client.Post(ctx, api.PathAuthRefresh, refreshRequest{RefreshToken: creds.RefreshToken}, &resp); err != nil {
		// Local teardown only. Notifying the backend here would send
		// another authenticated request through the transport, which
		// would re-enter this refresh path on a 401.
		s.logger.Info().Err(err).Msg("token refresh rejected, logging out")
		s.clearSession()
		return err
	}
	if err := s.store.Save(resp.Tokens); err != nil {
		return errors.Wrap(err, "[Service.RefreshToken] store.Save")
	}
	s.logger.Debug().Msg("token pair refreshed")
	return nil
}

// Logout notifies the backend best-effort, then clears all persisted
// auth state and directs the UI back to the login entry point. Logout
// is always locally effective, whether or not the backend is reachable.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.client.Post(ctx, api.PathAuthLogout, struct{}{}, nil); err != nil {
		// The token is invalidated client-side regardless.
		s.logger.Debug().Err(err).Msg("logout notification failed")
	}

	if err := s.clearSession(); err != nil {
		return errors.Wrap(err, "[Service.Logout] store.Clear")
	}
	return nil
}

// clearSession wipes the persisted credentials and cached profile,
// broadcasts the logged-out state and directs the UI to login.
func (s *Service) clearSession() error {
	clearErr := s.store.Clear()
	s.session.ClearUser()
	s.navigate(guards.RouteLogin)
	return clearErr
}

// persistAuth applies a successful auth exchange all-or-nothing: if the
// profile cannot be cached after the credentials were written, the
// half-written state is rolled back.
func (s *Service) persistAuth(resp *AuthResponse) error {
	if err := s.store.Save(resp.Tokens); err != nil {
		return errors.Wrap(err, "[Service.persistAuth] store.Save")
	}
	if err := s.store.SaveProfile(&resp.User); err != nil {
		if clearErr := s.store.Clear(); clearErr != nil {
			s.logger.Warn().Err(clearErr).Msg("rollback after profile save failure")
		}
		return errors.Wrap(err, "[Service.persistAuth] store.SaveProfile")
	}
	s.session.SetUser(&resp.User)
	return nil
}
