package session

import (
	"sync"

	"github.com/jrsteele09/go-shop-client/credentials"
	"github.com/jrsteele09/go-shop-client/token"
	"github.com/jrsteele09/go-shop-client/users"
)

// subscriberBuffer is the channel depth handed to each subscriber. A
// subscriber that falls this far behind loses intermediate values but
// always eventually observes the latest one.
const subscriberBuffer = 16

// Session is the process-wide holder for the client's belief about who
// is logged in. It is constructed once, passed by reference to guards,
// the request authenticator and UI bindings, and never torn down during
// normal operation.
//
// Authenticated state is derived, not stored: IsAuthenticated always
// recomputes validity from the stored access token's expiry claim, since
// a token can expire without any explicit event firing.
type Session struct {
	store credentials.Store

	lock     sync.Mutex
	user     *users.User
	userSubs map[int]chan *users.User
	authSubs map[int]chan bool
	nextID   int
}

// New creates a Session seeded from whatever the store already holds,
// so a restarted client resumes its previous session.
func New(store credentials.Store) *Session {
	s := &Session{
		store:    store,
		userSubs: make(map[int]chan *users.User),
		authSubs: make(map[int]chan bool),
	}
	if user, err := store.Profile(); err == nil {
		s.user = user
	}
	return s
}

// CurrentUser returns the cached profile, or nil when no user is
// present. The profile may be stale until the next /auth/me fetch.
func (s *Session) CurrentUser() *users.User {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.user
}

// IsAuthenticated reports whether a stored access token exists and its
// decoded expiry is in the future. An unreadable token counts as
// expired. No network call is made.
func (s *Session) IsAuthenticated() bool {
	creds, err := s.store.Get()
	if err != nil || creds == nil {
		return false
	}
	return token.IsValid(creds.AccessToken)
}

// IsAdmin reports whether the cached profile carries the admin role.
func (s *Session) IsAdmin() bool {
	return s.CurrentUser().IsAdmin()
}

// SetUser transitions the session to present and broadcasts the change.
func (s *Session) SetUser(user *users.User) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.user = user
	s.broadcastLocked(user, true)
}

// ClearUser transitions the session to absent and broadcasts the change.
func (s *Session) ClearUser() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.user = nil
	s.broadcastLocked(nil, false)
}

// SubscribeUser registers an observer of the current user. The returned
// channel immediately receives the current value, then every subsequent
// change. The cancel function removes the subscription and closes the
// channel.
func (s *Session) SubscribeUser() (<-chan *users.User, func()) {
	s.lock.Lock()
	defer s.lock.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan *users.User, subscriberBuffer)
	ch <- s.user
	s.userSubs[id] = ch

	cancel := func() {
		s.lock.Lock()
		defer s.lock.Unlock()
		if sub, ok := s.userSubs[id]; ok {
			delete(s.userSubs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// SubscribeAuthenticated registers an observer of the authenticated
// flag, with the same replay-then-push semantics as SubscribeUser.
func (s *Session) SubscribeAuthenticated() (<-chan bool, func()) {
	s.lock.Lock()
	authenticated := s.authenticatedLocked()
	id := s.nextID
	s.nextID++
	ch := make(chan bool, subscriberBuffer)
	ch <- authenticated
	s.authSubs[id] = ch
	s.lock.Unlock()

	cancel := func() {
		s.lock.Lock()
		defer s.lock.Unlock()
		if sub, ok := s.authSubs[id]; ok {
			delete(s.authSubs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (s *Session) authenticatedLocked() bool {
	creds, err := s.store.Get()
	if err != nil || creds == nil {
		return false
	}
	return token.IsValid(creds.AccessToken)
}

func (s *Session) broadcastLocked(user *users.User, authenticated bool) {
	for _, ch := range s.userSubs {
		select {
		case ch <- user:
		default: // slow subscriber, drop rather than block the session
		}
	}
	for _, ch := range s.authSubs {
		select {
		case ch <- authenticated:
		default:
		}
	}
}
