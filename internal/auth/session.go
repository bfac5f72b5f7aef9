// Package auth composes the credential store into the login/logout surface
// the application works against, and fans session-change events out to
// registered listeners.
package auth

import (
	"context"
	"sync"

	"notekeeper/internal/logging"
	"notekeeper/internal/repositories/credentials"
)

// Listener receives the new authenticated state after each login success
// and each logout. Listeners run synchronously in registration order.
type Listener func(loggedIn bool)

type subscription struct {
	id int
	fn Listener
}

// Service is the session façade. The session pointer itself lives in the
// credential store and survives restarts; Service adds the observer fan-out
// and the composed operations.
type Service struct {
	creds *credentials.Store
	log   logging.Logger

	mu     sync.Mutex
	subs   []subscription
	nextID int
}

func NewService(creds *credentials.Store, log logging.Logger) *Service {
	return &Service{creds: creds, log: log}
}

// Login verifies the credentials and, on success, persists the session
// pointer and notifies listeners. A failed verification leaves the prior
// session state untouched. A failing session write is logged but does not
// turn a correct password into a login failure.
func (s *Service) Login(ctx context.Context, username, password string) bool {
	if !s.creds.Verify(ctx, username, password) {
		return false
	}
	if err := s.creds.SetSession(ctx, username); err != nil {
		s.log.Error(ctx, "persisting session failed", "username", username, "error", err)
	}
	s.notify(true)
	return true
}

// SignUp registers a new account and, on success, starts a session for it.
func (s *Service) SignUp(ctx context.Context, username, password string) bool {
	if !s.creds.Register(ctx, username, password) {
		return false
	}
	if err := s.creds.SetSession(ctx, username); err != nil {
		s.log.Error(ctx, "persisting session failed", "username", username, "error", err)
	}
	s.notify(true)
	return true
}

// Logout clears the session pointer and notifies listeners.
func (s *Service) Logout(ctx context.Context) {
	if err := s.creds.SetSession(ctx, ""); err != nil {
		s.log.Error(ctx, "clearing session failed", "error", err)
	}
	s.notify(false)
}

// IsLoggedIn reports whether a session pointer is set.
func (s *Service) IsLoggedIn(ctx context.Context) bool {
	return s.CurrentUser(ctx) != ""
}

// CurrentUser returns the logged-in username, or "" when logged out.
func (s *Service) CurrentUser(ctx context.Context) string {
	return s.creds.GetSession(ctx)
}

// Subscribe registers a listener and returns a function that removes exactly
// this registration. Calling the returned function more than once is a
// no-op.
func (s *Service) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Service) notify(loggedIn bool) {
	s.mu.Lock()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(loggedIn)
	}
}
