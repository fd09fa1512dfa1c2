// Package session is the single source of truth for who is signed in.
package session

import (
	"context"
	"log"
	"sync"

	"github.com/ari/talentbridge/internal/client"
	"github.com/ari/talentbridge/internal/domain"
)

// Store owns the session lifecycle: login, registration, logout, and
// identity refresh. Constructed once at application start and injected
// into everything that needs the current user.
//
// Invariant: after Init completes, IsAuthenticated() is true exactly
// when a user is held.
type Store struct {
	client *client.Client

	mu          sync.RWMutex
	user        *domain.User
	initialized bool

	initOnce sync.Once
}

// New creates a Store over an authenticated client
func New(c *client.Client) *Store {
	return &Store{client: c}
}

// Init re-establishes the session from a persisted token, if one exists.
// Initialization completes exactly once regardless of outcome, so
// callers can stop rendering a loading state.
func (s *Store) Init(ctx context.Context) {
	s.initOnce.Do(func() {
		if s.client.IsAuthenticated() {
			if _, err := s.RefreshUser(ctx); err != nil {
				log.Printf("session: stored token rejected: %v", err)
			}
		}
		s.mu.Lock()
		s.initialized = true
		s.mu.Unlock()
	})
}

// Initialized reports whether Init has completed
func (s *Store) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

// CurrentUser returns the signed-in identity, or nil
func (s *Store) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated reports whether a user is signed in
func (s *Store) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

// Login authenticates with the backend, persists the returned token,
// and records the identity. Backend rejections carry the server's
// message verbatim.
func (s *Store) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if err := ValidateLogin(email, password); err != nil {
		return nil, err
	}
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.establish(resp)
}

// Register creates an account and signs it in. The company profile is
// only meaningful for recruiter registrations.
func (s *Store) Register(ctx context.Context, input client.RegisterInput) (*domain.User, error) {
	if err := ValidateRegistration(input); err != nil {
		return nil, err
	}
	resp, err := s.client.Register(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.establish(resp)
}

func (s *Store) establish(resp *client.AuthResponse) (*domain.User, error) {
	if err := s.client.SetToken(resp.Token); err != nil {
		return nil, err
	}
	user := resp.User
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return &user, nil
}

// Logout tells the backend on a best-effort basis and unconditionally
// clears the token and the in-memory user. A backend hiccup must never
// leave the user stuck signed in.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.client.Logout(ctx); err != nil {
		log.Printf("session: backend logout failed: %v", err)
	}
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return s.client.ClearToken()
}

// RefreshUser re-fetches the identity for the currently held token.
// On failure the user is cleared but the persisted token is left in
// place; only an explicit Logout removes it. The asymmetry with Logout
// is deliberate pending a decision on intended semantics.
func (s *Store) RefreshUser(ctx context.Context) (*domain.User, error) {
	if !s.client.IsAuthenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	user, err := s.client.Me(ctx)
	if err != nil {
		s.mu.Lock()
		s.user = nil
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return user, nil
}
