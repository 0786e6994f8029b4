// Package session caches the booking service's bearer token.
package session

import (
	"context"
	"fmt"
	"net/http"
	"sync"
)

// DefaultKey names the persisted token, matching the SPA's localStorage key.
const DefaultKey = "booking-auth-token"

// TokenStore persists the token between process runs.
type TokenStore interface {
	// Load returns "" when no token has been saved.
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
}

// Session holds the current bearer token. There is no expiry or refresh: a
// token stays current until the booking service hands out a new one.
type Session struct {
	mu    sync.RWMutex
	token string
	store TokenStore
}

func New(store TokenStore) *Session {
	return &Session{store: store}
}

// Load reads the persisted token, if any.
func (s *Session) Load(ctx context.Context) error {
	token, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load booking token: %w", err)
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Update persists token and makes it the bearer for subsequent requests.
func (s *Session) Update(ctx context.Context, token string) error {
	if err := s.store.Save(ctx, token); err != nil {
		return fmt.Errorf("save booking token: %w", err)
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// Transport adds "Authorization: Bearer <token>" to every request while the
// session holds a token.
type Transport struct {
	Base    http.RoundTripper
	Session *Session
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	token := t.Session.Token()
	if token == "" {
		return base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "Bearer "+token)
	return base.RoundTrip(r)
}
