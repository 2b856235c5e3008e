// services/session.go
package services

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
	"sync"
	"time"

	"snake-arena-api/models"

	"github.com/gofiber/fiber/v2"
)

const DefaultSessionTTL = 24 * time.Hour

// Session is one authenticated client's server-side state. Each login or
// signup issues its own session, so concurrent clients never share identity.
type Session struct {
	Token     string
	UserID    string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionStore holds active sessions keyed by opaque token.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Issue creates a session for the user and returns it with a fresh token.
func (s *SessionStore) Issue(user *models.User) (*Session, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	now := time.Now()
	session := &Session{
		Token:     base64.RawURLEncoding.EncodeToString(raw),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
	return session, nil
}

// Get returns the session for a token, treating expired tokens as absent.
func (s *SessionStore) Get(token string) (*Session, bool) {
	if token == "" {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	if !ok || time.Now().After(session.ExpiresAt) {
		return nil, false
	}
	return session, true
}

// Revoke deletes a session. Revoking an unknown token is a no-op.
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *SessionStore) Sweep() int {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	swept := 0
	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
			swept++
		}
	}
	return swept
}

// SessionTokenFromCtx extracts the session token from the X-Session-Token
// header, falling back to a Bearer Authorization header.
func SessionTokenFromCtx(c *fiber.Ctx) string {
	if token := c.Get("X-Session-Token"); token != "" {
		return token
	}
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
