package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authforms/pkg/cookie"
	"github.com/dmitrymomot/authforms/pkg/logger"
)

// Manager issues sessions on login and resolves them from the signed
// session cookie on later requests.
type Manager struct {
	cookies    *cookie.Manager
	store      Store
	cookieName string
	lifetime   time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

func New(cookies *cookie.Manager, opts ...Option) *Manager {
	m := &Manager{
		cookies:    cookies,
		store:      NewMemoryStore(),
		cookieName: "sid",
		lifetime:   DefaultLifetime,
		logger:     logger.Discard(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create starts a session for userID and sets the cookie on w.
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, userID uuid.UUID) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	s := NewSession(token, userID, m.now())
	if err := m.store.Create(ctx, s); err != nil {
		return nil, err
	}

	m.cookies.SetSigned(w, m.cookieName, token, cookie.WithMaxAge(int(m.lifetime.Seconds())))
	m.logger.DebugContext(ctx, "session created",
		logger.Component("session"),
		logger.UserID(userID),
	)
	return s, nil
}

// Get resolves the request's session. Sessions that were invalidated or
// outlived the lifetime are deleted and reported as ErrSessionExpired.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.cookies.GetSigned(r, m.cookieName)
	if err != nil {
		return nil, errors.Join(ErrSessionNotFound, err)
	}

	s, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	if !s.Usable(m.now(), m.lifetime) {
		if err := m.store.Delete(ctx, token); err != nil {
			m.logger.WarnContext(ctx, "failed to delete stale session",
				logger.Component("session"),
				logger.Error(err),
			)
		}
		return nil, ErrSessionExpired
	}
	return s, nil
}

// Destroy removes the request's session, if any, and clears the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	m.cookies.Delete(w, m.cookieName)
	token, err := m.cookies.GetSigned(r, m.cookieName)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, token)
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
