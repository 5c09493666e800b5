package session

import (
	"time"

	"github.com/google/uuid"
)

// DefaultLifetime is how long a session stays usable after login.
const DefaultLifetime = 180 * 24 * time.Hour

// Session binds a browser token to a signed-in account.
type Session struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Valid     bool      `json:"valid"`
}

func NewSession(token string, userID uuid.UUID, now time.Time) *Session {
	return &Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		Valid:     true,
	}
}

// Usable reports whether s is still valid and younger than lifetime at now.
func (s *Session) Usable(now time.Time, lifetime time.Duration) bool {
	return s != nil && s.Valid && now.Sub(s.CreatedAt) < lifetime
}
