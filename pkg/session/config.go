package session

import (
	"time"

	"github.com/dmitrymomot/authforms/pkg/cookie"
)

type Config struct {
	CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"sid"`
	Lifetime   time.Duration `env:"SESSION_LIFETIME" envDefault:"4320h"`
}

func NewFromConfig(cfg Config, cookies *cookie.Manager, opts ...Option) *Manager {
	all := []Option{WithCookieName(cfg.CookieName), WithLifetime(cfg.Lifetime)}
	return New(cookies, append(all, opts...)...)
}
