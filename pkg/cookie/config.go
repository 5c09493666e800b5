package cookie

import "strings"

type Config struct {
	// Secrets is a comma-separated list; the first one signs.
	Secrets string `env:"COOKIE_SECRETS" envDefault:""`
	Domain  string `env:"COOKIE_DOMAIN" envDefault:""`
	Secure  bool   `env:"COOKIE_SECURE" envDefault:"false"`
}

func (c Config) parseSecrets() []string {
	var secrets []string
	for s := range strings.SplitSeq(c.Secrets, ",") {
		if s = strings.TrimSpace(s); s != "" {
			secrets = append(secrets, s)
		}
	}
	return secrets
}

// NewFromConfig creates a Manager from cfg. Extra secrets (for instance a
// generated development secret) are used when cfg has none.
func NewFromConfig(cfg Config, fallback ...string) (*Manager, error) {
	secrets := cfg.parseSecrets()
	if len(secrets) == 0 {
		secrets = fallback
	}
	opts := []Option{WithSecure(cfg.Secure)}
	if cfg.Domain != "" {
		opts = append(opts, WithDomain(cfg.Domain))
	}
	return New(secrets, opts...)
}
