package apiclient

import "time"

// Config is loaded from the environment with pkg/config.
type Config struct {
	BaseURL string        `env:"API_BASE_URL" envDefault:"http://127.0.0.1:8080"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
}

// NewFromConfig creates a Client from cfg. Zero values keep the defaults.
func NewFromConfig(cfg Config, opts ...Option) *Client {
	configOpts := make([]Option, 0, 1+len(opts))
	if cfg.Timeout > 0 {
		configOpts = append(configOpts, WithTimeout(cfg.Timeout))
	}
	configOpts = append(configOpts, opts...)
	return New(cfg.BaseURL, configOpts...)
}
