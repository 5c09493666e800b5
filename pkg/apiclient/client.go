package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/dmitrymomot/authforms/pkg/form"
	"github.com/dmitrymomot/authforms/pkg/logger"
)

// Backend routes and where the page goes after each succeeds.
const (
	LoginPath      = "/_api/v1/login"
	SignupPath     = "/_api/v1/signup"
	LoginRedirect  = "/"
	SignupRedirect = "/login"
)

const maxResponseSize = 1 << 20

// Client submits validated forms to the accounts API.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the pooled client. Nil is ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithTimeout bounds each request. It applies to whichever client ends up
// installed, on a copy, so a client passed to WithHTTPClient is left as is.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.timeout = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}

// New creates a Client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    cleanhttp.DefaultPooledClient(),
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

// Login validates f and posts {email, password}. A validation failure is
// returned as *form.FieldError and nothing is sent.
func (c *Client) Login(ctx context.Context, f form.LoginForm) (Outcome, error) {
	if ferr := f.Validate(); ferr != nil {
		return nil, ferr
	}
	return c.submit(ctx, LoginPath, f.Payload(), LoginRedirect), nil
}

// Signup validates f, including the confirmation field, and posts
// {firstname, surname, email, password}.
func (c *Client) Signup(ctx context.Context, f form.SignupForm) (Outcome, error) {
	if ferr := f.Validate(); ferr != nil {
		return nil, ferr
	}
	return c.submit(ctx, SignupPath, f.Payload(), SignupRedirect), nil
}

func (c *Client) submit(ctx context.Context, path string, payload any, redirect string) Outcome {
	body, err := json.Marshal(payload)
	if err != nil {
		return TransportFailure{Err: errors.Join(ErrEncodePayload, err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return TransportFailure{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "submission failed",
			logger.Component("apiclient"),
			slog.String("path", path),
			logger.Error(err),
		)
		return TransportFailure{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.WarnContext(ctx, "submission returned non-success status",
			logger.Component("apiclient"),
			slog.String("path", path),
			slog.Int("status_code", resp.StatusCode),
		)
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return StatusFailure{Code: resp.StatusCode, Status: resp.Status}
	}

	var reply form.APIResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&reply); err != nil {
		return TransportFailure{Err: errors.Join(ErrInvalidResponse, err)}
	}

	if !reply.Success {
		return Rejected{Message: reply.Error}
	}
	return Accepted{RedirectTo: redirect}
}
