package account

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/authforms/handler"
	"github.com/dmitrymomot/authforms/modules/account/views"
	"github.com/dmitrymomot/authforms/pkg/apiclient"
	"github.com/dmitrymomot/authforms/pkg/binder"
	"github.com/dmitrymomot/authforms/pkg/form"
	"github.com/dmitrymomot/authforms/pkg/logger"
	"github.com/dmitrymomot/authforms/pkg/ratelimiter"
	"github.com/dmitrymomot/authforms/pkg/session"
	"github.com/dmitrymomot/authforms/svc/accounts"
)

// Views renders the pages of the module. DefaultViews is used unless
// WithViews replaces it.
type Views struct {
	LoginPage  func(views.LoginPageParams) templ.Component
	SignupPage func(views.SignupPageParams) templ.Component
	HomePage   func(views.HomePageParams) templ.Component
	Strength   func(label string) templ.Component
	FormError  func(message string) templ.Component
	ErrorPage  func(handler.ErrorPageParams) templ.Component
}

func DefaultViews() Views {
	return Views{
		LoginPage:  views.LoginPage,
		SignupPage: views.SignupPage,
		HomePage:   views.HomePage,
		Strength:   views.StrengthMeter,
		FormError:  views.FormError,
		ErrorPage:  views.ErrorPage,
	}
}

// Module serves the login and signup pages and the accounts API behind them.
type Module struct {
	cfg          Config
	accounts     *accounts.Service
	sessions     *session.Manager
	views        Views
	logger       *slog.Logger
	limiter      *ratelimiter.Bucket
	errorHandler handler.ErrorHandler[handler.Context]
}

type Option func(*Module)

func WithViews(v Views) Option {
	return func(m *Module) { m.views = v }
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Module) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSubmitLimiter throttles the form and API posts per client and route.
func WithSubmitLimiter(b *ratelimiter.Bucket) Option {
	return func(m *Module) { m.limiter = b }
}

func New(cfg Config, svc *accounts.Service, sessions *session.Manager, opts ...Option) *Module {
	if cfg.ErrorFlashDuration <= 0 {
		cfg.ErrorFlashDuration = form.ErrorFlashDuration
	}
	m := &Module{
		cfg:      cfg,
		accounts: svc,
		sessions: sessions,
		views:    DefaultViews(),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.errorHandler = handler.NewErrorHandler(m.logger, handler.ErrorHandlerConfig{
		ErrorPage:  m.views.ErrorPage,
		ErrorPatch: m.views.FormError,
	})
	return m
}

// Handle returns the module router. Pages live at /, /login and /signup;
// the JSON API under /_api/v1.
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(m.sessions.Middleware)

	r.Get("/", handler.Wrap(m.home, handler.WithErrorHandler[handler.Context, struct{}](m.errorHandler)))

	r.Get("/login", handler.Wrap(m.loginPage, handler.WithErrorHandler[handler.Context, struct{}](m.errorHandler)))
	r.Get("/signup", handler.Wrap(m.signupPage, handler.WithErrorHandler[handler.Context, struct{}](m.errorHandler)))
	r.Get("/signup/strength", handler.Wrap(m.strength,
		handler.WithBinders[handler.Context, strengthRequest](binder.Signals(), binder.Query()),
		handler.WithErrorHandler[handler.Context, strengthRequest](m.errorHandler),
	))
	r.Post("/logout", handler.Wrap(m.logout, handler.WithErrorHandler[handler.Context, struct{}](m.errorHandler)))

	r.Group(func(r chi.Router) {
		if m.limiter != nil {
			r.Use(ratelimiter.Middleware(m.limiter,
				ratelimiter.Composite(ratelimiter.ByClientIP, ratelimiter.ByPath),
				ratelimiter.WithDenyHandler(m.limited),
				ratelimiter.WithLogger(m.logger),
			))
		}

		r.Post("/login", handler.Wrap(m.login,
			handler.WithBinders[handler.Context, loginRequest](binder.Signals(), binder.Form()),
			handler.WithErrorHandler[handler.Context, loginRequest](m.errorHandler),
		))
		r.Post("/signup", handler.Wrap(m.signup,
			handler.WithBinders[handler.Context, signupRequest](binder.Signals(), binder.Form()),
			handler.WithErrorHandler[handler.Context, signupRequest](m.errorHandler),
		))

		r.Post(apiclient.LoginPath, handler.Wrap(m.apiLogin,
			handler.WithBinders[handler.Context, form.LoginPayload](binder.JSON()),
			handler.WithErrorHandler[handler.Context, form.LoginPayload](m.apiParseError("Failed to parse login info.")),
		))
		r.Post(apiclient.SignupPath, handler.Wrap(m.apiSignup,
			handler.WithBinders[handler.Context, form.SignupPayload](binder.JSON()),
			handler.WithErrorHandler[handler.Context, form.SignupPayload](m.apiParseError("Failed to parse registration info.")),
		))
	})

	r.NotFound(handler.Wrap(func(ctx handler.Context, _ struct{}) handler.Response {
		return handler.TemplStatus(http.StatusNotFound, m.views.ErrorPage(handler.ErrorPageParams{
			Error:      "Page not found.",
			StatusCode: http.StatusNotFound,
		}))
	}))

	return r
}
