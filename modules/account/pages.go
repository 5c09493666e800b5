package account

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/authforms/handler"
	"github.com/dmitrymomot/authforms/modules/account/views"
	"github.com/dmitrymomot/authforms/pkg/apiclient"
	"github.com/dmitrymomot/authforms/pkg/form"
	"github.com/dmitrymomot/authforms/pkg/logger"
	"github.com/dmitrymomot/authforms/pkg/metrics"
	"github.com/dmitrymomot/authforms/pkg/ratelimiter"
	"github.com/dmitrymomot/authforms/pkg/session"
	"github.com/dmitrymomot/authforms/pkg/validator"
	"github.com/dmitrymomot/authforms/svc/accounts"
)

// Signal names shared with the views.
const (
	signalErrorField   = "errorField"
	signalErrorMessage = "errorMessage"
)

const msgUnexpected = "Something went wrong. Please try again."

type loginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

type signupRequest struct {
	Firstname       string `form:"firstname" json:"firstname"`
	Surname         string `form:"surname" json:"surname"`
	Email           string `form:"email" json:"email"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirm-password" json:"confirmPassword"`
}

type strengthRequest struct {
	Password string `query:"password" json:"password"`
}

func (m *Module) home(ctx handler.Context, _ struct{}) handler.Response {
	s, ok := session.FromContext(ctx)
	if !ok {
		return handler.Templ(m.views.HomePage(views.HomePageParams{}))
	}
	a, err := m.accounts.Get(ctx, s.UserID)
	if err != nil {
		// account gone, the session is useless
		_ = m.sessions.Destroy(ctx, ctx.ResponseWriter(), ctx.Request())
		return handler.Templ(m.views.HomePage(views.HomePageParams{}))
	}
	return handler.Templ(m.views.HomePage(views.HomePageParams{
		SignedIn:  true,
		Firstname: a.Firstname,
		Surname:   a.Surname,
	}))
}

func (m *Module) loginPage(ctx handler.Context, _ struct{}) handler.Response {
	if _, ok := session.FromContext(ctx); ok {
		return handler.Redirect(apiclient.LoginRedirect)
	}
	return handler.Templ(m.views.LoginPage(views.LoginPageParams{}))
}

func (m *Module) signupPage(ctx handler.Context, _ struct{}) handler.Response {
	if _, ok := session.FromContext(ctx); ok {
		return handler.Redirect(apiclient.LoginRedirect)
	}
	return handler.Templ(m.views.SignupPage(views.SignupPageParams{}))
}

func (m *Module) login(ctx handler.Context, req loginRequest) handler.Response {
	f := form.LoginForm{Email: req.Email, Password: req.Password}
	page := func(msg, field string) templ.Component {
		return m.views.LoginPage(views.LoginPageParams{Email: f.Email, Error: msg, ErrorField: field})
	}

	if ferr := f.Validate(); ferr != nil {
		m.record(ctx, "login", metrics.OutcomeInvalid, logger.Field(ferr.Field))
		return m.invalid(ctx, ferr, page(ferr.Message, ferr.Field))
	}

	id, err := m.accounts.Login(ctx, f.Email, f.Password)
	if err != nil {
		msg := m.userMessage(ctx, err)
		m.record(ctx, "login", metrics.OutcomeRejected)
		return m.rejected(ctx, msg, page(msg, ""))
	}

	if _, err := m.sessions.Create(ctx, ctx.ResponseWriter(), id); err != nil {
		return m.failed(ctx, "login", err, page(msgUnexpected, ""))
	}

	m.record(ctx, "login", metrics.OutcomeAccepted, logger.UserID(id))
	return handler.Redirect(apiclient.LoginRedirect)
}

func (m *Module) signup(ctx handler.Context, req signupRequest) handler.Response {
	f := form.SignupForm{
		Firstname:       req.Firstname,
		Surname:         req.Surname,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}
	page := func(msg, field string) templ.Component {
		return m.views.SignupPage(views.SignupPageParams{
			Firstname:  f.Firstname,
			Surname:    f.Surname,
			Email:      f.Email,
			Error:      msg,
			ErrorField: field,
		})
	}

	if ferr := f.Validate(); ferr != nil {
		m.record(ctx, "signup", metrics.OutcomeInvalid, logger.Field(ferr.Field))
		return m.invalid(ctx, ferr, page(ferr.Message, ferr.Field))
	}

	p := f.Payload()
	id, err := m.accounts.Register(ctx, accounts.RegisterInput{
		Firstname: p.Firstname,
		Surname:   p.Surname,
		Email:     p.Email,
		Password:  p.Password,
	})
	if err != nil {
		msg := m.userMessage(ctx, err)
		m.record(ctx, "signup", metrics.OutcomeRejected)
		return m.rejected(ctx, msg, page(msg, ""))
	}

	m.record(ctx, "signup", metrics.OutcomeAccepted, logger.UserID(id))
	return handler.Redirect(apiclient.SignupRedirect)
}

// strength reports the classification of the password typed so far by
// patching the meter's data-strength attribute.
func (m *Module) strength(ctx handler.Context, req strengthRequest) handler.Response {
	label := validator.ClassifyStrength(req.Password).String()
	metrics.RecordStrength(label)
	return handler.Templ(m.views.Strength(label))
}

func (m *Module) logout(ctx handler.Context, _ struct{}) handler.Response {
	if err := m.sessions.Destroy(ctx, ctx.ResponseWriter(), ctx.Request()); err != nil {
		m.logger.WarnContext(ctx, "failed to destroy session", logger.Error(err), logger.Component("account"))
	}
	return handler.Redirect(apiclient.LoginRedirect)
}

// invalid answers a form that failed validation. DataStar pages get the
// field highlighted through signals and cleared after the flash duration;
// plain posts get the page back with the error.
func (m *Module) invalid(ctx handler.Context, ferr *form.FieldError, page templ.Component) handler.Response {
	if !handler.IsDataStar(ctx.Request()) {
		return handler.TemplStatus(http.StatusUnprocessableEntity, page)
	}
	return handler.SSE(func(stream handler.StreamContext) error {
		if err := stream.SendSignals(map[string]any{
			signalErrorField:   ferr.Field,
			signalErrorMessage: ferr.Message,
		}); err != nil {
			return err
		}
		if !stream.Wait(m.cfg.ErrorFlashDuration) {
			return nil
		}
		return stream.SendSignals(map[string]any{signalErrorField: ""})
	})
}

// rejected shows a backend refusal such as a taken email. No field is
// highlighted.
func (m *Module) rejected(ctx handler.Context, msg string, page templ.Component) handler.Response {
	if !handler.IsDataStar(ctx.Request()) {
		return handler.TemplStatus(http.StatusUnprocessableEntity, page)
	}
	return handler.SSE(func(stream handler.StreamContext) error {
		return stream.SendSignals(map[string]any{
			signalErrorField:   "",
			signalErrorMessage: msg,
		})
	})
}

func (m *Module) failed(ctx handler.Context, formName string, err error, page templ.Component) handler.Response {
	m.logger.ErrorContext(ctx, "form submission failed",
		logger.Form(formName),
		logger.Error(err),
		logger.Component("account"),
	)
	metrics.RecordSubmission(formName, metrics.OutcomeFailed)
	return m.rejected(ctx, msgUnexpected, page)
}

// userMessage returns the text to show for a service error. Only the
// accounts sentinels are user-facing; anything else is logged.
func (m *Module) userMessage(ctx handler.Context, err error) string {
	for _, known := range []error{accounts.ErrAccountExists, accounts.ErrAccountNotFound, accounts.ErrIncorrectPassword} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	m.logger.ErrorContext(ctx, "accounts service failed", logger.Error(err), logger.Component("account"))
	return msgUnexpected
}

func (m *Module) record(ctx handler.Context, formName, outcome string, attrs ...any) {
	metrics.RecordSubmission(formName, outcome)
	m.logger.InfoContext(ctx, "form submitted",
		append([]any{logger.Form(formName), logger.Outcome(outcome), logger.Component("account")}, attrs...)...,
	)
}

const msgTooManyAttempts = "Too many attempts. Please wait a moment and try again."

// limited answers a post refused by the rate limiter. DataStar pages show
// the message in place; everything else gets 429.
func (m *Module) limited(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
	metrics.RecordRateLimited(r.URL.Path)
	if !handler.IsDataStar(r) {
		http.Error(w, msgTooManyAttempts, http.StatusTooManyRequests)
		return
	}
	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(map[string]any{
		signalErrorField:   "",
		signalErrorMessage: msgTooManyAttempts,
	}); err != nil {
		m.logger.WarnContext(r.Context(), "failed to send rate limit signals",
			logger.Error(err),
			logger.Component("account"),
		)
	}
}
