package account

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/authforms/handler"
	"github.com/dmitrymomot/authforms/pkg/form"
	"github.com/dmitrymomot/authforms/pkg/logger"
	"github.com/dmitrymomot/authforms/pkg/metrics"
	"github.com/dmitrymomot/authforms/svc/accounts"
)

// apiLogin checks credentials and opens a session. Failures are reported
// in the body with status 200.
func (m *Module) apiLogin(ctx handler.Context, p form.LoginPayload) handler.Response {
	start := time.Now()
	defer func() { metrics.RecordAPIDuration("login", time.Since(start)) }()

	id, err := m.accounts.Login(ctx, p.Email, p.Password)
	if err != nil {
		return handler.JSON(form.APIResponse{Error: m.userMessage(ctx, err)})
	}
	if _, err := m.sessions.Create(ctx, ctx.ResponseWriter(), id); err != nil {
		m.logger.ErrorContext(ctx, "failed to create session",
			logger.UserID(id),
			logger.Error(err),
			logger.Component("account"),
		)
	}
	return handler.JSON(form.APIResponse{Success: true})
}

func (m *Module) apiSignup(ctx handler.Context, p form.SignupPayload) handler.Response {
	start := time.Now()
	defer func() { metrics.RecordAPIDuration("signup", time.Since(start)) }()

	_, err := m.accounts.Register(ctx, accounts.RegisterInput{
		Firstname: p.Firstname,
		Surname:   p.Surname,
		Email:     p.Email,
		Password:  p.Password,
	})
	if err != nil {
		return handler.JSON(form.APIResponse{Error: m.userMessage(ctx, err)})
	}
	return handler.JSON(form.APIResponse{Success: true})
}

// apiParseError answers bodies that could not be decoded with 403 and a
// plain text message.
func (m *Module) apiParseError(msg string) handler.ErrorHandler[handler.Context] {
	return func(ctx handler.Context, err error) {
		m.logger.WarnContext(ctx, "rejected api payload",
			logger.Error(err),
			logger.Component("account"),
		)
		http.Error(ctx.ResponseWriter(), msg, http.StatusForbidden)
	}
}
