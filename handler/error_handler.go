package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/authforms/pkg/binder"
	"github.com/dmitrymomot/authforms/pkg/logger"
	"github.com/dmitrymomot/authforms/pkg/requestid"
	"github.com/dmitrymomot/authforms/pkg/validator"
)

type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
}

type ErrorHandlerConfig struct {
	// ErrorPage renders the body for plain requests. Nil falls back to http.Error.
	ErrorPage func(ErrorPageParams) templ.Component
	// ErrorPatch renders the fragment patched into DataStar pages. Nil sends nothing.
	ErrorPatch func(message string) templ.Component
}

type errorInfo struct {
	status  int
	message string
}

func classifyError(err error) errorInfo {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return errorInfo{status: httpErr.Code, message: httpErr.Message}
	}
	if errs := validator.ExtractValidationErrors(err); len(errs) > 0 {
		return errorInfo{status: http.StatusBadRequest, message: errs[0].Message}
	}
	switch {
	case errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseSignals),
		errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrUnsupportedMediaType):
		return errorInfo{status: http.StatusBadRequest, message: "Bad request."}
	}
	return errorInfo{status: http.StatusInternalServerError, message: "Something went wrong."}
}

// NewErrorHandler logs err and answers with an error page, or with a patch
// for DataStar requests.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classifyError(err)
		reqID := requestid.FromContext(r.Context())

		level := slog.LevelError
		if info.status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.Error(err),
			slog.Int("status_code", info.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
			logger.Component("error_handler"),
		)

		var resp Response
		switch {
		case IsDataStar(r):
			if cfg.ErrorPatch == nil {
				return
			}
			resp = Templ(cfg.ErrorPatch(info.message))
		case cfg.ErrorPage != nil:
			resp = TemplStatus(info.status, cfg.ErrorPage(ErrorPageParams{
				Error:      info.message,
				StatusCode: info.status,
				RequestID:  reqID,
			}))
		default:
			http.Error(ctx.ResponseWriter(), info.message, info.status)
			return
		}

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
		}
	}
}
