package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authforms/handler"
	"github.com/dmitrymomot/authforms/pkg/binder"
	"github.com/dmitrymomot/authforms/pkg/logger"
	"github.com/dmitrymomot/authforms/pkg/validator"
)

type loginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func datastarRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(binder.DatastarHeader, "true")
	return req
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(ctx handler.Context, req loginRequest) handler.Response {
			return handler.JSON(map[string]string{"email": req.Email})
		}, handler.WithBinders[handler.Context, loginRequest](binder.Signals(), binder.JSON(), binder.Form()))

		rec := httptest.NewRecorder()
		h(rec, formRequest(http.MethodPost, "/login", url.Values{"email": {"a@b.com"}}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"email":"a@b.com"}`, rec.Body.String())
	})

	t.Run("binder error goes to error handler", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(func(ctx handler.Context, req loginRequest) handler.Response {
			t.Error("handler must not run")
			return nil
		},
			handler.WithBinders[handler.Context, loginRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, loginRequest](func(ctx handler.Context, err error) {
				got = err
				http.Error(ctx.ResponseWriter(), "Failed to parse login info.", http.StatusForbidden)
			}),
		)

		req := httptest.NewRequest(http.MethodPost, "/_api/v1/login", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.ErrorIs(t, got, binder.ErrFailedToParseJSON)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Failed to parse login info.\n", rec.Body.String())
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response { return nil })
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("http error keeps its status", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
			return handler.SSE(func(handler.StreamContext) error { return nil })
		})
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		t.Parallel()
		var order []string
		mark := func(name string) handler.Decorator[handler.Context, struct{}] {
			return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
				return func(ctx handler.Context, req struct{}) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}
		h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
			order = append(order, "handler")
			return handler.JSON(nil)
		}, handler.WithDecorators(mark("outer"), mark("inner")))

		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, []string{"outer", "inner", "handler"}, order)
	})
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	assert.False(t, handler.IsDataStar(httptest.NewRequest(http.MethodGet, "/login", nil)))
	assert.True(t, handler.IsDataStar(datastarRequest(http.MethodGet, "/login")))
	assert.True(t, handler.IsDataStar(httptest.NewRequest(http.MethodGet, "/login?datastar=%7B%7D", nil)))

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.Header.Set("Accept", "text/event-stream")
	assert.True(t, handler.IsDataStar(req))
}

func TestContext_SSE(t *testing.T) {
	t.Parallel()

	assert.Nil(t, handler.NewContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)).SSE())

	rec := httptest.NewRecorder()
	ctx := handler.NewContext(rec, datastarRequest(http.MethodGet, "/"))
	sse := ctx.SSE()
	require.NotNil(t, sse)
	assert.Same(t, sse, ctx.SSE())
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
}

func TestTempl(t *testing.T) {
	t.Parallel()

	t.Run("plain request gets html", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		err := handler.TemplMulti(handler.Patch(text("<p>a</p>")), handler.Patch(text("<p>b</p>"))).
			Render(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "<p>a</p><p>b</p>", rec.Body.String())
	})

	t.Run("status for plain request", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, handler.TemplStatus(http.StatusUnprocessableEntity, text("x")).
			Render(rec, httptest.NewRequest(http.MethodPost, "/", nil)))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("datastar request gets patch events", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		err := handler.Templ(text(`<div id="error">Invalid email.</div>`), handler.WithTarget("#error")).
			Render(rec, datastarRequest(http.MethodPost, "/login"))
		require.NoError(t, err)
		body := rec.Body.String()
		assert.Contains(t, body, "event: datastar-patch-elements")
		assert.Contains(t, body, "selector #error")
		assert.Contains(t, body, "Invalid email.")
	})
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.Redirect("/login").Render(rec, httptest.NewRequest(http.MethodPost, "/signup", nil)))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	require.NoError(t, handler.Redirect("/login").Render(rec, datastarRequest(http.MethodPost, "/signup")))
	assert.Contains(t, rec.Body.String(), "/login")
	assert.Contains(t, rec.Body.String(), "window.location")
}

func TestSSE_Wait(t *testing.T) {
	t.Parallel()

	t.Run("elapses", func(t *testing.T) {
		t.Parallel()
		var waited bool
		resp := handler.SSE(func(stream handler.StreamContext) error {
			waited = stream.Wait(10 * time.Millisecond)
			return stream.SendSignals(map[string]any{"done": true})
		})
		rec := httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, datastarRequest(http.MethodGet, "/")))
		assert.True(t, waited)
		assert.Contains(t, rec.Body.String(), "datastar-patch-signals")
	})

	t.Run("stops when client leaves", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := datastarRequest(http.MethodGet, "/").WithContext(ctx)

		var waited = true
		resp := handler.SSE(func(stream handler.StreamContext) error {
			waited = stream.Wait(time.Hour)
			return nil
		})
		require.NoError(t, resp.Render(httptest.NewRecorder(), req))
		assert.False(t, waited)
	})
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	page := func(p handler.ErrorPageParams) templ.Component {
		return text(p.Error)
	}
	eh := handler.NewErrorHandler(logger.Discard(), handler.ErrorHandlerConfig{
		ErrorPage:  page,
		ErrorPatch: func(msg string) templ.Component { return text(`<p id="error">` + msg + `</p>`) },
	})

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"http error", handler.NewHTTPError(http.StatusForbidden, "Failed to parse login info."), http.StatusForbidden, "Failed to parse login info."},
		{"validation", validator.ValidationErrors{{Field: "email", Message: "Invalid email."}}, http.StatusBadRequest, "Invalid email."},
		{"binder", binder.ErrFailedToParseForm, http.StatusBadRequest, "Bad request."},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Something went wrong."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			eh(handler.NewContext(rec, httptest.NewRequest(http.MethodPost, "/login", nil)), tt.err)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}

	t.Run("datastar gets a patch", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		eh(handler.NewContext(rec, datastarRequest(http.MethodPost, "/login")), errors.New("boom"))
		assert.Contains(t, rec.Body.String(), "Something went wrong.")
		assert.Contains(t, rec.Body.String(), "datastar-patch-elements")
	})
}
