package apiclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authforms/pkg/apiclient"
	"github.com/dmitrymomot/authforms/pkg/form"
)

func newBackend(t *testing.T, fn http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fn(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func writeReply(w http.ResponseWriter, success bool, msg string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(form.APIResponse{Success: success, Error: msg})
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	t.Run("accepted redirects home", func(t *testing.T) {
		t.Parallel()
		srv, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, apiclient.LoginPath, r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var p form.LoginPayload
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&p))
			assert.Equal(t, "a@b.com", p.Email)
			assert.Equal(t, "Passw0rd", p.Password)
			writeReply(w, true, "")
		})

		out, err := apiclient.New(srv.URL).Login(context.Background(), form.LoginForm{Email: "a@b.com", Password: "Passw0rd"})
		require.NoError(t, err)
		assert.Equal(t, apiclient.Accepted{RedirectTo: "/"}, out)
	})

	t.Run("rejected surfaces backend error", func(t *testing.T) {
		t.Parallel()
		srv, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			writeReply(w, false, "Incorrect password.")
		})

		out, err := apiclient.New(srv.URL).Login(context.Background(), form.LoginForm{Email: "a@b.com", Password: "Passw0rd"})
		require.NoError(t, err)
		assert.Equal(t, apiclient.Rejected{Message: "Incorrect password."}, out)
	})

	t.Run("non-success status", func(t *testing.T) {
		t.Parallel()
		srv, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Failed to parse login info.", http.StatusForbidden)
		})

		out, err := apiclient.New(srv.URL).Login(context.Background(), form.LoginForm{Email: "a@b.com", Password: "Passw0rd"})
		require.NoError(t, err)
		sf, ok := out.(apiclient.StatusFailure)
		require.True(t, ok, "got %T", out)
		assert.Equal(t, http.StatusForbidden, sf.Code)
	})

	t.Run("invalid form never reaches the backend", func(t *testing.T) {
		t.Parallel()
		srv, calls := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			writeReply(w, true, "")
		})

		out, err := apiclient.New(srv.URL).Login(context.Background(), form.LoginForm{Email: "a@@b.com", Password: "Passw0rd"})
		assert.Nil(t, out)
		var ferr *form.FieldError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, form.FieldEmail, ferr.Field)
		assert.Zero(t, calls.Load())
	})

	t.Run("garbage body is a transport failure", func(t *testing.T) {
		t.Parallel()
		srv, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "<html>")
		})

		out, err := apiclient.New(srv.URL).Login(context.Background(), form.LoginForm{Email: "a@b.com", Password: "Passw0rd"})
		require.NoError(t, err)
		tf, ok := out.(apiclient.TransportFailure)
		require.True(t, ok, "got %T", out)
		assert.ErrorIs(t, tf.Err, apiclient.ErrInvalidResponse)
	})

	t.Run("unreachable backend", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		out, err := apiclient.New(url, apiclient.WithTimeout(time.Second)).
			Login(context.Background(), form.LoginForm{Email: "a@b.com", Password: "Passw0rd"})
		require.NoError(t, err)
		_, ok := out.(apiclient.TransportFailure)
		assert.True(t, ok, "got %T", out)
	})
}

func TestClient_Signup(t *testing.T) {
	t.Parallel()

	signup := form.SignupForm{
		Firstname:       "Real",
		Surname:         "Person",
		Email:           "person@email.com",
		Password:        "TestPassword123",
		ConfirmPassword: "TestPassword123",
	}

	t.Run("accepted redirects to login", func(t *testing.T) {
		t.Parallel()
		srv, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, apiclient.SignupPath, r.URL.Path)
			var raw map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
			assert.Equal(t, map[string]string{
				"firstname": "Real",
				"surname":   "Person",
				"email":     "person@email.com",
				"password":  "TestPassword123",
			}, raw)
			writeReply(w, true, "")
		})

		out, err := apiclient.NewFromConfig(apiclient.Config{BaseURL: srv.URL + "/"}).Signup(context.Background(), signup)
		require.NoError(t, err)
		assert.Equal(t, apiclient.Accepted{RedirectTo: "/login"}, out)
	})

	t.Run("mismatched confirmation", func(t *testing.T) {
		t.Parallel()
		f := signup
		f.ConfirmPassword = "TestPassword124"

		_, err := apiclient.New("http://invalid.local").Signup(context.Background(), f)
		var ferr *form.FieldError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, form.MsgPasswordMismatch, ferr.Message)
	})
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	slow := func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
			writeReply(w, true, "")
		}
	}
	login := form.LoginForm{Email: "a@b.com", Password: "Passw0rd"}

	t.Run("applies to a supplied client without mutating it", func(t *testing.T) {
		t.Parallel()
		srv, _ := newBackend(t, slow)
		shared := srv.Client()

		out, err := apiclient.New(srv.URL, apiclient.WithHTTPClient(shared), apiclient.WithTimeout(20*time.Millisecond)).
			Login(context.Background(), login)
		require.NoError(t, err)
		_, ok := out.(apiclient.TransportFailure)
		assert.True(t, ok, "got %T", out)
		assert.Zero(t, shared.Timeout)
	})

	t.Run("config timeout survives a supplied client", func(t *testing.T) {
		t.Parallel()
		srv, _ := newBackend(t, slow)

		out, err := apiclient.NewFromConfig(
			apiclient.Config{BaseURL: srv.URL, Timeout: 20 * time.Millisecond},
			apiclient.WithHTTPClient(srv.Client()),
		).Login(context.Background(), login)
		require.NoError(t, err)
		_, ok := out.(apiclient.TransportFailure)
		assert.True(t, ok, "got %T", out)
	})
}
