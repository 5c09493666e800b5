package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authforms/pkg/cookie"
)

const (
	secretA = "0123456789abcdef0123456789abcdef"
	secretB = "fedcba9876543210fedcba9876543210"
)

func roundTrip(t *testing.T, set func(w http.ResponseWriter)) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	set(rec)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := cookie.New(nil)
	assert.ErrorIs(t, err, cookie.ErrNoSecret)

	_, err = cookie.New([]string{"", ""})
	assert.ErrorIs(t, err, cookie.ErrNoSecret)

	_, err = cookie.New([]string{"short"})
	assert.ErrorIs(t, err, cookie.ErrSecretTooShort)
}

func TestManager_Signed(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.New([]string{secretA})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		req := roundTrip(t, func(w http.ResponseWriter) { mgr.SetSigned(w, "sid", "token-1", cookie.WithMaxAge(60)) })
		got, err := mgr.GetSigned(req, "sid")
		require.NoError(t, err)
		assert.Equal(t, "token-1", got)
	})

	t.Run("tampered value", func(t *testing.T) {
		t.Parallel()
		req := roundTrip(t, func(w http.ResponseWriter) { mgr.SetSigned(w, "sid", "token-1") })
		c, err := req.Cookie("sid")
		require.NoError(t, err)
		_, sig, _ := strings.Cut(c.Value, "|")

		forged := httptest.NewRequest(http.MethodGet, "/", nil)
		forged.AddCookie(&http.Cookie{Name: "sid", Value: "dG9rZW4tMg==|" + sig})
		_, err = mgr.GetSigned(forged, "sid")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: "no-separator"})
		_, err := mgr.GetSigned(req, "sid")
		assert.ErrorIs(t, err, cookie.ErrInvalidFormat)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		_, err := mgr.GetSigned(httptest.NewRequest(http.MethodGet, "/", nil), "sid")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})
}

func TestManager_Rotation(t *testing.T) {
	t.Parallel()

	old, err := cookie.New([]string{secretA})
	require.NoError(t, err)
	rotated, err := cookie.New([]string{secretB, secretA})
	require.NoError(t, err)

	req := roundTrip(t, func(w http.ResponseWriter) { old.SetSigned(w, "sid", "token-1") })
	got, err := rotated.GetSigned(req, "sid")
	require.NoError(t, err)
	assert.Equal(t, "token-1", got)
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.NewFromConfig(cookie.Config{Secure: true}, secretA)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	mgr.Delete(rec, "sid")
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.True(t, cookies[0].Secure)
	assert.True(t, cookies[0].HttpOnly)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.NewFromConfig(cookie.Config{Secrets: " " + secretB + " , " + secretA})
	require.NoError(t, err)
	req := roundTrip(t, func(w http.ResponseWriter) { mgr.SetSigned(w, "sid", "v") })

	onlyB, err := cookie.New([]string{secretB})
	require.NoError(t, err)
	got, err := onlyB.GetSigned(req, "sid")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	_, err = cookie.NewFromConfig(cookie.Config{})
	assert.ErrorIs(t, err, cookie.ErrNoSecret)
}
