package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilltracker/config"
)

type stubVerifier struct {
	valid  string
	userID uuid.UUID
}

func (s stubVerifier) Verify(token string) (uuid.UUID, error) {
	if token != s.valid {
		return uuid.Nil, errors.New("bad token")
	}
	return s.userID, nil
}

func newAuthApp(v TokenVerifier) *fiber.App {
	app := fiber.New()
	app.Get("/private", RequireAuth(v), func(c *fiber.Ctx) error {
		id, ok := UserID(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(id.String())
	})
	return app
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()
	app := newAuthApp(stubVerifier{valid: "good", userID: userID})

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
	}{
		{name: "x-auth-token", headers: map[string]string{"x-auth-token": "good"}, wantStatus: http.StatusOK},
		{name: "bearer", headers: map[string]string{"Authorization": "Bearer good"}, wantStatus: http.StatusOK},
		{name: "lowercase bearer", headers: map[string]string{"Authorization": "bearer good"}, wantStatus: http.StatusOK},
		{name: "missing", wantStatus: http.StatusUnauthorized},
		{name: "invalid", headers: map[string]string{"x-auth-token": "bad"}, wantStatus: http.StatusUnauthorized},
		{name: "basic scheme", headers: map[string]string{"Authorization": "Basic good"}, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestTimerMetrics(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	app := fiber.New()
	app.Use(TimerMetrics)
	app.Get("/ok", func(c *fiber.Ctx) error {
		c.Locals(LocalUserID, "u-1")
		return c.SendString("ok")
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, buf.String(), `"path":"/ok"`)
	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"user_id":"u-1"`)

	buf.Reset()
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"status":404`)
}

func TestRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Post("/login", RateLimiter(config.RateLimit{Max: 2, Window: time.Minute}, NewCacheStorage(time.Minute)),
		func(c *fiber.Ctx) error { return c.SendString("ok") })

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestCacheStorage(t *testing.T) {
	s := NewCacheStorage(time.Minute)

	v, err := s.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, s.Set("k", []byte("v"), time.Minute))
	v, err = s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)

	require.NoError(t, s.Set("short", []byte("v"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	v, _ = s.Get("short")
	assert.Nil(t, v)

	require.NoError(t, s.Delete("k"))
	v, _ = s.Get("k")
	assert.Nil(t, v)

	require.NoError(t, s.Set("a", []byte("1"), 0))
	require.NoError(t, s.Reset())
	v, _ = s.Get("a")
	assert.Nil(t, v)
	assert.NoError(t, s.Close())
}
