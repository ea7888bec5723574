package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"togetherly/internal/infrastructure/auth"
	"togetherly/internal/infrastructure/ratelimit"
	"togetherly/internal/shared/config"
	"togetherly/internal/shared/constants"
	"togetherly/internal/shared/logger"
	"togetherly/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testCookie = config.CookieConfig{Name: "session", Path: "/"}

// newEngine mounts handlers in front of a handler that echoes the caller.
func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint(constants.ContextKeyUserID),
			"email":   c.GetString(constants.ContextKeyUserEmail),
		})
	})
	r.Any("/echo", handlers...)
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	token, _, err := jwtSvc.Generate(7, "jo@example.com")
	require.NoError(t, err)

	m := NewAuthMiddleware(jwtSvc, testCookie, logger.NewNop())

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/echo", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: token})
		w := serve(newEngine(m.RequireAuth()), req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":7`)
		assert.Contains(t, w.Body.String(), "jo@example.com")
	})

	t.Run("bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/echo", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := serve(newEngine(m.RequireAuth()), req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing", func(t *testing.T) {
		w := serve(newEngine(m.RequireAuth()), httptest.NewRequest(http.MethodGet, "/echo", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"type":"unauthorized"`)
	})

	t.Run("forged", func(t *testing.T) {
		other, _, _ := auth.NewJWTService("other-secret", time.Hour).Generate(7, "jo@example.com")
		req := httptest.NewRequest(http.MethodGet, "/echo", nil)
		req.Header.Set("Authorization", "Bearer "+other)
		w := serve(newEngine(m.RequireAuth()), req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("optional lets anonymous through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/echo", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := serve(newEngine(m.OptionalAuth()), req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":0`)
	})
}

type stubChecker struct {
	admins map[string]bool
	err    error
}

func (s stubChecker) Enforce(email, _, _ string) (bool, error) {
	return s.admins[email], s.err
}

func withUser(id uint, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, id)
		c.Set(constants.ContextKeyUserEmail, email)
	}
}

func TestPermissionMiddleware(t *testing.T) {
	checker := stubChecker{admins: map[string]bool{"admin@example.com": true}}

	tests := []struct {
		name       string
		restricted bool
		checker    PermissionChecker
		pre        gin.HandlerFunc
		want       int
	}{
		{"anonymous", false, checker, func(c *gin.Context) {}, http.StatusUnauthorized},
		{"unrestricted user", false, checker, withUser(2, "jo@example.com"), http.StatusOK},
		{"restricted non-admin", true, checker, withUser(2, "jo@example.com"), http.StatusForbidden},
		{"restricted admin", true, checker, withUser(1, "admin@example.com"), http.StatusOK},
		{"checker error", true, stubChecker{err: errors.New("db down")}, withUser(1, "admin@example.com"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPermissionMiddleware(tt.checker, tt.restricted, logger.NewNop())
			w := serve(newEngine(tt.pre, m.RequirePermission("admin_console", "read")), httptest.NewRequest(http.MethodGet, "/echo", nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestCSRF(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		method  string
		cookie  string
		header  string
		want    int
	}{
		{"disabled", false, http.MethodPost, "", "", http.StatusOK},
		{"safe method", true, http.MethodGet, "", "", http.StatusOK},
		{"missing cookie", true, http.MethodPost, "", "abc", http.StatusForbidden},
		{"missing header", true, http.MethodPost, "abc", "", http.StatusForbidden},
		{"mismatch", true, http.MethodPost, "abc", "abd", http.StatusForbidden},
		{"match", true, http.MethodPost, "abc", "abc", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/echo", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: utils.CSRFTokenCookie, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set(utils.CSRFTokenHeader, tt.header)
			}
			w := serve(newEngine(CSRF(tt.enabled)), req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}
func (failingLimiter) Reset(context.Context, string) error { return nil }

func TestRateLimiter(t *testing.T) {
	limiter := ratelimit.NewMemoryRateLimiter(ratelimit.RateLimitConfig{RequestsPerMinute: 2})
	r := newEngine(NewRateLimiter(limiter, "generate", logger.NewNop()).Limit())

	codes := make([]int, 0, 3)
	for range 3 {
		codes = append(codes, serve(r, httptest.NewRequest(http.MethodPost, "/echo", nil)).Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	open := newEngine(NewRateLimiter(failingLimiter{}, "generate", logger.NewNop()).Limit())
	assert.Equal(t, http.StatusOK, serve(open, httptest.NewRequest(http.MethodPost, "/echo", nil)).Code)

	var disabled *RateLimiter
	assert.Equal(t, http.StatusOK, serve(newEngine(disabled.Limit()), httptest.NewRequest(http.MethodPost, "/echo", nil)).Code)
}

func TestCORS(t *testing.T) {
	r := newEngine(CORS([]string{"https://app.example.com"}))

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := serve(r, req)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = serve(r, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewNop()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
