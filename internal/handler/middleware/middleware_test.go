//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"cinemaplus/internal/domain/user"
	"cinemaplus/internal/handler/middleware"
	"cinemaplus/internal/pkg/clock"
	"cinemaplus/internal/pkg/config"
	"cinemaplus/internal/pkg/jwt"
	"cinemaplus/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, svc *jwt.Service, minRole user.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := middleware.NewAuthMiddleware(svc)
	r := gin.New()
	r.GET("/whoami", auth.RequireAuth(), auth.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID.String(), "role": string(actor.Role)})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	r := newAuthRouter(t, svc, user.RoleViewer)
	userID := uuid.New()

	t.Run("success: bearer token sets the actor", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleOperator)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, "operator", body["role"])
	})

	t.Run("success: access_token cookie", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleViewer)
		require.NoError(t, err)

		w := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/whoami", nil,
			[]*http.Cookie{{Name: "access_token", Value: token}}, "")

		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
	})

	t.Run("error: missing token", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	t.Run("error: token signed with another secret", func(t *testing.T) {
		token, err := jwt.NewService("other-secret", time.Hour).GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("error: unknown role claim", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.Role("superuser"))
		require.NoError(t, err)

		w := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid token claims")
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	r := newAuthRouter(t, svc, user.RoleAdmin)

	testCases := []struct {
		role       user.Role
		expectCode int
	}{
		{role: user.RoleViewer, expectCode: http.StatusForbidden},
		{role: user.RoleOperator, expectCode: http.StatusForbidden},
		{role: user.RoleAdmin, expectCode: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(string(tc.role), func(t *testing.T) {
			token, err := svc.GenerateToken(uuid.New(), tc.role)
			require.NoError(t, err)

			w := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, token)
			assert.Equal(t, tc.expectCode, w.Code)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.RateLimitConfig{AdminRPS: 0.001, AdminBurst: 2}

	newRouter := func(rl *middleware.RateLimiter) *gin.Engine {
		r := gin.New()
		r.POST("/admin", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		return r
	}
	exhaust := func(t *testing.T, r *gin.Engine) {
		for i := 0; i < 2; i++ {
			w := httptest.PerformRequest(t, r, http.MethodPost, "/admin", nil, "")
			require.Equal(t, http.StatusNoContent, w.Code, "request %d", i+1)
		}
		w := httptest.PerformRequest(t, r, http.MethodPost, "/admin", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusTooManyRequests, "Rate limit exceeded")
	}

	t.Run("burst is enforced per key", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC))
		exhaust(t, newRouter(middleware.NewRateLimiter(cfg, clk)))
	})

	t.Run("bucket is still drained before the idle window ends", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC))
		rl := middleware.NewRateLimiter(cfg, clk)
		r := newRouter(rl)
		exhaust(t, r)

		clk.Add(9 * time.Minute)
		w := httptest.PerformRequest(t, r, http.MethodPost, "/admin", nil, "")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, 1, rl.Len())
	})

	t.Run("idle keys are evicted and start with a fresh bucket", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC))
		rl := middleware.NewRateLimiter(cfg, clk)
		r := newRouter(rl)
		exhaust(t, r)

		// refill alone would give 0.66 tokens here
		clk.Add(11 * time.Minute)
		w := httptest.PerformRequest(t, r, http.MethodPost, "/admin", nil, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, 1, rl.Len())
	})
}

func TestRequestLogging_PropagatesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: time.RFC3339}).GetSlogLogger()

	r := gin.New()
	r.Use(middleware.RequestLogging(logger))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("caller supplied id is echoed", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-123")
		w := nethttptest.NewRecorder()
		r.ServeHTTP(w, req)

		httptest.AssertHeaders(t, w, map[string]string{"X-Request-ID": "req-123"})
		assert.Equal(t, "req-123", w.Body.String())
	})

	t.Run("id is generated when missing", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, "")

		id := w.Header().Get("X-Request-ID")
		require.NotEmpty(t, id)
		assert.Equal(t, id, w.Body.String())
	})
}
