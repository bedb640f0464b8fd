package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/cache"
	applogger "github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/logger"
	mockcore "github.com/amirhossein-jamali/game-booking/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAuth = AuthConfig{Secret: "test-secret", Issuer: "game-booking"}

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter() *gin.Engine {
	router := gin.New()
	router.GET("/me", JWTAuth(testAuth, applogger.NewNoopLogger()), func(c *gin.Context) {
		playerID, _ := PlayerIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"playerId": playerID, "role": c.GetString(RoleKey)})
	})
	router.GET("/admin", JWTAuth(testAuth, applogger.NewNoopLogger()), RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func doRequest(router http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	now := time.Now()
	valid, err := IssueToken(testAuth, 42, "player", now, time.Hour)
	require.NoError(t, err)
	expired, err := IssueToken(testAuth, 42, "player", now.Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)
	wrongSecret, err := IssueToken(AuthConfig{Secret: "other", Issuer: testAuth.Issuer}, 42, "player", now, time.Hour)
	require.NoError(t, err)
	wrongIssuer, err := IssueToken(AuthConfig{Secret: testAuth.Secret, Issuer: "someone-else"}, 42, "player", now, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		token      string
		wantStatus int
		wantCode   string
	}{
		{name: "Valid token", token: valid, wantStatus: http.StatusOK},
		{name: "Missing token", token: "", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "Expired token", token: expired, wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "Wrong secret", token: wrongSecret, wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "Wrong issuer", token: wrongIssuer, wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "Garbage", token: "not-a-jwt", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
	}

	router := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, "/me", tt.token)
			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantCode != "" {
				var body dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCode, body.ErrorCode)
				return
			}

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, float64(42), body["playerId"])
			assert.Equal(t, "player", body["role"])
		})
	}
}

func TestRequireRole(t *testing.T) {
	router := newAuthRouter()
	now := time.Now()

	player, err := IssueToken(testAuth, 5, "player", now, time.Hour)
	require.NoError(t, err)
	admin, err := IssueToken(testAuth, 1, "admin", now, time.Hour)
	require.NoError(t, err)

	w := doRequest(router, http.MethodGet, "/admin", player)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")

	w = doRequest(router, http.MethodGet, "/admin", admin)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestID(t *testing.T) {
	ids := mockcore.NewMockIDGenerator(t)
	ids.On("NewID").Return("generated-id").Once()

	var seenInContext string
	router := gin.New()
	router.Use(RequestID(ids))
	router.GET("/", func(c *gin.Context) {
		seenInContext = applogger.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := doRequest(router, http.MethodGet, "/", "")
	assert.Equal(t, "generated-id", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "generated-id", seenInContext)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "caller-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "caller-id", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "caller-id", seenInContext)
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler(applogger.NewNoopLogger()))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := doRequest(router, http.MethodGet, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL", body.ErrorCode)
	assert.Equal(t, 5000, body.Code)
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:3000"}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

type fakeLimiter struct {
	decision cache.RateDecision
	err      error
	keys     []string
}

func (f *fakeLimiter) Allow(_ context.Context, key string) (cache.RateDecision, error) {
	f.keys = append(f.keys, key)
	return f.decision, f.err
}

func TestRateLimit(t *testing.T) {
	newRouter := func(limiter Limiter) *gin.Engine {
		router := gin.New()
		router.GET("/", JWTAuth(testAuth, applogger.NewNoopLogger()), RateLimit(limiter, applogger.NewNoopLogger()),
			func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}
	token, err := IssueToken(testAuth, 9, "player", time.Now(), time.Hour)
	require.NoError(t, err)

	t.Run("Allowed request carries rate headers", func(t *testing.T) {
		limiter := &fakeLimiter{decision: cache.RateDecision{Allowed: true, Remaining: 4, Limit: 5}}
		w := doRequest(newRouter(limiter), http.MethodGet, "/", token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, []string{"player:9"}, limiter.keys)
	})

	t.Run("Exhausted bucket is rejected", func(t *testing.T) {
		limiter := &fakeLimiter{decision: cache.RateDecision{Allowed: false, Limit: 5, RetryAfter: 1500 * time.Millisecond}}
		w := doRequest(newRouter(limiter), http.MethodGet, "/", token)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "2", w.Header().Get("Retry-After"))
		assert.Contains(t, w.Body.String(), "RATE_LIMITED")
	})

	t.Run("Limiter failure lets the request through", func(t *testing.T) {
		limiter := &fakeLimiter{err: errors.New("redis down")}
		w := doRequest(newRouter(limiter), http.MethodGet, "/", token)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
