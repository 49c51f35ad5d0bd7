package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	config "github.com/indohomz/indohomz-backend/configs"
	"github.com/indohomz/indohomz-backend/internal/core/domain/auth"
	"github.com/indohomz/indohomz-backend/internal/core/domain/ratelimit"
	"github.com/indohomz/indohomz-backend/internal/core/domain/user"
	"github.com/indohomz/indohomz-backend/internal/infrastructure/httpserver/helpers"
	"github.com/indohomz/indohomz-backend/internal/infrastructure/httpserver/middleware"
	tmocks "github.com/indohomz/indohomz-backend/test/mocks"
)

func okHandler(c echo.Context) error { return c.NoContent(http.StatusOK) }

func TestJWTMiddleware_MissingTokenReturns401(t *testing.T) {
	e := echo.New()
	m := middleware.NewJWTMiddleware(&tmocks.AuthServiceMock{}, logrus.New())
	handler := m.RequireJWT()(okHandler)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := handler(c)
	require.Error(t, err)
	htErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, htErr.Code)
}

func TestJWTMiddleware_InvalidTokenReturns401(t *testing.T) {
	e := echo.New()
	am := &tmocks.AuthServiceMock{ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
		return nil, auth.ErrInvalidToken
	}}
	m := middleware.NewJWTMiddleware(am, logrus.New())
	handler := m.RequireJWT()(okHandler)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := handler(c)
	require.Error(t, err)
	htErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, htErr.Code)
}

// A refresh token has a valid signature but must not open resource endpoints.
func TestJWTMiddleware_RefreshTokenRejected(t *testing.T) {
	e := echo.New()
	am := &tmocks.AuthServiceMock{ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
		return &auth.Claims{UserID: uuid.New(), TokenType: auth.TokenTypeRefresh}, nil
	}}
	m := middleware.NewJWTMiddleware(am, logrus.New())
	handler := m.RequireJWT()(okHandler)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer refresh-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := handler(c)
	require.Error(t, err)
	htErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, htErr.Code)
}

func TestJWTMiddleware_ValidAccessTokenSetsContext(t *testing.T) {
	e := echo.New()
	uid := uuid.New()
	am := &tmocks.AuthServiceMock{ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
		return &auth.Claims{UserID: uid, Email: "a@b.com", Role: user.RoleStaff, TokenType: auth.TokenTypeAccess}, nil
	}}
	m := middleware.NewJWTMiddleware(am, logrus.New())

	var seenID uuid.UUID
	var seenRole user.UserRole
	handler := m.RequireJWT()(func(c echo.Context) error {
		id, err := helpers.GetUserIDFromContext(c)
		require.NoError(t, err)
		role, err := helpers.GetUserRoleFromContext(c)
		require.NoError(t, err)
		seenID = id
		seenRole = role
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	require.Equal(t, uid, seenID)
	require.Equal(t, user.RoleStaff, seenRole)
}

func TestRequireStaff_UserRoleForbidden(t *testing.T) {
	e := echo.New()
	m := middleware.NewJWTMiddleware(&tmocks.AuthServiceMock{}, logrus.New())
	handler := m.RequireStaff()(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	helpers.SetUserRole(c, user.RoleUser)
	err := handler(c)
	require.Error(t, err)
	htErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusForbidden, htErr.Code)

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	helpers.SetUserRole(c, user.RoleStaff)
	require.NoError(t, handler(c))
}

func testRateLimitConfig() *config.RateLimitConfig {
	return &config.RateLimitConfig{
		Default: config.RateLimitPolicy{MaxRequests: 100, Window: time.Minute},
		Login:   config.RateLimitPolicy{MaxRequests: 10, Window: 15 * time.Minute},
	}
}

func TestRateLimitMiddleware_AllowedSetsHeaders(t *testing.T) {
	e := echo.New()
	rl := &tmocks.RateLimiterServiceMock{CheckFn: func(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error) {
		require.Equal(t, 10, maxRequests)
		require.Equal(t, 15*time.Minute, window)
		return &ratelimit.Decision{Allowed: true, CurrentCount: 3}, nil
	}}
	m := middleware.NewRateLimitMiddleware(rl, testRateLimitConfig(), logrus.New())
	handler := m.Limit("login", testRateLimitConfig().Login)(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "10", rec.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "7", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitMiddleware_RejectedReturns429WithRetryAfter(t *testing.T) {
	e := echo.New()
	rl := &tmocks.RateLimiterServiceMock{CheckFn: func(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error) {
		return &ratelimit.Decision{Allowed: false, CurrentCount: 10, RetryAfter: 42 * time.Second}, nil
	}}
	m := middleware.NewRateLimitMiddleware(rl, testRateLimitConfig(), logrus.New())
	handler := m.Limit("login", testRateLimitConfig().Login)(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "42", rec.Header().Get("Retry-After"))
	require.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "too many requests", body["error"])
	require.EqualValues(t, 42, body["retry_after"])
}

// Sub-second waits are rounded up so clients never retry inside the window.
func TestRateLimitMiddleware_RetryAfterRoundsUp(t *testing.T) {
	e := echo.New()
	rl := &tmocks.RateLimiterServiceMock{CheckFn: func(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error) {
		return &ratelimit.Decision{Allowed: false, CurrentCount: 10, RetryAfter: 300 * time.Millisecond}, nil
	}}
	m := middleware.NewRateLimitMiddleware(rl, testRateLimitConfig(), logrus.New())
	handler := m.Limit("login", testRateLimitConfig().Login)(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "1", rec.Header().Get("Retry-After"))
}

// A limiter error must never block the request.
func TestRateLimitMiddleware_LimiterErrorAllows(t *testing.T) {
	e := echo.New()
	rl := &tmocks.RateLimiterServiceMock{CheckFn: func(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error) {
		return nil, ratelimit.ErrStoreUnavailable
	}}
	m := middleware.NewRateLimitMiddleware(rl, testRateLimitConfig(), logrus.New())
	handler := m.Limit("login", testRateLimitConfig().Login)(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

// Each action gets its own identifier namespace for the same client IP.
func TestClientIdentifier_NamespacedPerAction(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	c := e.NewContext(req, httptest.NewRecorder())

	require.Equal(t, "login:203.0.113.7", helpers.ClientIdentifier(c, "login"))
	require.Equal(t, "register:203.0.113.7", helpers.ClientIdentifier(c, "register"))
}
