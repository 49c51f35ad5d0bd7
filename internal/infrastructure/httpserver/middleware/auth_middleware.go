package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/indohomz/indohomz-backend/internal/core/domain/auth"
	"github.com/indohomz/indohomz-backend/internal/core/domain/user"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
	"github.com/indohomz/indohomz-backend/internal/infrastructure/httpserver/helpers"
)

type JWTMiddleware struct {
	authService ports.AuthService
	logger      *logrus.Logger
}

func NewJWTMiddleware(authService ports.AuthService, logger *logrus.Logger) *JWTMiddleware {
	return &JWTMiddleware{authService: authService, logger: logger}
}

// RequireJWT creates middleware that validates access tokens and sets user
// context. A refresh token presented here is rejected even though its
// signature is valid.
func (m *JWTMiddleware) RequireJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := helpers.GetJWTTokenFromContext(c)
			if err != nil {
				return err
			}

			claims, err := m.authService.ValidateToken(c.Request().Context(), tokenString)
			if err != nil {
				if m.logger != nil {
					m.logger.WithFields(logrus.Fields{"ip": c.RealIP(), "path": c.Request().URL.Path}).WithError(err).Warn("JWT validation failed")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			if claims.TokenType != auth.TokenTypeAccess {
				return echo.NewHTTPError(http.StatusUnauthorized, "access token required")
			}

			helpers.SetUserID(c, claims.UserID)
			helpers.SetUserRole(c, claims.Role)
			helpers.SetUserEmail(c, claims.Email)

			return next(c)
		}
	}
}

// RequireRole creates middleware that restricts an endpoint to the given
// roles. It must run after RequireJWT.
func (m *JWTMiddleware) RequireRole(roles ...user.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := helpers.GetUserRoleFromContext(c)
			if err != nil {
				return err
			}
			for _, r := range roles {
				if role == r {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
		}
	}
}

// RequireStaff allows admin and staff users.
func (m *JWTMiddleware) RequireStaff() echo.MiddlewareFunc {
	return m.RequireRole(user.RoleAdmin, user.RoleStaff)
}

// RequireAdmin allows admin users only.
func (m *JWTMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return m.RequireRole(user.RoleAdmin)
}
