package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/indohomz/indohomz-backend/internal/core/domain/auth"
	"github.com/indohomz/indohomz-backend/internal/core/domain/user"
)

// Auth handlers
func (s *Server) register(c echo.Context) error {
	var req user.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email, password and name are required")
	}

	tokens, err := s.authSvc.Register(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, tokens)
}

func (s *Server) login(c echo.Context) error {
	var req auth.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	tokens, err := s.authSvc.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrUserInactive) {
			return echo.NewHTTPError(http.StatusForbidden, "account is disabled")
		}
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	return c.JSON(http.StatusOK, tokens)
}

func (s *Server) refreshToken(c echo.Context) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.RefreshToken == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "refresh_token is required")
	}

	tokens, err := s.authSvc.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid refresh token")
	}

	return c.JSON(http.StatusOK, tokens)
}

// forgotPassword answers identically whether or not the account exists.
func (s *Server) forgotPassword(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	if s.logger != nil {
		s.logger.WithField("ip", c.RealIP()).Info("password reset requested")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "if an account exists for this email, reset instructions have been sent",
	})
}

// logout acknowledges the client discarding its tokens. Tokens are stateless
// and stay valid until expiry; there is no server-side revocation list.
func (s *Server) logout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}
