package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/indohomz/indohomz-backend/internal/core/domain/user"
)

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthTokens represents the authentication token pair returned to clients
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the JWT payload carried by both token types. Verification checks
// signature and expiry only; callers check TokenType against what the
// endpoint expects.
type Claims struct {
	UserID    uuid.UUID     `json:"user_id"`
	Email     string        `json:"email"`
	Role      user.UserRole `json:"role"`
	TokenType TokenType     `json:"type"`

	jwt.RegisteredClaims
}

var (
	// ErrInvalidToken covers malformed, badly signed, and expired tokens.
	// Callers surface it with a generic message.
	ErrInvalidToken = errors.New("invalid token")
	// ErrWrongTokenType means a structurally valid token of the wrong type
	// was presented (refresh token at a resource endpoint or vice versa).
	ErrWrongTokenType = errors.New("wrong token type")
	// ErrUserInactive means the token subject no longer exists or was disabled.
	ErrUserInactive = errors.New("user not found or inactive")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
