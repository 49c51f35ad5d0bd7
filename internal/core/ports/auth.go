package ports

import (
	"context"

	"github.com/indohomz/indohomz-backend/internal/core/domain/auth"
	"github.com/indohomz/indohomz-backend/internal/core/domain/user"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *user.RegisterRequest) (*auth.AuthTokens, error)
	Login(ctx context.Context, req *auth.LoginRequest) (*auth.AuthTokens, error)
	RefreshToken(ctx context.Context, refreshToken string) (*auth.AuthTokens, error)
	// ValidateToken checks signature and expiry only; token-type checks are
	// the caller's responsibility.
	ValidateToken(ctx context.Context, token string) (*auth.Claims, error)
	GenerateTokens(ctx context.Context, u *user.User) (*auth.AuthTokens, error)
}

// RecaptchaVerifier verifies a reCAPTCHA response token with the provider.
type RecaptchaVerifier interface {
	// Verify returns nil when the token passes, or an error describing why it
	// failed. A disabled verifier accepts everything.
	Verify(ctx context.Context, token, remoteIP string) error
}
