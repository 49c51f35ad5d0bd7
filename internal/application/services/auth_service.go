package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	config "github.com/indohomz/indohomz-backend/configs"
	"github.com/indohomz/indohomz-backend/internal/core/domain/auth"
	"github.com/indohomz/indohomz-backend/internal/core/domain/user"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
	"github.com/indohomz/indohomz-backend/internal/utils"
)

type AuthService struct {
	userRepo  ports.UserRepository
	emailSvc  ports.EmailService
	jwtConfig *config.JWTConfig
	logger    *logrus.Logger
}

func NewAuthService(userRepo ports.UserRepository, emailSvc ports.EmailService, jwtConfig *config.JWTConfig, logger *logrus.Logger) ports.AuthService {
	return &AuthService{
		userRepo:  userRepo,
		emailSvc:  emailSvc,
		jwtConfig: jwtConfig,
		logger:    logger,
	}
}

func (s *AuthService) Register(ctx context.Context, req *user.RegisterRequest) (*auth.AuthTokens, error) {
	if err := utils.ValidatePasswordStrength(req.Password); err != nil {
		return nil, err
	}

	if existing, _ := s.userRepo.GetByEmail(ctx, req.Email); existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	if req.Phone != nil && *req.Phone != "" {
		if !utils.ValidatePhoneNumber(*req.Phone) {
			return nil, fmt.Errorf("invalid phone number")
		}
		normalized := utils.NormalizePhoneNumber(*req.Phone)
		req.Phone = &normalized
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         user.RoleUser,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if s.emailSvc != nil {
		if err := s.emailSvc.SendWelcomeEmail(ctx, u); err != nil && s.logger != nil {
			s.logger.WithFields(logrus.Fields{"user_id": u.ID}).WithError(err).Warn("failed to send welcome email")
		}
	}

	return s.GenerateTokens(ctx, u)
}

// Login authenticates with email and password. Unknown email and wrong
// password return the same error so responses cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.AuthTokens, error) {
	foundUser, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	if !utils.VerifyPassword(req.Password, foundUser.PasswordHash) {
		return nil, auth.ErrInvalidCredentials
	}

	if !foundUser.IsActive {
		return nil, auth.ErrUserInactive
	}

	tokens, err := s.GenerateTokens(ctx, foundUser)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	foundUser.LastLoginAt = &now
	if err := s.userRepo.Update(ctx, foundUser); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"user_id": foundUser.ID}).WithError(err).Warn("failed to update user last login time")
		}
	}

	return tokens, nil
}

// RefreshToken issues a fresh token pair from a valid refresh token. The user
// is re-resolved so a deleted or deactivated account cannot keep refreshing.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*auth.AuthTokens, error) {
	claims, err := s.ValidateToken(ctx, refreshToken)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	if claims.TokenType != auth.TokenTypeRefresh {
		return nil, auth.ErrWrongTokenType
	}

	foundUser, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, auth.ErrUserInactive
	}
	if !foundUser.IsActive {
		return nil, auth.ErrUserInactive
	}

	return s.GenerateTokens(ctx, foundUser)
}

// GenerateTokens signs a fresh access/refresh pair for the user.
func (s *AuthService) GenerateTokens(_ context.Context, u *user.User) (*auth.AuthTokens, error) {
	now := time.Now()

	accessToken, err := s.signToken(u, auth.TokenTypeAccess, now, s.jwtConfig.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.signToken(u, auth.TokenTypeRefresh, now, s.jwtConfig.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &auth.AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(s.jwtConfig.AccessTokenTTL.Seconds()),
	}, nil
}

// ValidateToken checks signature and expiry only. It deliberately does not
// check the token type; endpoints that require a specific type compare
// Claims.TokenType themselves.
func (s *AuthService) ValidateToken(_ context.Context, tokenString string) (*auth.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &auth.Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC (prevent alg confusion)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, auth.ErrInvalidToken
	}

	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, auth.ErrInvalidToken
	}

	return claims, nil
}

func (s *AuthService) signToken(u *user.User, tokenType auth.TokenType, now time.Time, ttl time.Duration) (string, error) {
	claims := &auth.Claims{
		UserID:    u.ID,
		Email:     u.Email,
		Role:      u.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtConfig.Secret))
}
