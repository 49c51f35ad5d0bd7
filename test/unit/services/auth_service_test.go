package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	config "github.com/indohomz/indohomz-backend/configs"
	impl "github.com/indohomz/indohomz-backend/internal/application/services"
	"github.com/indohomz/indohomz-backend/internal/core/domain/auth"
	"github.com/indohomz/indohomz-backend/internal/core/domain/user"
	tmocks "github.com/indohomz/indohomz-backend/test/mocks"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour}
}

// Test: Register creates the user, sends the welcome mail and returns tokens
func TestRegister_Success(t *testing.T) {
	var created *user.User
	welcomeSent := false
	ur := &tmocks.UserRepositoryMock{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) { return nil, nil },
		CreateFn:     func(ctx context.Context, u *user.User) error { created = u; return nil },
	}
	es := &tmocks.EmailServiceMock{SendWelcomeEmailFn: func(ctx context.Context, u *user.User) error {
		welcomeSent = true
		return nil
	}}

	svc := impl.NewAuthService(ur, es, testJWTConfig(), nil)
	phone := "+91 98765 43210"
	tokens, err := svc.Register(context.Background(), &user.RegisterRequest{
		Email:    "new@indohomz.com",
		Password: "Str0ngPass",
		Name:     "New User",
		Phone:    &phone,
	})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)
	require.NotNil(t, created)
	require.Equal(t, user.RoleUser, created.Role)
	require.True(t, created.IsActive)
	require.NotEqual(t, "Str0ngPass", created.PasswordHash)
	require.Equal(t, "9876543210", *created.Phone)
	require.True(t, welcomeSent)
}

// Test: weak passwords are rejected before any repository call
func TestRegister_WeakPasswordRejected(t *testing.T) {
	repoCalled := false
	ur := &tmocks.UserRepositoryMock{GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
		repoCalled = true
		return nil, nil
	}}

	svc := impl.NewAuthService(ur, nil, testJWTConfig(), nil)
	_, err := svc.Register(context.Background(), &user.RegisterRequest{Email: "a@b.com", Password: "short", Name: "A"})
	require.Error(t, err)
	require.False(t, repoCalled)
}

// Test: Login succeeds and records the login time
func TestLogin_Success_UpdatesLastLogin(t *testing.T) {
	passHash, _ := bcrypt.GenerateFromPassword([]byte("Str0ngPass"), bcrypt.DefaultCost)
	uid := uuid.New()
	usr := &user.User{ID: uid, Email: "a@b.com", PasswordHash: string(passHash), Role: user.RoleUser, IsActive: true}

	var updated *user.User
	ur := &tmocks.UserRepositoryMock{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) { return usr, nil },
		UpdateFn:     func(ctx context.Context, u *user.User) error { updated = u; return nil },
	}

	svc := impl.NewAuthService(ur, nil, testJWTConfig(), nil)
	tokens, err := svc.Login(context.Background(), &auth.LoginRequest{Email: "a@b.com", Password: "Str0ngPass"})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.Equal(t, "bearer", tokens.TokenType)
	require.Equal(t, int64(60), tokens.ExpiresIn)
	require.NotNil(t, updated)
	require.NotNil(t, updated.LastLoginAt)
}

// Test: unknown email and wrong password both map to the same error
func TestLogin_GenericErrorPreventsEnumeration(t *testing.T) {
	passHash, _ := bcrypt.GenerateFromPassword([]byte("Str0ngPass"), bcrypt.DefaultCost)
	usr := &user.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: string(passHash), IsActive: true}

	svc := impl.NewAuthService(&tmocks.UserRepositoryMock{}, nil, testJWTConfig(), nil)
	_, errUnknown := svc.Login(context.Background(), &auth.LoginRequest{Email: "missing@b.com", Password: "Str0ngPass"})
	require.ErrorIs(t, errUnknown, auth.ErrInvalidCredentials)

	ur := &tmocks.UserRepositoryMock{GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) { return usr, nil }}
	svc = impl.NewAuthService(ur, nil, testJWTConfig(), nil)
	_, errWrongPass := svc.Login(context.Background(), &auth.LoginRequest{Email: "a@b.com", Password: "wrong"})
	require.ErrorIs(t, errWrongPass, auth.ErrInvalidCredentials)

	require.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

// Test: disabled accounts cannot log in even with the right password
func TestLogin_InactiveUserRejected(t *testing.T) {
	passHash, _ := bcrypt.GenerateFromPassword([]byte("Str0ngPass"), bcrypt.DefaultCost)
	usr := &user.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: string(passHash), IsActive: false}
	ur := &tmocks.UserRepositoryMock{GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) { return usr, nil }}

	svc := impl.NewAuthService(ur, nil, testJWTConfig(), nil)
	_, err := svc.Login(context.Background(), &auth.LoginRequest{Email: "a@b.com", Password: "Str0ngPass"})
	require.ErrorIs(t, err, auth.ErrUserInactive)
}

// Test: generated access tokens round-trip through ValidateToken with claims intact
func TestGenerateTokens_ValidateRoundTrip(t *testing.T) {
	uid := uuid.New()
	usr := &user.User{ID: uid, Email: "a@b.com", Role: user.RoleStaff}

	svc := impl.NewAuthService(&tmocks.UserRepositoryMock{}, nil, testJWTConfig(), nil)
	tokens, err := svc.GenerateTokens(context.Background(), usr)
	require.NoError(t, err)

	accessClaims, err := svc.ValidateToken(context.Background(), tokens.AccessToken)
	require.NoError(t, err)
	require.Equal(t, uid, accessClaims.UserID)
	require.Equal(t, "a@b.com", accessClaims.Email)
	require.Equal(t, user.RoleStaff, accessClaims.Role)
	require.Equal(t, auth.TokenTypeAccess, accessClaims.TokenType)

	refreshClaims, err := svc.ValidateToken(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, auth.TokenTypeRefresh, refreshClaims.TokenType)
}

// Test: tokens signed with a different secret are rejected
func TestValidateToken_WrongSecretRejected(t *testing.T) {
	usr := &user.User{ID: uuid.New(), Email: "a@b.com", Role: user.RoleUser}
	other := impl.NewAuthService(&tmocks.UserRepositoryMock{}, nil, &config.JWTConfig{Secret: "other-secret", AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour}, nil)
	tokens, err := other.GenerateTokens(context.Background(), usr)
	require.NoError(t, err)

	svc := impl.NewAuthService(&tmocks.UserRepositoryMock{}, nil, testJWTConfig(), nil)
	_, err = svc.ValidateToken(context.Background(), tokens.AccessToken)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

// Test: expired tokens are rejected
func TestValidateToken_ExpiredRejected(t *testing.T) {
	usr := &user.User{ID: uuid.New(), Email: "a@b.com", Role: user.RoleUser}
	expired := impl.NewAuthService(&tmocks.UserRepositoryMock{}, nil, &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: -time.Minute, RefreshTokenTTL: time.Hour}, nil)
	tokens, err := expired.GenerateTokens(context.Background(), usr)
	require.NoError(t, err)

	svc := impl.NewAuthService(&tmocks.UserRepositoryMock{}, nil, testJWTConfig(), nil)
	_, err = svc.ValidateToken(context.Background(), tokens.AccessToken)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

// Test: RefreshToken exchanges a refresh token for a fresh pair
func TestRefreshToken_Success(t *testing.T) {
	uid := uuid.New()
	usr := &user.User{ID: uid, Email: "a@b.com", Role: user.RoleUser, IsActive: true}
	ur := &tmocks.UserRepositoryMock{GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) {
		require.Equal(t, uid, id)
		return usr, nil
	}}

	svc := impl.NewAuthService(ur, nil, testJWTConfig(), nil)
	tokens, err := svc.GenerateTokens(context.Background(), usr)
	require.NoError(t, err)

	fresh, err := svc.RefreshToken(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, fresh.AccessToken)
	require.NotEmpty(t, fresh.RefreshToken)
}

// Test: an access token presented at the refresh endpoint is rejected even
// though its signature is valid
func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	usr := &user.User{ID: uuid.New(), Email: "a@b.com", Role: user.RoleUser, IsActive: true}

	svc := impl.NewAuthService(&tmocks.UserRepositoryMock{}, nil, testJWTConfig(), nil)
	tokens, err := svc.GenerateTokens(context.Background(), usr)
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), tokens.AccessToken)
	require.ErrorIs(t, err, auth.ErrWrongTokenType)
}

// Test: a deactivated account cannot keep refreshing
func TestRefreshToken_InactiveUserRejected(t *testing.T) {
	uid := uuid.New()
	usr := &user.User{ID: uid, Email: "a@b.com", Role: user.RoleUser, IsActive: true}
	ur := &tmocks.UserRepositoryMock{GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) {
		return &user.User{ID: uid, Email: "a@b.com", IsActive: false}, nil
	}}

	svc := impl.NewAuthService(ur, nil, testJWTConfig(), nil)
	tokens, err := svc.GenerateTokens(context.Background(), usr)
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), tokens.RefreshToken)
	require.ErrorIs(t, err, auth.ErrUserInactive)
}
