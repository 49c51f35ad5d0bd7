package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	impl "github.com/indohomz/indohomz-backend/internal/application/services"
	"github.com/indohomz/indohomz-backend/internal/core/domain/user"
	"github.com/indohomz/indohomz-backend/internal/utils"
	tmocks "github.com/indohomz/indohomz-backend/test/mocks"
)

// Test: changing the password verifies the current one and stores a new hash
func TestChangePassword_Success(t *testing.T) {
	id := uuid.New()
	hash, err := utils.HashPassword("Curr3ntPass")
	require.NoError(t, err)
	usr := &user.User{ID: id, Email: "a@b.com", PasswordHash: hash, IsActive: true}

	var updated *user.User
	ur := &tmocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, got uuid.UUID) (*user.User, error) { return usr, nil },
		UpdateFn:  func(ctx context.Context, u *user.User) error { updated = u; return nil },
	}

	svc := impl.NewUserService(ur, nil)
	err = svc.ChangePassword(context.Background(), id, &user.ChangePasswordRequest{
		CurrentPassword: "Curr3ntPass",
		NewPassword:     "N3wStrongPass",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.True(t, utils.VerifyPassword("N3wStrongPass", updated.PasswordHash))
}

// Test: the wrong current password is rejected without touching the account
func TestChangePassword_WrongCurrentRejected(t *testing.T) {
	id := uuid.New()
	hash, _ := utils.HashPassword("Curr3ntPass")
	usr := &user.User{ID: id, PasswordHash: hash}

	updateCalled := false
	ur := &tmocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, got uuid.UUID) (*user.User, error) { return usr, nil },
		UpdateFn:  func(ctx context.Context, u *user.User) error { updateCalled = true; return nil },
	}

	svc := impl.NewUserService(ur, nil)
	err := svc.ChangePassword(context.Background(), id, &user.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "N3wStrongPass",
	})
	require.Error(t, err)
	require.False(t, updateCalled)
}

// Test: a weak replacement password is rejected
func TestChangePassword_WeakNewPasswordRejected(t *testing.T) {
	id := uuid.New()
	hash, _ := utils.HashPassword("Curr3ntPass")
	usr := &user.User{ID: id, PasswordHash: hash}
	ur := &tmocks.UserRepositoryMock{GetByIDFn: func(ctx context.Context, got uuid.UUID) (*user.User, error) { return usr, nil }}

	svc := impl.NewUserService(ur, nil)
	err := svc.ChangePassword(context.Background(), id, &user.ChangePasswordRequest{
		CurrentPassword: "Curr3ntPass",
		NewPassword:     "weak",
	})
	require.ErrorIs(t, err, utils.ErrPasswordTooShort)
}

// Test: updating the profile normalizes the phone and checks email uniqueness
func TestUpdateProfile_PhoneNormalizedEmailUnique(t *testing.T) {
	id := uuid.New()
	usr := &user.User{ID: id, Email: "old@b.com"}
	other := &user.User{ID: uuid.New(), Email: "taken@b.com"}

	ur := &tmocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, got uuid.UUID) (*user.User, error) { return usr, nil },
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			if email == other.Email {
				return other, nil
			}
			return nil, nil
		},
		UpdateFn: func(ctx context.Context, u *user.User) error { return nil },
	}

	svc := impl.NewUserService(ur, nil)

	taken := "taken@b.com"
	_, err := svc.UpdateProfile(context.Background(), id, &user.UpdateProfileRequest{Email: &taken})
	require.Error(t, err)

	phone := "+91 98765 43210"
	updated, err := svc.UpdateProfile(context.Background(), id, &user.UpdateProfileRequest{Phone: &phone})
	require.NoError(t, err)
	require.Equal(t, "9876543210", *updated.Phone)
}
