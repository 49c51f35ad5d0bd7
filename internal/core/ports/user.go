package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/indohomz/indohomz-backend/internal/core/domain/user"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByPhone(ctx context.Context, phone string) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserService defines the interface for user business logic
type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *user.UpdateProfileRequest) (*user.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, req *user.ChangePasswordRequest) error
}
