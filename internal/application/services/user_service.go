package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/indohomz/indohomz-backend/internal/core/domain/user"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
	"github.com/indohomz/indohomz-backend/internal/utils"
)

type UserService struct {
	userRepo ports.UserRepository
	logger   *logrus.Logger
}

func NewUserService(userRepo ports.UserRepository, logger *logrus.Logger) ports.UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *user.UpdateProfileRequest) (*user.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != u.Email {
		if existing, _ := s.userRepo.GetByEmail(ctx, *req.Email); existing != nil {
			return nil, fmt.Errorf("email already in use")
		}
		u.Email = *req.Email
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Phone != nil {
		if *req.Phone != "" && !utils.ValidatePhoneNumber(*req.Phone) {
			return nil, fmt.Errorf("invalid phone number")
		}
		normalized := utils.NormalizePhoneNumber(*req.Phone)
		u.Phone = &normalized
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"user_id": id}).Info("user profile updated")
	}

	return u, nil
}

func (s *UserService) ChangePassword(ctx context.Context, id uuid.UUID, req *user.ChangePasswordRequest) error {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !utils.VerifyPassword(req.CurrentPassword, u.PasswordHash) {
		return fmt.Errorf("current password is incorrect")
	}

	if err := utils.ValidatePasswordStrength(req.NewPassword); err != nil {
		return err
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.PasswordHash = hash
	if err := s.userRepo.Update(ctx, u); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"user_id": id}).Info("user password changed")
	}

	return nil
}
