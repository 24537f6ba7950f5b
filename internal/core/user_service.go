package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"qaboard-backend-go/internal/db"
	"qaboard-backend-go/internal/models"
)

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository, logger *zap.Logger) UserService {
	return &userService{userRepo: userRepo, logger: logger}
}

// GetOrCreate retrieves the profile for identity, creating it on first
// sign-in. The profile is never mutated afterwards: existing documents are
// returned as stored, even if the Auth claims have since changed.
func (s *userService) GetOrCreate(ctx context.Context, identity Identity) (*models.User, bool, error) {
	if identity.UID == "" {
		return nil, false, ErrUnauthenticated
	}

	user, err := s.userRepo.GetByID(ctx, identity.UID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to get user '%s': %w", identity.UID, err)
	}

	newUser := &models.User{
		UID:         identity.UID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		PhotoURL:    identity.PhotoURL,
	}
	if createErr := s.userRepo.Create(ctx, newUser); createErr != nil {
		return nil, false, fmt.Errorf("failed to create user '%s' after not found: %w", identity.UID, createErr)
	}
	s.logger.Info("User profile created", zap.String("uid", identity.UID))
	return newUser, true, nil
}
