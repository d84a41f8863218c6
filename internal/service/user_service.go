// Package service provides business logic services for Valoriza.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/valoriza-app/valoriza-server/internal/domain"
	"github.com/valoriza-app/valoriza-server/internal/repository"
)

// UserService handles account management operations.
type UserService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// CreateUserInput contains the data needed to create a new user.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Admin    bool
}

// Create creates a new user account. The returned entity carries the
// password hash internally but never serializes it.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if input.Email == "" {
		return nil, domain.ErrEmailRequired
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to check email existence")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("%w: failed to hash password", domain.ErrInternal)
	}

	user := domain.NewUser(input.Name, input.Email, string(passwordHash))
	user.Admin = input.Admin

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, domain.ErrUserAlreadyExists
		}
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create user")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Str("email", user.Email).
		Bool("admin", user.Admin).
		Msg("user created")

	return user, nil
}

// Index returns users matching the given filters. Empty filter fields are
// ignored; non-empty fields match partially.
func (s *UserService) Index(ctx context.Context, filter repository.UserFilter) ([]*domain.User, error) {
	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list users")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}
	return users, nil
}

// Search retrieves a user by ID.
func (s *UserService) Search(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to get user")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}
	return user, nil
}

// EditUserInput contains the fields of a partial user update. Nil fields
// are left untouched; non-nil fields are applied even when they carry the
// zero value, so Admin=false is a real change.
type EditUserInput struct {
	ID    string
	Name  *string
	Email *string
	Admin *bool
}

// Edit applies a partial update to an existing user.
func (s *UserService) Edit(ctx context.Context, input EditUserInput) error {
	user, err := s.userRepo.GetByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrEditUserNotFound
		}
		s.logger.Error().Err(err).Str("user_id", input.ID).Msg("failed to get user for edit")
		return fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	changed := false
	if input.Name != nil && *input.Name != user.Name {
		user.Name = *input.Name
		changed = true
	}
	if input.Email != nil && *input.Email != user.Email {
		user.Email = *input.Email
		changed = true
	}
	if input.Admin != nil && *input.Admin != user.Admin {
		user.Admin = *input.Admin
		changed = true
	}

	if !changed {
		return domain.ErrNoChanges
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return domain.ErrUserAlreadyExists
		}
		s.logger.Error().Err(err).Str("user_id", input.ID).Msg("failed to update user")
		return fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user updated")
	return nil
}

// Remove deletes a user account. Users cannot delete themselves, admin or
// not.
func (s *UserService) Remove(ctx context.Context, actingUserID, targetUserID string) error {
	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrDeleteUserNotFound
		}
		s.logger.Error().Err(err).Str("user_id", targetUserID).Msg("failed to get user for delete")
		return fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	if actingUserID == targetUserID {
		return domain.ErrCannotDeleteSelf
	}

	if err := s.userRepo.Delete(ctx, targetUserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrDeleteUserNotFound
		}
		s.logger.Error().Err(err).Str("user_id", targetUserID).Msg("failed to delete user")
		return fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	s.logger.Info().Str("user_id", targetUserID).Str("deleted_by", actingUserID).Msg("user deleted")
	return nil
}

// UpdatePassword changes a user's own password, applying the same format
// rules as account creation.
func (s *UserService) UpdatePassword(ctx context.Context, id, password string) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrPasswordUserNotFound
		}
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to get user for password update")
		return fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	if err := validatePassword(password); err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return fmt.Errorf("%w: failed to hash password", domain.ErrInternal)
	}

	user.PasswordHash = string(passwordHash)

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to update password")
		return fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("password updated")
	return nil
}

// validatePassword enforces the account password format: exactly four
// digits.
func validatePassword(password string) error {
	for _, r := range password {
		if r < '0' || r > '9' {
			return domain.ErrPasswordNotNumeric
		}
	}
	if len(password) != 4 {
		return domain.ErrPasswordWrongSize
	}
	return nil
}
