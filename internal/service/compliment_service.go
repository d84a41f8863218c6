package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/valoriza-app/valoriza-server/internal/domain"
	"github.com/valoriza-app/valoriza-server/internal/repository"
)

// ComplimentService handles sending and managing compliments between
// users.
type ComplimentService struct {
	complimentRepo repository.ComplimentRepository
	tagRepo        repository.TagRepository
	userRepo       repository.UserRepository
	logger         zerolog.Logger
}

// NewComplimentService creates a new ComplimentService.
func NewComplimentService(
	complimentRepo repository.ComplimentRepository,
	tagRepo repository.TagRepository,
	userRepo repository.UserRepository,
	logger zerolog.Logger,
) *ComplimentService {
	return &ComplimentService{
		complimentRepo: complimentRepo,
		tagRepo:        tagRepo,
		userRepo:       userRepo,
		logger:         logger.With().Str("service", "compliment").Logger(),
	}
}

// CreateComplimentInput contains the data needed to send a compliment.
type CreateComplimentInput struct {
	TagID        string
	UserSender   string
	UserReceiver string
	Message      string
}

// Create sends a compliment from one user to another.
func (s *ComplimentService) Create(ctx context.Context, input CreateComplimentInput) (*domain.Compliment, error) {
	if input.UserSender == input.UserReceiver {
		return nil, domain.ErrSelfCompliment
	}

	if _, err := s.tagRepo.GetByID(ctx, input.TagID); err != nil {
		if errors.Is(err, domain.ErrTagNotFound) {
			return nil, domain.ErrComplimentTagNotFound
		}
		s.logger.Error().Err(err).Str("tag_id", input.TagID).Msg("failed to get tag")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	if _, err := s.userRepo.GetByID(ctx, input.UserReceiver); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrReceiverNotFound
		}
		s.logger.Error().Err(err).Str("user_id", input.UserReceiver).Msg("failed to get receiver")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	if input.Message == "" {
		return nil, domain.ErrInvalidMessage
	}

	compliment := domain.NewCompliment(input.TagID, input.UserSender, input.UserReceiver, input.Message)
	if err := s.complimentRepo.Create(ctx, compliment); err != nil {
		s.logger.Error().Err(err).Msg("failed to create compliment")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	s.logger.Info().
		Str("compliment_id", compliment.ID).
		Str("sender", compliment.UserSender).
		Str("receiver", compliment.UserReceiver).
		Msg("compliment created")

	return compliment, nil
}

// SearchBySender returns all compliments sent by the given user.
func (s *ComplimentService) SearchBySender(ctx context.Context, userID string) ([]*domain.Compliment, error) {
	compliments, err := s.complimentRepo.ListBySender(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to list sent compliments")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}
	return compliments, nil
}

// SearchByReceiver returns all compliments received by the given user.
func (s *ComplimentService) SearchByReceiver(ctx context.Context, userID string) ([]*domain.Compliment, error) {
	compliments, err := s.complimentRepo.ListByReceiver(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to list received compliments")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}
	return compliments, nil
}

// UpdateMessage rewrites the message of a compliment. Only the original
// sender may change it.
func (s *ComplimentService) UpdateMessage(ctx context.Context, id, actingUserID, message string) (*domain.Compliment, error) {
	compliment, err := s.complimentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrComplimentNotFound) {
			return nil, domain.ErrComplimentNotFound
		}
		s.logger.Error().Err(err).Str("compliment_id", id).Msg("failed to get compliment")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	if compliment.UserSender != actingUserID {
		return nil, domain.ErrNotComplimentOwner
	}

	if message == "" {
		return nil, domain.ErrInvalidMessage
	}

	if err := s.complimentRepo.UpdateMessage(ctx, id, message); err != nil {
		if errors.Is(err, domain.ErrComplimentNotFound) {
			return nil, domain.ErrComplimentNotFound
		}
		s.logger.Error().Err(err).Str("compliment_id", id).Msg("failed to update compliment")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	compliment.Message = message
	s.logger.Info().Str("compliment_id", id).Msg("compliment message updated")
	return compliment, nil
}

// Remove deletes a compliment. The lookup is scoped to the acting user,
// so a compliment owned by someone else reads as not found.
func (s *ComplimentService) Remove(ctx context.Context, id, actingUserID string) error {
	if _, err := s.complimentRepo.GetByIDAndSender(ctx, id, actingUserID); err != nil {
		if errors.Is(err, domain.ErrComplimentNotFound) {
			return domain.ErrComplimentNotFound
		}
		s.logger.Error().Err(err).Str("compliment_id", id).Msg("failed to get compliment for delete")
		return fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	if err := s.complimentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrComplimentNotFound) {
			return domain.ErrComplimentNotFound
		}
		s.logger.Error().Err(err).Str("compliment_id", id).Msg("failed to delete compliment")
		return fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	s.logger.Info().Str("compliment_id", id).Str("deleted_by", actingUserID).Msg("compliment deleted")
	return nil
}
