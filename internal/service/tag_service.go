package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/valoriza-app/valoriza-server/internal/domain"
	"github.com/valoriza-app/valoriza-server/internal/repository"
)

const (
	tagListCacheKey = "tags:all"
	tagListCacheTTL = 5 * time.Minute
)

// TagService handles compliment tag management. The tag list is cached
// and invalidated on every write.
type TagService struct {
	tagRepo repository.TagRepository
	cache   repository.Cache
	logger  zerolog.Logger
}

// NewTagService creates a new TagService.
func NewTagService(tagRepo repository.TagRepository, cache repository.Cache, logger zerolog.Logger) *TagService {
	return &TagService{
		tagRepo: tagRepo,
		cache:   cache,
		logger:  logger.With().Str("service", "tag").Logger(),
	}
}

// Create registers a new tag with a unique name.
func (s *TagService) Create(ctx context.Context, name string) (*domain.Tag, error) {
	if err := validateTagName(name); err != nil {
		return nil, err
	}

	exists, err := s.tagRepo.ExistsByName(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to check tag existence")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}
	if exists {
		return nil, domain.ErrTagAlreadyExists
	}

	tag := domain.NewTag(name)
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		if errors.Is(err, domain.ErrTagAlreadyExists) {
			return nil, domain.ErrTagAlreadyExists
		}
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create tag")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	s.invalidateListCache(ctx)
	s.logger.Info().Str("tag_id", tag.ID).Str("name", tag.Name).Msg("tag created")
	return tag, nil
}

// Search returns all registered tags, served from cache when possible.
func (s *TagService) Search(ctx context.Context) ([]*domain.Tag, error) {
	if cached, err := s.cache.Get(ctx, tagListCacheKey); err == nil {
		var tags []*domain.Tag
		if err := json.Unmarshal(cached, &tags); err == nil {
			return tags, nil
		}
		// Corrupt entry, fall through to the repository.
		s.cache.Delete(ctx, tagListCacheKey)
	}

	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list tags")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	if data, err := json.Marshal(tags); err == nil {
		if err := s.cache.Set(ctx, tagListCacheKey, data, tagListCacheTTL); err != nil {
			s.logger.Debug().Err(err).Msg("failed to cache tag list")
		}
	}

	return tags, nil
}

// Update renames an existing tag.
func (s *TagService) Update(ctx context.Context, id, name string) (*domain.Tag, error) {
	if err := validateTagName(name); err != nil {
		return nil, err
	}

	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTagNotFound) {
			return nil, domain.ErrTagNotFound
		}
		s.logger.Error().Err(err).Str("tag_id", id).Msg("failed to get tag")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	tag.Name = name
	if err := s.tagRepo.Update(ctx, tag); err != nil {
		if errors.Is(err, domain.ErrTagAlreadyExists) {
			return nil, domain.ErrTagAlreadyExists
		}
		s.logger.Error().Err(err).Str("tag_id", id).Msg("failed to update tag")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	s.invalidateListCache(ctx)
	s.logger.Info().Str("tag_id", tag.ID).Str("name", tag.Name).Msg("tag updated")
	return tag, nil
}

// Remove deletes a tag. Compliments referencing the tag are removed by
// the database cascade.
func (s *TagService) Remove(ctx context.Context, id string) error {
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrTagNotFound) {
			return domain.ErrTagNotFound
		}
		s.logger.Error().Err(err).Str("tag_id", id).Msg("failed to delete tag")
		return fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	s.invalidateListCache(ctx)
	s.logger.Info().Str("tag_id", id).Msg("tag deleted")
	return nil
}

func (s *TagService) invalidateListCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, tagListCacheKey); err != nil {
		s.logger.Debug().Err(err).Msg("failed to invalidate tag list cache")
	}
}

func validateTagName(name string) error {
	if name == "" {
		return domain.ErrTagNameRequired
	}
	if len(name) > domain.TagNameMaxLength {
		return domain.ErrTagNameTooLong
	}
	return nil
}
