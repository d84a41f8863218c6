package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/valoriza-app/valoriza-server/internal/domain"
	"github.com/valoriza-app/valoriza-server/internal/repository"
)

// tagRepository implements repository.TagRepository for PostgreSQL.
type tagRepository struct {
	db *DB
}

// NewTagRepository creates a new PostgreSQL tag repository.
func NewTagRepository(db *DB) repository.TagRepository {
	return &tagRepository{db: db}
}

// Create creates a new tag.
func (r *tagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	query := `
		INSERT INTO tags (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Pool.Exec(ctx, query, tag.ID, tag.Name, tag.CreatedAt, tag.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTagAlreadyExists
		}
		return fmt.Errorf("failed to create tag: %w", err)
	}

	return nil
}

// GetByID retrieves a tag by ID.
func (r *tagRepository) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM tags
		WHERE id = $1
	`

	tag := &domain.Tag{}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(&tag.ID, &tag.Name, &tag.CreatedAt, &tag.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return tag, nil
}

// Update updates an existing tag.
func (r *tagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	tag.UpdatedAt = time.Now().UTC()

	result, err := r.db.Pool.Exec(ctx,
		`UPDATE tags SET name = $1, updated_at = $2 WHERE id = $3`,
		tag.Name, tag.UpdatedAt, tag.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTagAlreadyExists
		}
		return fmt.Errorf("failed to update tag: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTagNotFound
	}

	return nil
}

// Delete deletes a tag by ID.
func (r *tagRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Pool.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTagNotFound
	}

	return nil
}

// List returns all tags, newest first.
func (r *tagRepository) List(ctx context.Context) ([]*domain.Tag, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM tags
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []*domain.Tag
	for rows.Next() {
		tag := &domain.Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.CreatedAt, &tag.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}

	return tags, nil
}

// ExistsByName checks if a tag with the given name exists.
func (r *tagRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tags WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check tag existence: %w", err)
	}
	return exists, nil
}

// Ensure tagRepository implements repository.TagRepository.
var _ repository.TagRepository = (*tagRepository)(nil)
