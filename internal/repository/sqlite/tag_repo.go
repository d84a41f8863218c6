package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/valoriza-app/valoriza-server/internal/domain"
	"github.com/valoriza-app/valoriza-server/internal/repository"
)

// tagRepository implements repository.TagRepository for SQLite.
type tagRepository struct {
	db *DB
}

// NewTagRepository creates a new SQLite tag repository.
func NewTagRepository(db *DB) repository.TagRepository {
	return &tagRepository{db: db}
}

// Create creates a new tag.
func (r *tagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	query := `
		INSERT INTO tags (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		tag.ID,
		tag.Name,
		tag.CreatedAt.Format(time.RFC3339),
		tag.UpdatedAt.Format(time.RFC3339),
	)

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
		WHERE id = ?
	`

	tag := &domain.Tag{}
	var createdAt, updatedAt string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tag.ID,
		&tag.Name,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	tag.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	tag.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return tag, nil
}

// Update updates an existing tag.
func (r *tagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	tag.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE tags
		SET name = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		tag.Name,
		tag.UpdatedAt.Format(time.RFC3339),
		tag.ID,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTagAlreadyExists
		}
		return fmt.Errorf("failed to update tag: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.ErrTagNotFound
	}

	return nil
}

// Delete deletes a tag by ID.
func (r *tagRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.ErrTagNotFound
	}

	return nil
}

// List returns all tags, newest first.
func (r *tagRepository) List(ctx context.Context) ([]*domain.Tag, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM tags
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []*domain.Tag
	for rows.Next() {
		tag := &domain.Tag{}
		var createdAt, updatedAt string

		if err := rows.Scan(&tag.ID, &tag.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}

		tag.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		tag.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}

	return tags, nil
}

// ExistsByName checks if a tag with the given name exists.
func (r *tagRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tags WHERE name = ?`, name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check tag existence: %w", err)
	}
	return count > 0, nil
}

// Ensure tagRepository implements repository.TagRepository.
var _ repository.TagRepository = (*tagRepository)(nil)
