package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/valoriza-app/valoriza-server/internal/domain"
	"github.com/valoriza-app/valoriza-server/internal/repository"
)

// complimentRepository implements repository.ComplimentRepository for SQLite.
type complimentRepository struct {
	db *DB
}

// NewComplimentRepository creates a new SQLite compliment repository.
func NewComplimentRepository(db *DB) repository.ComplimentRepository {
	return &complimentRepository{db: db}
}

// Create creates a new compliment.
func (r *complimentRepository) Create(ctx context.Context, c *domain.Compliment) error {
	query := `
		INSERT INTO compliments (id, tag_id, user_sender, user_receiver, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.TagID,
		c.UserSender,
		c.UserReceiver,
		c.Message,
		c.CreatedAt.Format(time.RFC3339),
	)

	if err != nil {
		return fmt.Errorf("failed to create compliment: %w", err)
	}

	return nil
}

// GetByID retrieves a compliment by ID.
func (r *complimentRepository) GetByID(ctx context.Context, id string) (*domain.Compliment, error) {
	query := `
		SELECT id, tag_id, user_sender, user_receiver, message, created_at
		FROM compliments
		WHERE id = ?
	`

	return r.scanCompliment(r.db.QueryRowContext(ctx, query, id))
}

// GetByIDAndSender retrieves a compliment by ID restricted to its sender.
func (r *complimentRepository) GetByIDAndSender(ctx context.Context, id, senderID string) (*domain.Compliment, error) {
	query := `
		SELECT id, tag_id, user_sender, user_receiver, message, created_at
		FROM compliments
		WHERE id = ? AND user_sender = ?
	`

	return r.scanCompliment(r.db.QueryRowContext(ctx, query, id, senderID))
}

// ListBySender returns all compliments sent by a user.
func (r *complimentRepository) ListBySender(ctx context.Context, userID string) ([]*domain.Compliment, error) {
	return r.list(ctx, `user_sender`, userID)
}

// ListByReceiver returns all compliments received by a user.
func (r *complimentRepository) ListByReceiver(ctx context.Context, userID string) ([]*domain.Compliment, error) {
	return r.list(ctx, `user_receiver`, userID)
}

func (r *complimentRepository) list(ctx context.Context, column, userID string) ([]*domain.Compliment, error) {
	query := fmt.Sprintf(`
		SELECT id, tag_id, user_sender, user_receiver, message, created_at
		FROM compliments
		WHERE %s = ?
		ORDER BY created_at DESC
	`, column)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list compliments: %w", err)
	}
	defer rows.Close()

	var compliments []*domain.Compliment
	for rows.Next() {
		c := &domain.Compliment{}
		var createdAt string

		err := rows.Scan(
			&c.ID,
			&c.TagID,
			&c.UserSender,
			&c.UserReceiver,
			&c.Message,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan compliment: %w", err)
		}

		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		compliments = append(compliments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating compliments: %w", err)
	}

	return compliments, nil
}

// UpdateMessage replaces the message of an existing compliment.
func (r *complimentRepository) UpdateMessage(ctx context.Context, id, message string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE compliments SET message = ? WHERE id = ?`, message, id)
	if err != nil {
		return fmt.Errorf("failed to update compliment message: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.ErrComplimentNotFound
	}

	return nil
}

// Delete deletes a compliment by ID.
func (r *complimentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM compliments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete compliment: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.ErrComplimentNotFound
	}

	return nil
}

// scanCompliment scans a single compliment row.
func (r *complimentRepository) scanCompliment(row rowScanner) (*domain.Compliment, error) {
	c := &domain.Compliment{}
	var createdAt string

	err := row.Scan(
		&c.ID,
		&c.TagID,
		&c.UserSender,
		&c.UserReceiver,
		&c.Message,
		&createdAt,
	)

	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrComplimentNotFound
		}
		return nil, fmt.Errorf("failed to get compliment: %w", err)
	}

	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return c, nil
}

// Ensure complimentRepository implements repository.ComplimentRepository.
var _ repository.ComplimentRepository = (*complimentRepository)(nil)
