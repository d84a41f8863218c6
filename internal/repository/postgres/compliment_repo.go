package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/valoriza-app/valoriza-server/internal/domain"
	"github.com/valoriza-app/valoriza-server/internal/repository"
)

// complimentRepository implements repository.ComplimentRepository for PostgreSQL.
type complimentRepository struct {
	db *DB
}

// NewComplimentRepository creates a new PostgreSQL compliment repository.
func NewComplimentRepository(db *DB) repository.ComplimentRepository {
	return &complimentRepository{db: db}
}

// Create creates a new compliment.
func (r *complimentRepository) Create(ctx context.Context, c *domain.Compliment) error {
	query := `
		INSERT INTO compliments (id, tag_id, user_sender, user_receiver, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		c.ID,
		c.TagID,
		c.UserSender,
		c.UserReceiver,
		c.Message,
		c.CreatedAt,
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
		WHERE id = $1
	`

	return r.scanCompliment(r.db.Pool.QueryRow(ctx, query, id))
}

// GetByIDAndSender retrieves a compliment by ID restricted to its sender.
func (r *complimentRepository) GetByIDAndSender(ctx context.Context, id, senderID string) (*domain.Compliment, error) {
	query := `
		SELECT id, tag_id, user_sender, user_receiver, message, created_at
		FROM compliments
		WHERE id = $1 AND user_sender = $2
	`

	return r.scanCompliment(r.db.Pool.QueryRow(ctx, query, id, senderID))
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
		WHERE %s = $1
		ORDER BY created_at DESC
	`, column)

	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list compliments: %w", err)
	}
	defer rows.Close()

	var compliments []*domain.Compliment
	for rows.Next() {
		c := &domain.Compliment{}
		err := rows.Scan(
			&c.ID,
			&c.TagID,
			&c.UserSender,
			&c.UserReceiver,
			&c.Message,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan compliment: %w", err)
		}
		compliments = append(compliments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating compliments: %w", err)
	}

	return compliments, nil
}

// UpdateMessage replaces the message of an existing compliment.
func (r *complimentRepository) UpdateMessage(ctx context.Context, id, message string) error {
	result, err := r.db.Pool.Exec(ctx, `UPDATE compliments SET message = $1 WHERE id = $2`, message, id)
	if err != nil {
		return fmt.Errorf("failed to update compliment message: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrComplimentNotFound
	}

	return nil
}

// Delete deletes a compliment by ID.
func (r *complimentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Pool.Exec(ctx, `DELETE FROM compliments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete compliment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrComplimentNotFound
	}

	return nil
}

// scanCompliment scans a single compliment row.
func (r *complimentRepository) scanCompliment(row pgx.Row) (*domain.Compliment, error) {
	c := &domain.Compliment{}
	err := row.Scan(
		&c.ID,
		&c.TagID,
		&c.UserSender,
		&c.UserReceiver,
		&c.Message,
		&c.CreatedAt,
	)

	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrComplimentNotFound
		}
		return nil, fmt.Errorf("failed to get compliment: %w", err)
	}

	return c, nil
}

// Ensure complimentRepository implements repository.ComplimentRepository.
var _ repository.ComplimentRepository = (*complimentRepository)(nil)
