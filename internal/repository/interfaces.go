// Package repository defines data access interfaces for Valoriza.
// These interfaces abstract database operations, allowing for different
// implementations (SQLite, PostgreSQL, in-memory for testing) while keeping
// the service layer clean.
package repository

import (
	"context"

	"github.com/valoriza-app/valoriza-server/internal/domain"
)

// =============================================================================
// User Repository
// =============================================================================

// UserFilter narrows a user listing. Empty fields are ignored; non-empty
// fields match partially (substring).
type UserFilter struct {
	// Name filters by partial name match.
	Name string

	// Email filters by partial email match.
	Email string
}

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create creates a new user.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update updates an existing user.
	Update(ctx context.Context, user *domain.User) error

	// Delete deletes a user by ID.
	Delete(ctx context.Context, id string) error

	// List returns users matching the filter, newest first.
	List(ctx context.Context, filter UserFilter) ([]*domain.User, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// =============================================================================
// Tag Repository
// =============================================================================

// TagRepository defines the interface for tag data access.
type TagRepository interface {
	// Create creates a new tag.
	Create(ctx context.Context, tag *domain.Tag) error

	// GetByID retrieves a tag by ID.
	GetByID(ctx context.Context, id string) (*domain.Tag, error)

	// Update updates an existing tag.
	Update(ctx context.Context, tag *domain.Tag) error

	// Delete deletes a tag by ID. Referencing compliments are removed by
	// the schema's cascade.
	Delete(ctx context.Context, id string) error

	// List returns all tags, newest first.
	List(ctx context.Context) ([]*domain.Tag, error)

	// ExistsByName checks if a tag with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// =============================================================================
// Compliment Repository
// =============================================================================

// ComplimentRepository defines the interface for compliment data access.
type ComplimentRepository interface {
	// Create creates a new compliment.
	Create(ctx context.Context, c *domain.Compliment) error

	// GetByID retrieves a compliment by ID.
	GetByID(ctx context.Context, id string) (*domain.Compliment, error)

	// GetByIDAndSender retrieves a compliment by ID only if it was sent by
	// the given user. Used for delete, where ownership is part of the lookup.
	GetByIDAndSender(ctx context.Context, id, senderID string) (*domain.Compliment, error)

	// ListBySender returns all compliments sent by a user.
	ListBySender(ctx context.Context, userID string) ([]*domain.Compliment, error)

	// ListByReceiver returns all compliments received by a user.
	ListByReceiver(ctx context.Context, userID string) ([]*domain.Compliment, error)

	// UpdateMessage replaces the message of an existing compliment.
	UpdateMessage(ctx context.Context, id, message string) error

	// Delete deletes a compliment by ID.
	Delete(ctx context.Context, id string) error
}
