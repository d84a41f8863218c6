package domain

import (
	"time"

	"github.com/google/uuid"
)

// TagNameMaxLength is the maximum tag name length, enforced on both
// creation and rename.
const TagNameMaxLength = 50

// Tag is a category that compliments reference (e.g. "Optimistic").
// Tag names are unique across the system.
type Tag struct {
	// ID is the unique identifier for the tag (UUID, generated at creation).
	ID string `json:"id"`

	// Name is the unique tag name, 1-50 characters.
	Name string `json:"name"`

	// CreatedAt is the timestamp when the tag was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the tag was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTag creates a new Tag with a generated ID.
func NewTag(name string) *Tag {
	now := time.Now().UTC()
	return &Tag{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
