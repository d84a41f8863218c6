// Package domain contains the core business entities for Valoriza.
// These are pure Go structs with no external dependencies, representing
// the fundamental concepts of the compliments system.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account in the system.
// Users send and receive compliments and may carry the admin flag that
// gates privileged operations (tag management, user edit/delete).
type User struct {
	// ID is the unique identifier for the user (UUID, generated at creation).
	ID string `json:"id"`

	// Name is the free-text display name.
	Name string `json:"name"`

	// Email is the unique email address, used as the login identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized: this tag is the single boundary that keeps the
	// hash out of every API response.
	PasswordHash string `json:"-"`

	// Admin indicates whether the user has administrative privileges.
	Admin bool `json:"admin"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser creates a new User with a generated ID and default values.
// The admin flag defaults to false; callers opt in explicitly.
func NewUser(name, email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Admin:        false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
