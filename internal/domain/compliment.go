package domain

import (
	"time"

	"github.com/google/uuid"
)

// Compliment is a message sent from one user to another, categorized by a
// tag. Sender and receiver must be distinct users; only the sender may edit
// or delete the compliment afterwards.
type Compliment struct {
	// ID is the unique identifier for the compliment (UUID).
	ID string `json:"id"`

	// TagID references the categorizing tag.
	TagID string `json:"tag_id"`

	// UserSender is the ID of the user who sent the compliment.
	UserSender string `json:"user_sender"`

	// UserReceiver is the ID of the user who received the compliment.
	UserReceiver string `json:"user_receiver"`

	// Message is the compliment text. Required non-empty.
	Message string `json:"message"`

	// CreatedAt is the timestamp when the compliment was created.
	CreatedAt time.Time `json:"created_at"`
}

// NewCompliment creates a new Compliment with a generated ID.
func NewCompliment(tagID, userSender, userReceiver, message string) *Compliment {
	return &Compliment{
		ID:           uuid.NewString(),
		TagID:        tagID,
		UserSender:   userSender,
		UserReceiver: userReceiver,
		Message:      message,
		CreatedAt:    time.Now().UTC(),
	}
}
