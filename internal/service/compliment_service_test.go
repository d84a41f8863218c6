package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/valoriza-app/valoriza-server/internal/domain"
)

func newComplimentFixture() (*MockComplimentRepository, *MockTagRepository, *MockUserRepository) {
	compliments := NewMockComplimentRepository()
	tags := NewMockTagRepository()
	users := NewMockUserRepository()

	tags.tags["t1"] = &domain.Tag{ID: "t1", Name: "teamwork"}
	users.users["sender"] = &domain.User{ID: "sender", Name: "Alice", Email: "alice@example.com"}
	users.users["receiver"] = &domain.User{ID: "receiver", Name: "Bob", Email: "bob@example.com"}

	return compliments, tags, users
}

func TestComplimentService_Create(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateComplimentInput
		wantErr error
	}{
		{
			name: "success",
			input: CreateComplimentInput{
				TagID:        "t1",
				UserSender:   "sender",
				UserReceiver: "receiver",
				Message:      "great work on the release",
			},
		},
		{
			name: "self compliment",
			input: CreateComplimentInput{
				TagID:        "t1",
				UserSender:   "sender",
				UserReceiver: "sender",
				Message:      "I am great",
			},
			wantErr: domain.ErrSelfCompliment,
		},
		{
			name: "tag not found",
			input: CreateComplimentInput{
				TagID:        "nope",
				UserSender:   "sender",
				UserReceiver: "receiver",
				Message:      "great work",
			},
			wantErr: domain.ErrComplimentTagNotFound,
		},
		{
			name: "receiver not found",
			input: CreateComplimentInput{
				TagID:        "t1",
				UserSender:   "sender",
				UserReceiver: "ghost",
				Message:      "great work",
			},
			wantErr: domain.ErrReceiverNotFound,
		},
		{
			name: "empty message",
			input: CreateComplimentInput{
				TagID:        "t1",
				UserSender:   "sender",
				UserReceiver: "receiver",
				Message:      "",
			},
			wantErr: domain.ErrInvalidMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compliments, tags, users := newComplimentFixture()
			svc := NewComplimentService(compliments, tags, users, zerolog.Nop())

			c, err := svc.Create(context.Background(), tt.input)

			if tt.wantErr != nil {
				if err == nil {
					t.Errorf("expected error %v, got nil", tt.wantErr)
				} else if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.ID == "" {
				t.Error("expected generated compliment ID")
			}
			if c.UserSender != tt.input.UserSender || c.UserReceiver != tt.input.UserReceiver {
				t.Error("sender or receiver not preserved")
			}
		})
	}
}

func TestComplimentService_Create_SelfComplimentCheckedFirst(t *testing.T) {
	// When everything about the request is wrong, the self compliment rule
	// wins over the missing tag.
	compliments, tags, users := newComplimentFixture()
	svc := NewComplimentService(compliments, tags, users, zerolog.Nop())

	_, err := svc.Create(context.Background(), CreateComplimentInput{
		TagID:        "nope",
		UserSender:   "sender",
		UserReceiver: "sender",
		Message:      "",
	})
	if !errors.Is(err, domain.ErrSelfCompliment) {
		t.Errorf("expected ErrSelfCompliment, got %v", err)
	}
}

func TestComplimentService_SearchBySenderAndReceiver(t *testing.T) {
	compliments, tags, users := newComplimentFixture()
	users.users["third"] = &domain.User{ID: "third", Name: "Carol", Email: "carol@example.com"}

	compliments.compliments["c1"] = &domain.Compliment{ID: "c1", TagID: "t1", UserSender: "sender", UserReceiver: "receiver", Message: "one"}
	compliments.compliments["c2"] = &domain.Compliment{ID: "c2", TagID: "t1", UserSender: "sender", UserReceiver: "third", Message: "two"}
	compliments.compliments["c3"] = &domain.Compliment{ID: "c3", TagID: "t1", UserSender: "third", UserReceiver: "receiver", Message: "three"}

	svc := NewComplimentService(compliments, tags, users, zerolog.Nop())

	sent, err := svc.SearchBySender(context.Background(), "sender")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sent) != 2 {
		t.Errorf("expected 2 sent compliments, got %d", len(sent))
	}

	received, err := svc.SearchByReceiver(context.Background(), "receiver")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(received) != 2 {
		t.Errorf("expected 2 received compliments, got %d", len(received))
	}

	none, err := svc.SearchBySender(context.Background(), "receiver")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no sent compliments, got %d", len(none))
	}
}

func TestComplimentService_UpdateMessage(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		actingID string
		message  string
		wantErr  error
	}{
		{
			name:     "success",
			id:       "c1",
			actingID: "sender",
			message:  "even better work",
		},
		{
			name:     "not found",
			id:       "nope",
			actingID: "sender",
			message:  "hi",
			wantErr:  domain.ErrComplimentNotFound,
		},
		{
			name:     "not the sender",
			id:       "c1",
			actingID: "receiver",
			message:  "hi",
			wantErr:  domain.ErrNotComplimentOwner,
		},
		{
			name:     "empty message",
			id:       "c1",
			actingID: "sender",
			message:  "",
			wantErr:  domain.ErrInvalidMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compliments, tags, users := newComplimentFixture()
			compliments.compliments["c1"] = &domain.Compliment{
				ID: "c1", TagID: "t1", UserSender: "sender", UserReceiver: "receiver", Message: "great work",
			}

			svc := NewComplimentService(compliments, tags, users, zerolog.Nop())

			c, err := svc.UpdateMessage(context.Background(), tt.id, tt.actingID, tt.message)

			if tt.wantErr != nil {
				if err == nil {
					t.Errorf("expected error %v, got nil", tt.wantErr)
				} else if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, c.Message)
			}
			if compliments.compliments["c1"].Message != tt.message {
				t.Error("message not persisted")
			}
		})
	}
}

func TestComplimentService_Remove(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		actingID string
		wantErr  error
	}{
		{
			name:     "success",
			id:       "c1",
			actingID: "sender",
		},
		{
			name:     "not found",
			id:       "nope",
			actingID: "sender",
			wantErr:  domain.ErrComplimentNotFound,
		},
		{
			name:     "owned by someone else",
			id:       "c1",
			actingID: "receiver",
			wantErr:  domain.ErrComplimentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compliments, tags, users := newComplimentFixture()
			compliments.compliments["c1"] = &domain.Compliment{
				ID: "c1", TagID: "t1", UserSender: "sender", UserReceiver: "receiver", Message: "great work",
			}

			svc := NewComplimentService(compliments, tags, users, zerolog.Nop())

			err := svc.Remove(context.Background(), tt.id, tt.actingID)

			if tt.wantErr != nil {
				if err == nil {
					t.Errorf("expected error %v, got nil", tt.wantErr)
				} else if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, exists := compliments.compliments[tt.id]; exists {
				t.Error("expected compliment to be deleted")
			}
		})
	}
}
