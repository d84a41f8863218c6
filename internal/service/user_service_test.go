package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/valoriza-app/valoriza-server/internal/domain"
	"github.com/valoriza-app/valoriza-server/internal/repository"
)

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name      string
		input     CreateUserInput
		wantErr   error
		setupRepo func(*MockUserRepository)
	}{
		{
			name: "success",
			input: CreateUserInput{
				Name:     "Alice",
				Email:    "alice@example.com",
				Password: "1234",
			},
			wantErr: nil,
		},
		{
			name: "success as admin",
			input: CreateUserInput{
				Name:     "Root",
				Email:    "root@example.com",
				Password: "0000",
				Admin:    true,
			},
			wantErr: nil,
		},
		{
			name: "empty email",
			input: CreateUserInput{
				Name:     "Alice",
				Email:    "",
				Password: "1234",
			},
			wantErr: domain.ErrEmailRequired,
		},
		{
			name: "email already taken",
			input: CreateUserInput{
				Name:     "Alice 2",
				Email:    "alice@example.com",
				Password: "1234",
			},
			wantErr: domain.ErrUserAlreadyExists,
			setupRepo: func(m *MockUserRepository) {
				m.users["u1"] = &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}
			},
		},
		{
			name: "password with letters",
			input: CreateUserInput{
				Name:     "Alice",
				Email:    "alice@example.com",
				Password: "12a4",
			},
			wantErr: domain.ErrPasswordNotNumeric,
		},
		{
			name: "password too long",
			input: CreateUserInput{
				Name:     "Alice",
				Email:    "alice@example.com",
				Password: "12345",
			},
			wantErr: domain.ErrPasswordWrongSize,
		},
		{
			name: "password too short",
			input: CreateUserInput{
				Name:     "Alice",
				Email:    "alice@example.com",
				Password: "123",
			},
			wantErr: domain.ErrPasswordWrongSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockUserRepository()
			if tt.setupRepo != nil {
				tt.setupRepo(repo)
			}

			svc := NewUserService(repo, zerolog.Nop())

			user, err := svc.Create(context.Background(), tt.input)

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

			if user.ID == "" {
				t.Error("expected generated user ID")
			}
			if user.Email != tt.input.Email {
				t.Errorf("expected email %s, got %s", tt.input.Email, user.Email)
			}
			if user.Admin != tt.input.Admin {
				t.Errorf("expected admin %v, got %v", tt.input.Admin, user.Admin)
			}
			if user.PasswordHash == tt.input.Password {
				t.Error("password stored in plaintext")
			}
			if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.input.Password)); err != nil {
				t.Errorf("stored hash does not match password: %v", err)
			}
		})
	}
}

func TestUserService_Search(t *testing.T) {
	repo := NewMockUserRepository()
	repo.users["u1"] = &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}

	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Search(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Name != "Alice" {
		t.Errorf("expected Alice, got %s", user.Name)
	}

	if _, err := svc.Search(context.Background(), "nope"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Index(t *testing.T) {
	repo := NewMockUserRepository()
	repo.users["u1"] = &domain.User{ID: "u1", Name: "Alice Smith", Email: "alice@example.com"}
	repo.users["u2"] = &domain.User{ID: "u2", Name: "Bob Jones", Email: "bob@example.com"}
	repo.users["u3"] = &domain.User{ID: "u3", Name: "Alice Jones", Email: "aj@other.org"}

	svc := NewUserService(repo, zerolog.Nop())

	all, err := svc.Index(context.Background(), repository.UserFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 users, got %d", len(all))
	}

	byName, err := svc.Index(context.Background(), repository.UserFilter{Name: "Alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byName) != 2 {
		t.Errorf("expected 2 users named Alice, got %d", len(byName))
	}

	byBoth, err := svc.Index(context.Background(), repository.UserFilter{Name: "Alice", Email: "example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byBoth) != 1 {
		t.Errorf("expected 1 user, got %d", len(byBoth))
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestUserService_Edit(t *testing.T) {
	tests := []struct {
		name      string
		input     EditUserInput
		wantErr   error
		setupRepo func(*MockUserRepository)
		check     func(*testing.T, *MockUserRepository)
	}{
		{
			name:  "rename",
			input: EditUserInput{ID: "u1", Name: strPtr("Alicia")},
			setupRepo: func(m *MockUserRepository) {
				m.users["u1"] = &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}
			},
			check: func(t *testing.T, m *MockUserRepository) {
				if m.users["u1"].Name != "Alicia" {
					t.Errorf("expected name Alicia, got %s", m.users["u1"].Name)
				}
			},
		},
		{
			name:  "demote admin to false",
			input: EditUserInput{ID: "u1", Admin: boolPtr(false)},
			setupRepo: func(m *MockUserRepository) {
				m.users["u1"] = &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Admin: true}
			},
			check: func(t *testing.T, m *MockUserRepository) {
				if m.users["u1"].Admin {
					t.Error("expected admin to be false")
				}
			},
		},
		{
			name:    "user not found",
			input:   EditUserInput{ID: "nope", Name: strPtr("X")},
			wantErr: domain.ErrEditUserNotFound,
		},
		{
			name:  "no fields given",
			input: EditUserInput{ID: "u1"},
			setupRepo: func(m *MockUserRepository) {
				m.users["u1"] = &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}
			},
			wantErr: domain.ErrNoChanges,
		},
		{
			name:  "same values given",
			input: EditUserInput{ID: "u1", Name: strPtr("Alice"), Admin: boolPtr(false)},
			setupRepo: func(m *MockUserRepository) {
				m.users["u1"] = &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}
			},
			wantErr: domain.ErrNoChanges,
		},
		{
			name:  "email taken by another user",
			input: EditUserInput{ID: "u1", Email: strPtr("bob@example.com")},
			setupRepo: func(m *MockUserRepository) {
				m.users["u1"] = &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}
				m.users["u2"] = &domain.User{ID: "u2", Name: "Bob", Email: "bob@example.com"}
			},
			wantErr: domain.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockUserRepository()
			if tt.setupRepo != nil {
				tt.setupRepo(repo)
			}

			svc := NewUserService(repo, zerolog.Nop())

			err := svc.Edit(context.Background(), tt.input)

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
			if tt.check != nil {
				tt.check(t, repo)
			}
		})
	}
}

func TestUserService_Remove(t *testing.T) {
	tests := []struct {
		name      string
		actingID  string
		targetID  string
		wantErr   error
		setupRepo func(*MockUserRepository)
	}{
		{
			name:     "success",
			actingID: "admin",
			targetID: "u1",
			setupRepo: func(m *MockUserRepository) {
				m.users["admin"] = &domain.User{ID: "admin", Admin: true}
				m.users["u1"] = &domain.User{ID: "u1", Name: "Alice"}
			},
		},
		{
			name:     "target not found",
			actingID: "admin",
			targetID: "nope",
			wantErr:  domain.ErrDeleteUserNotFound,
			setupRepo: func(m *MockUserRepository) {
				m.users["admin"] = &domain.User{ID: "admin", Admin: true}
			},
		},
		{
			name:     "self deletion",
			actingID: "admin",
			targetID: "admin",
			wantErr:  domain.ErrCannotDeleteSelf,
			setupRepo: func(m *MockUserRepository) {
				m.users["admin"] = &domain.User{ID: "admin", Admin: true}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockUserRepository()
			if tt.setupRepo != nil {
				tt.setupRepo(repo)
			}

			svc := NewUserService(repo, zerolog.Nop())

			err := svc.Remove(context.Background(), tt.actingID, tt.targetID)

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
			if _, exists := repo.users[tt.targetID]; exists {
				t.Error("expected user to be deleted")
			}
		})
	}
}

func TestUserService_UpdatePassword(t *testing.T) {
	tests := []struct {
		name      string
		userID    string
		password  string
		wantErr   error
		setupRepo func(*MockUserRepository)
	}{
		{
			name:     "success",
			userID:   "u1",
			password: "4321",
			setupRepo: func(m *MockUserRepository) {
				m.users["u1"] = &domain.User{ID: "u1", Email: "alice@example.com", PasswordHash: "old"}
			},
		},
		{
			name:     "user not found",
			userID:   "nope",
			password: "4321",
			wantErr:  domain.ErrPasswordUserNotFound,
		},
		{
			name:     "non numeric password",
			userID:   "u1",
			password: "abcd",
			wantErr:  domain.ErrPasswordNotNumeric,
			setupRepo: func(m *MockUserRepository) {
				m.users["u1"] = &domain.User{ID: "u1", Email: "alice@example.com"}
			},
		},
		{
			name:     "wrong size password",
			userID:   "u1",
			password: "43215",
			wantErr:  domain.ErrPasswordWrongSize,
			setupRepo: func(m *MockUserRepository) {
				m.users["u1"] = &domain.User{ID: "u1", Email: "alice@example.com"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockUserRepository()
			if tt.setupRepo != nil {
				tt.setupRepo(repo)
			}

			svc := NewUserService(repo, zerolog.Nop())

			err := svc.UpdatePassword(context.Background(), tt.userID, tt.password)

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
			if err := bcrypt.CompareHashAndPassword([]byte(repo.users[tt.userID].PasswordHash), []byte(tt.password)); err != nil {
				t.Errorf("stored hash does not match new password: %v", err)
			}
		})
	}
}
