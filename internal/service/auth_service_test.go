package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/valoriza-app/valoriza-server/internal/auth"
	"github.com/valoriza-app/valoriza-server/internal/domain"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash fixture password: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "success",
			email:    "alice@example.com",
			password: "1234",
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "1234",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "4321",
			wantErr:  domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockUserRepository()
			repo.users["u1"] = &domain.User{
				ID:           "u1",
				Name:         "Alice",
				Email:        "alice@example.com",
				PasswordHash: string(hash),
			}

			tokens := auth.NewTokenManager("test-secret", 24*time.Hour)
			svc := NewAuthService(repo, tokens, zerolog.Nop())

			out, err := svc.Login(context.Background(), tt.email, tt.password)

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
			if out.Token == "" {
				t.Fatal("expected a token")
			}
			if out.TokenType != "bearer" {
				t.Errorf("expected token_type bearer, got %s", out.TokenType)
			}
			if out.ExpiresIn != "1d" {
				t.Errorf("expected expires_in 1d, got %s", out.ExpiresIn)
			}

			claims, err := tokens.Verify(out.Token)
			if err != nil {
				t.Fatalf("issued token does not verify: %v", err)
			}
			if claims.Subject != "u1" {
				t.Errorf("expected subject u1, got %s", claims.Subject)
			}
			if claims.Email != "alice@example.com" {
				t.Errorf("expected email claim, got %s", claims.Email)
			}
		})
	}
}

func TestFormatTTL(t *testing.T) {
	tests := []struct {
		ttl  time.Duration
		want string
	}{
		{24 * time.Hour, "1d"},
		{48 * time.Hour, "2d"},
		{12 * time.Hour, "12h"},
		{36 * time.Hour, "36h"},
	}

	for _, tt := range tests {
		if got := formatTTL(tt.ttl); got != tt.want {
			t.Errorf("formatTTL(%v) = %s, want %s", tt.ttl, got, tt.want)
		}
	}
}
