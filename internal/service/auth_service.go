package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/valoriza-app/valoriza-server/internal/auth"
	"github.com/valoriza-app/valoriza-server/internal/domain"
	"github.com/valoriza-app/valoriza-server/internal/repository"
)

// AuthService handles credential verification and token issuance.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// LoginOutput is the successful authentication result.
type LoginOutput struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn string `json:"expires_in"`
}

// Login verifies the given credentials and issues a signed token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Str("email", email).Msg("failed to get user for login")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to issue token")
		return nil, fmt.Errorf("%w: failed to issue token", domain.ErrInternal)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	return &LoginOutput{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: formatTTL(s.tokens.TTL()),
	}, nil
}

// formatTTL renders the token lifetime as whole days when possible,
// otherwise as hours.
func formatTTL(ttl time.Duration) string {
	if ttl >= 24*time.Hour && ttl%(24*time.Hour) == 0 {
		return fmt.Sprintf("%dd", int(ttl/(24*time.Hour)))
	}
	return fmt.Sprintf("%dh", int(ttl/time.Hour))
}
