package auth

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/valoriza-app/valoriza-server/internal/repository"
)

// Authenticate returns a middleware that requires a valid bearer token on
// every request. Missing, malformed, or expired tokens are refused with a
// 401 and an empty body. On success the token's subject is attached to the
// request context as the acting user ID.
func Authenticate(tokens *TokenManager, logger zerolog.Logger) func(http.Handler) http.Handler {
	log := logger.With().Str("middleware", "authenticate").Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				log.Debug().Err(err).Str("path", r.URL.Path).Msg("token verification failed")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.Subject)))
		})
	}
}

// RequireAdmin returns a middleware that only lets through requests whose
// acting user carries the admin flag. Runs after Authenticate. Non-admins
// and unknown users are refused with a 401 empty body (not 403 - this
// status is part of the existing API contract).
func RequireAdmin(users repository.UserRepository, logger zerolog.Logger) func(http.Handler) http.Handler {
	log := logger.With().Str("middleware", "require_admin").Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserIDFromContext(r.Context())
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				log.Debug().Err(err).Str("user_id", userID).Msg("acting user lookup failed")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if !user.Admin {
				log.Debug().Str("user_id", userID).Msg("admin access denied")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
