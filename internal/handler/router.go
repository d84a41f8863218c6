package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/valoriza-app/valoriza-server/internal/auth"
	"github.com/valoriza-app/valoriza-server/internal/metrics"
	"github.com/valoriza-app/valoriza-server/internal/repository"
)

// RouterConfig contains the dependencies of the API router.
type RouterConfig struct {
	AuthHandler       *AuthHandler
	UserHandler       *UserHandler
	TagHandler        *TagHandler
	ComplimentHandler *ComplimentHandler

	Tokens   *auth.TokenManager
	UserRepo repository.UserRepository
	Metrics  *metrics.Metrics
	Logger   zerolog.Logger
}

// NewRouter builds the API handler tree. Login and signup are public; the
// rest of /v1 requires a bearer token, and the routes marked admin in the
// API contract additionally require the admin flag.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger.With().Str("component", "router").Logger()

	authenticate := auth.Authenticate(cfg.Tokens, logger)
	requireAdmin := auth.RequireAdmin(cfg.UserRepo, logger)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}

	r.Get("/health", handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/login", cfg.AuthHandler.Login)
		r.Post("/users", cfg.UserHandler.Create)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Get("/users", cfg.UserHandler.Index)
			r.Get("/users/{id}", cfg.UserHandler.Search)
			r.Patch("/users/password", cfg.UserHandler.UpdatePassword)

			r.Get("/tags", cfg.TagHandler.Search)

			r.Post("/compliments", cfg.ComplimentHandler.Create)
			r.Get("/compliments/sent", cfg.ComplimentHandler.ListSent)
			r.Get("/compliments/received", cfg.ComplimentHandler.ListReceived)
			r.Patch("/compliments/{id}/message", cfg.ComplimentHandler.UpdateMessage)
			r.Delete("/compliments/{id}", cfg.ComplimentHandler.Remove)

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)

				r.Put("/users", cfg.UserHandler.Edit)
				r.Delete("/users/{id}", cfg.UserHandler.Remove)

				r.Post("/tags", cfg.TagHandler.Create)
				r.Put("/tags", cfg.TagHandler.Update)
				r.Delete("/tags/{id}", cfg.TagHandler.Remove)
			})
		})
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// requestLogger emits one structured line per request at debug level.
func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Str("remote", r.RemoteAddr).
				Msg("request")
		})
	}
}
