package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/valoriza-app/valoriza-server/internal/auth"
	"github.com/valoriza-app/valoriza-server/internal/repository"
	"github.com/valoriza-app/valoriza-server/internal/service"
)

// UserHandler handles user account requests.
type UserHandler struct {
	userService *service.UserService
	logger      zerolog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger.With().Str("handler", "user").Logger(),
	}
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Admin    bool   `json:"admin"`
}

// Create handles POST /v1/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.userService.Create(r.Context(), service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Admin:    req.Admin,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Index handles GET /v1/users. Name and email query parameters narrow
// the listing by partial match.
func (h *UserHandler) Index(w http.ResponseWriter, r *http.Request) {
	filter := repository.UserFilter{
		Name:  r.URL.Query().Get("name"),
		Email: r.URL.Query().Get("email"),
	}

	users, err := h.userService.Index(r.Context(), filter)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// Search handles GET /v1/users/{id}.
func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Search(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

type editUserRequest struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Admin *bool   `json:"admin"`
}

// Edit handles PUT /v1/users. Absent fields are left untouched; present
// fields are applied even when false or empty.
func (h *UserHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req editUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.userService.Edit(r.Context(), service.EditUserInput{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
		Admin: req.Admin,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Remove handles DELETE /v1/users/{id}.
func (h *UserHandler) Remove(w http.ResponseWriter, r *http.Request) {
	actingUserID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if err := h.userService.Remove(r.Context(), actingUserID, chi.URLParam(r, "id")); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type updatePasswordRequest struct {
	Password string `json:"password"`
}

// UpdatePassword handles PATCH /v1/users/password. Users change only
// their own password.
func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	actingUserID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req updatePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.userService.UpdatePassword(r.Context(), actingUserID, req.Password); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
