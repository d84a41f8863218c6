package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/valoriza-app/valoriza-server/internal/auth"
	"github.com/valoriza-app/valoriza-server/internal/service"
)

// ComplimentHandler handles compliment requests. The sender is always the
// authenticated user.
type ComplimentHandler struct {
	complimentService *service.ComplimentService
	logger            zerolog.Logger
}

// NewComplimentHandler creates a new ComplimentHandler.
func NewComplimentHandler(complimentService *service.ComplimentService, logger zerolog.Logger) *ComplimentHandler {
	return &ComplimentHandler{
		complimentService: complimentService,
		logger:            logger.With().Str("handler", "compliment").Logger(),
	}
}

type createComplimentRequest struct {
	TagID        string `json:"tag_id"`
	UserReceiver string `json:"user_receiver"`
	Message      string `json:"message"`
}

// Create handles POST /v1/compliments.
func (h *ComplimentHandler) Create(w http.ResponseWriter, r *http.Request) {
	actingUserID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req createComplimentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	compliment, err := h.complimentService.Create(r.Context(), service.CreateComplimentInput{
		TagID:        req.TagID,
		UserSender:   actingUserID,
		UserReceiver: req.UserReceiver,
		Message:      req.Message,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, compliment)
}

// ListSent handles GET /v1/compliments/sent.
func (h *ComplimentHandler) ListSent(w http.ResponseWriter, r *http.Request) {
	actingUserID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	compliments, err := h.complimentService.SearchBySender(r.Context(), actingUserID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, compliments)
}

// ListReceived handles GET /v1/compliments/received.
func (h *ComplimentHandler) ListReceived(w http.ResponseWriter, r *http.Request) {
	actingUserID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	compliments, err := h.complimentService.SearchByReceiver(r.Context(), actingUserID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, compliments)
}

type updateMessageRequest struct {
	Message string `json:"message"`
}

// UpdateMessage handles PATCH /v1/compliments/{id}/message.
func (h *ComplimentHandler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	actingUserID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req updateMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if _, err := h.complimentService.UpdateMessage(r.Context(), chi.URLParam(r, "id"), actingUserID, req.Message); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Remove handles DELETE /v1/compliments/{id}.
func (h *ComplimentHandler) Remove(w http.ResponseWriter, r *http.Request) {
	actingUserID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if err := h.complimentService.Remove(r.Context(), chi.URLParam(r, "id"), actingUserID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
