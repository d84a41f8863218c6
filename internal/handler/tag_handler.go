package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/valoriza-app/valoriza-server/internal/service"
)

// TagHandler handles compliment tag requests.
type TagHandler struct {
	tagService *service.TagService
	logger     zerolog.Logger
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(tagService *service.TagService, logger zerolog.Logger) *TagHandler {
	return &TagHandler{
		tagService: tagService,
		logger:     logger.With().Str("handler", "tag").Logger(),
	}
}

type createTagRequest struct {
	Name string `json:"name"`
}

// Create handles POST /v1/tags.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTagRequest
	if !decodeBody(w, r, &req) {
		return
	}

	tag, err := h.tagService.Create(r.Context(), req.Name)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, tag)
}

// Search handles GET /v1/tags.
func (h *TagHandler) Search(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tagService.Search(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, tags)
}

type updateTagRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Update handles PUT /v1/tags.
func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateTagRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if _, err := h.tagService.Update(r.Context(), req.ID, req.Name); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Remove handles DELETE /v1/tags/{id}.
func (h *TagHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.tagService.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
