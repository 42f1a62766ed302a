package post

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Murmur/internal/api/handlers"
	"Murmur/internal/core/posts"
)

// UpdatePostHandler handles post updates
type UpdatePostHandler struct {
	service posts.Service
}

// NewUpdatePostHandler creates a new update post handler
func NewUpdatePostHandler(service posts.Service) *UpdatePostHandler {
	return &UpdatePostHandler{service: service}
}

// HandleUpdatePost merges the supplied fields into an existing post
// PUT /api/v1/post/{postID}
func (h *UpdatePostHandler) HandleUpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := handlers.PathUUID(chi.URLParam(r, "postID"), "post id")
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req posts.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.Update(r.Context(), postID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, updated)
}
