package comments

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Murmur/internal/api/handlers"
	"Murmur/internal/core/comments"
)

// UpdateCommentHandler handles comment updates
type UpdateCommentHandler struct {
	service comments.Service
}

// NewUpdateCommentHandler creates a new update comment handler
func NewUpdateCommentHandler(service comments.Service) *UpdateCommentHandler {
	return &UpdateCommentHandler{service: service}
}

// HandleUpdateComment updates an existing comment
// PUT /api/v1/post/{postID}/comment/{commentID}
func (h *UpdateCommentHandler) HandleUpdateComment(w http.ResponseWriter, r *http.Request) {
	postID, err := handlers.PathUUID(chi.URLParam(r, "postID"), "post id")
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	commentID, err := handlers.PathUUID(chi.URLParam(r, "commentID"), "comment id")
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req comments.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.Update(r.Context(), postID, commentID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, updated)
}
