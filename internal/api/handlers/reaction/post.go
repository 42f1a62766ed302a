package reaction

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Murmur/internal/api/handlers"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/reactions"
)

// PostReactionHandler handles reactions on posts
type PostReactionHandler struct {
	service reactions.Service
}

// NewPostReactionHandler creates a new post reaction handler
func NewPostReactionHandler(service reactions.Service) *PostReactionHandler {
	return &PostReactionHandler{service: service}
}

// HandleAddReaction records the caller's reaction on a post
// POST /api/v1/post/{postID}/like
//
// Request body (optional): { "type": "...", "reactionType": "..." }
// Returns the aggregated count for the reaction type.
func (h *PostReactionHandler) HandleAddReaction(w http.ResponseWriter, r *http.Request) {
	postID, err := handlers.PathUUID(chi.URLParam(r, "postID"), "post id")
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req reactions.AddReactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	callerID := middleware.GetAccountID(r)

	summary, err := h.service.AddToPost(r.Context(), callerID, postID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, summary)
}

// HandleRemoveReaction removes the caller's reaction from a post
// DELETE /api/v1/post/{postID}/like
func (h *PostReactionHandler) HandleRemoveReaction(w http.ResponseWriter, r *http.Request) {
	postID, err := handlers.PathUUID(chi.URLParam(r, "postID"), "post id")
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	callerID := middleware.GetAccountID(r)

	if err := h.service.RemoveFromPost(r.Context(), callerID, postID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
