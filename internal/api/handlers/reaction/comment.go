package reaction

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"Murmur/internal/api/handlers"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/reactions"
)

// CommentReactionHandler handles likes on comments
type CommentReactionHandler struct {
	service reactions.Service
}

// NewCommentReactionHandler creates a new comment reaction handler
func NewCommentReactionHandler(service reactions.Service) *CommentReactionHandler {
	return &CommentReactionHandler{service: service}
}

// HandleAddLike records the caller's like on a comment
// POST /api/v1/post/{postID}/comment/{commentID}/like
func (h *CommentReactionHandler) HandleAddLike(w http.ResponseWriter, r *http.Request) {
	postID, commentID, ok := pathIDs(w, r)
	if !ok {
		return
	}

	callerID := middleware.GetAccountID(r)

	if err := h.service.AddToComment(r.Context(), callerID, postID, commentID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// HandleRemoveLike removes the caller's like from a comment
// DELETE /api/v1/post/{postID}/comment/{commentID}/like
func (h *CommentReactionHandler) HandleRemoveLike(w http.ResponseWriter, r *http.Request) {
	postID, commentID, ok := pathIDs(w, r)
	if !ok {
		return
	}

	callerID := middleware.GetAccountID(r)

	if err := h.service.RemoveFromComment(r.Context(), callerID, postID, commentID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathIDs(w http.ResponseWriter, r *http.Request) (postID, commentID uuid.UUID, ok bool) {
	pid, err := handlers.PathUUID(chi.URLParam(r, "postID"), "post id")
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	cid, err := handlers.PathUUID(chi.URLParam(r, "commentID"), "comment id")
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	return pid, cid, true
}
