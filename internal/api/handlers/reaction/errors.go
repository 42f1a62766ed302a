package reaction

import (
	"log"
	"net/http"

	"Murmur/internal/api/handlers"
	"Murmur/internal/core/comments"
	"Murmur/internal/core/posts"
	"Murmur/internal/core/reactions"
)

// handleServiceError maps reaction service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case reactions.IsConflict(err):
		handlers.WriteError(w, http.StatusConflict, err.Error())
	case reactions.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
	case posts.IsNotFound(err) || comments.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("[REACTION_HANDLER] Unexpected error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
