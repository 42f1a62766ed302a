package post

import (
	"log"
	"net/http"

	"Murmur/internal/api/handlers"
	"Murmur/internal/core/posts"
)

// handleServiceError converts post service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, err.Error())
	case posts.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("Post handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
