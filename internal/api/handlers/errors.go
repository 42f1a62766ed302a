package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

// ErrorResponse is the error payload returned to API clients.
type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
	Status       string `json:"status"`
}

// WriteError writes a standardized JSON error response
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(ErrorResponse{
		ErrorMessage: message,
		Status:       statusLabel(statusCode),
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// WriteJSON writes a JSON success response
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// statusLabel converts an HTTP status code to the stable label clients
// match on, e.g. 404 -> "NOT_FOUND".
func statusLabel(statusCode int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(statusCode), " ", "_"))
}
