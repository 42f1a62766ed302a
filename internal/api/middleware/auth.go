package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Context keys for storing caller information
type contextKey string

const accountIDKey contextKey = "account_id"

// AuthMiddleware enforces bearer-token authentication for protected
// routes. Tokens are HS256 JWTs issued by the sibling auth service; the
// subject claim carries the caller's account id.
type AuthMiddleware struct {
	secret []byte
}

// NewAuthMiddleware creates an auth middleware over the shared signing secret
func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret)}
}

// RequireAuth ensures the caller presents a valid token.
// On success the caller's account id is injected into the request
// context; handlers pass it explicitly into the core services.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthError(w, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		parsed, err := jwt.Parse([]byte(token),
			jwt.WithKey(jwa.HS256, m.secret),
			jwt.WithValidate(true),
		)
		if err != nil {
			log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, "Invalid or expired token")
			return
		}

		accountID, err := uuid.Parse(parsed.Subject())
		if err != nil {
			writeAuthError(w, "Missing account id in token")
			return
		}

		ctx := context.WithValue(r.Context(), accountIDKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAccountID returns the authenticated caller's account id from the
// request context. The zero UUID means the request never passed
// RequireAuth.
func GetAccountID(r *http.Request) uuid.UUID {
	if id, ok := r.Context().Value(accountIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"errorMessage": message,
		"status":       "UNAUTHORIZED",
	}); err != nil {
		log.Printf("Failed to encode auth error: %v", err)
	}
}
