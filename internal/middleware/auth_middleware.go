package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bnb-academy/bnb-backend/internal/auth"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	emailKey  contextKey = "email"
)

// RequireAuth gates admin API endpoints. A missing, expired, or tampered
// session cookie yields 401; the principal is placed in the request context
// otherwise.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("token")
		if err != nil {
			unauthorized(w, "Unauthorized")
			return
		}

		claims, err := auth.ValidateToken(cookie.Value)
		if err != nil {
			unauthorized(w, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, emailKey, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the authenticated principal's id from the request context.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// Email returns the authenticated principal's email from the request context.
func Email(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
