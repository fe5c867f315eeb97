package middleware

import (
	"net/http"

	"github.com/bnb-academy/bnb-backend/internal/auth"
)

// AdminPageGate protects /admin page navigation. Unlike the API gate it
// redirects to the login page instead of returning 401.
func AdminPageGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("token")
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		if _, err := auth.ValidateToken(cookie.Value); err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}
