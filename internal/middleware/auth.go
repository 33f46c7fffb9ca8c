package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/s/elearning/internal/handlers"
)

// RequireAuth создает Middleware, пропускающее только аутентифицированных.
// Это JSON API, поэтому вместо редиректа отдаем 401 с телом-ошибкой.
func RequireAuth(h *handlers.Handler) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if _, ok := h.CurrentPrincipal(r); !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
				return
			}

			next.ServeHTTP(w, r)
		}
	}
}
