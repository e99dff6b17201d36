package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/auth"
)

// SessionSource exposes the persisted session to the guard.
type SessionSource interface {
	State() (auth.State, bool)
}

// SessionGuard gates routes on the persisted session: the request must
// carry the session's bearer token, and when the route has a {userId}
// parameter it must match the logged-in user. Attach it inside the route
// that owns the parameter.
func SessionGuard(sessions SessionSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st, ok := sessions.State()
			if !ok || !st.Authenticated || st.User == nil {
				writeGuardError(w, http.StatusUnauthorized, "login required")
				return
			}

			token := bearerToken(r)
			if token == "" || token != st.Token {
				writeGuardError(w, http.StatusUnauthorized, "invalid session token")
				return
			}

			if userID := chi.URLParam(r, "userId"); userID != "" && userID != st.User.ID {
				writeGuardError(w, http.StatusForbidden, "session does not match user")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, prefix))
}

func writeGuardError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
