package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/blogkeeper/internal/server/auth"
)

type ctxKey string

const principalKey ctxKey = "principal"

// withAuth is the access gate: it extracts the bearer credential and rejects
// the request before any other component runs. Past this point the principal
// is opaque; authorization is ownership-based, not role-based.
func (s *Server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("Authorization")
		if raw == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "unauthorized"})
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "unauthorized"})
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, userID)
		next(w, r.WithContext(ctx))
	}
}
