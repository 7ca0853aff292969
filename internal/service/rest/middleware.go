package rest

import (
	"net/http"
	"strings"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

// requireAdmin пропускает только запросы с активной административной
// сессией в заголовке Authorization: Bearer <token>.
func (h *Handler) requireAdmin(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authorization required"})
			return
		}

		session, err := h.auth.Session(r.Context(), token)
		if err != nil {
			h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid or expired session"})
			return
		}
		if session.Role != domain.RoleAdmin {
			h.writeJSON(w, http.StatusForbidden, errorResponse{Error: "admin role required"})
			return
		}

		next(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
