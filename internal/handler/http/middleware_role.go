package http

import (
	"net/http"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/utils"
	"github.com/MKhiriev/fleet-tracker/models"
)

// requireRole is a route-group guard that rejects callers whose role does not
// match the required one with HTTP 403 Forbidden. It must be mounted after
// the auth middleware: the principal is read from the request context, and a
// missing principal is treated as an unauthenticated request.
func (h *Handler) requireRole(role models.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			principal, ok := utils.GetPrincipalFromContext(r.Context())
			if !ok {
				log.Error().Msg("no principal in context: role guard mounted before auth")
				writeError(w, r, ErrEmptyAuthorizationHeader)
				return
			}

			if principal.Role != role {
				log.Error().
					Int64("user_id", principal.UserID).
					Str("role", string(principal.Role)).
					Str("required_role", string(role)).
					Msg("access denied by role guard")
				utils.WriteJSON(w, models.MessageResponse{Message: "access denied"}, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
