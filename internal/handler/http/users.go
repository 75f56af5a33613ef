package http

import (
	"net/http"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/utils"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.me").Msg("no principal in context")
		writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	utils.WriteJSON(w, principal, http.StatusOK)
}

func (h *Handler) listCaptains(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	captains, err := h.services.AuthService.ListCaptains(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCaptains").Msg("captains listing ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, captains, http.StatusOK)
}
