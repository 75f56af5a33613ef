package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/utils"
	"github.com/MKhiriev/fleet-tracker/models"
)

func (h *Handler) logCatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, err := principalFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var record models.Catch
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Str("func", "*Handler.logCatch").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.VoyageService.LogCatch(r.Context(), principal.UserID, record)
	if err != nil {
		log.Err(err).Str("func", "*Handler.logCatch").Msg("catch logging ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// catchStatistics aggregates total weight and count over the catches whose
// route departure/return window overlaps the optional date_from / date_to
// bounds (RFC 3339 query parameters).
func (h *Handler) catchStatistics(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter := models.CatchStatsFilter{
		DateFrom: queryTime(r, "date_from"),
		DateTo:   queryTime(r, "date_to"),
	}

	stats, err := h.services.VoyageService.CatchStatistics(r.Context(), filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.catchStatistics").Msg("catch statistics ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
