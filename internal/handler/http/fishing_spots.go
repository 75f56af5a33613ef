package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/utils"
	"github.com/MKhiriev/fleet-tracker/models"
)

func (h *Handler) listFishingSpots(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	spots, err := h.services.FleetService.ListSpots(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listFishingSpots").Msg("fishing spots listing ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, spots, http.StatusOK)
}

func (h *Handler) createFishingSpot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var spot models.FishingSpot
	if err := json.NewDecoder(r.Body).Decode(&spot); err != nil {
		log.Err(err).Str("func", "*Handler.createFishingSpot").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.FleetService.CreateSpot(r.Context(), spot)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createFishingSpot").Msg("fishing spot creation ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// updateFishingSpotTimes sets the arrival and/or departure timestamps on a
// spot. An arrival update also records the calling captain's visit in the
// user_fishing_spot journal.
func (h *Handler) updateFishingSpotTimes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, err := principalFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	spotID, err := idFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var update models.SpotTimeUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateFishingSpotTimes").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.FleetService.UpdateSpotTimes(r.Context(), principal.UserID, spotID, update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateFishingSpotTimes").Int64("spot_id", spotID).Msg("fishing spot time update ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteFishingSpot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	spotID, err := idFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.FleetService.DeleteSpot(r.Context(), spotID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteFishingSpot").Int64("spot_id", spotID).Msg("fishing spot deletion ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "fishing spot deleted"}, http.StatusOK)
}
