package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/utils"
	"github.com/MKhiriev/fleet-tracker/models"
)

func (h *Handler) listShips(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, err := principalFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ships, err := h.services.FleetService.ListShips(r.Context(), principal.UserID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listShips").Msg("ships listing ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, ships, http.StatusOK)
}

func (h *Handler) createShip(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, err := principalFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var ship models.Ship
	if err := json.NewDecoder(r.Body).Decode(&ship); err != nil {
		log.Err(err).Str("func", "*Handler.createShip").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.FleetService.CreateShip(r.Context(), principal.UserID, ship)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createShip").Msg("ship creation ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// updateShip rewrites the vessel identified by the url parameter. A ship
// owned by another operator is indistinguishable from a missing one: both
// come back as 404.
func (h *Handler) updateShip(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, err := principalFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	shipID, err := idFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var ship models.Ship
	if err := json.NewDecoder(r.Body).Decode(&ship); err != nil {
		log.Err(err).Str("func", "*Handler.updateShip").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	ship.ShipID = shipID

	updated, err := h.services.FleetService.UpdateShip(r.Context(), principal.UserID, ship)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateShip").Int64("ship_id", shipID).Msg("ship update ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteShip(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, err := principalFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	shipID, err := idFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.FleetService.DeleteShip(r.Context(), principal.UserID, shipID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteShip").Int64("ship_id", shipID).Msg("ship deletion ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "ship deleted"}, http.StatusOK)
}
