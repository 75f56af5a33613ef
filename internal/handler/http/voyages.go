package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/utils"
	"github.com/MKhiriev/fleet-tracker/models"
)

func (h *Handler) listOperatorRoutes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, err := principalFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	routes, err := h.services.VoyageService.ListRoutesForOperator(r.Context(), principal.UserID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listOperatorRoutes").Msg("routes listing ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, routes, http.StatusOK)
}

func (h *Handler) listCaptainRoutes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, err := principalFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	routes, err := h.services.VoyageService.ListRoutesForCaptain(r.Context(), principal.UserID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCaptainRoutes").Msg("routes listing ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, routes, http.StatusOK)
}

func (h *Handler) createRoute(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, err := principalFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var route models.Route
	if err := json.NewDecoder(r.Body).Decode(&route); err != nil {
		log.Err(err).Str("func", "*Handler.createRoute").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.VoyageService.CreateRoute(r.Context(), principal.UserID, route)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createRoute").Msg("route creation ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// searchRoutes filters routes by the optional ship_id, captain_id, date_from
// and date_to query parameters. Dates are RFC 3339; malformed values are
// treated as absent.
func (h *Handler) searchRoutes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter := models.RouteFilter{
		ShipID:    queryInt64(r, "ship_id"),
		CaptainID: queryInt64(r, "captain_id"),
		DateFrom:  queryTime(r, "date_from"),
		DateTo:    queryTime(r, "date_to"),
	}

	routes, err := h.services.VoyageService.SearchRoutes(r.Context(), filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.searchRoutes").Msg("routes search ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, routes, http.StatusOK)
}

func (h *Handler) deleteRoute(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, err := principalFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	routeID, err := idFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.VoyageService.DeleteRoute(r.Context(), principal.UserID, routeID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteRoute").Int64("route_id", routeID).Msg("route deletion ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "route deleted"}, http.StatusOK)
}

// attachSpotsRequest is the JSON body accepted by POST /operator/routes/{id}/fishing_spots.
type attachSpotsRequest struct {
	SpotIDs []int64 `json:"spot_ids"`
}

func (h *Handler) attachFishingSpots(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	routeID, err := idFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req attachSpotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.attachFishingSpots").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.VoyageService.AttachFishingSpots(r.Context(), routeID, req.SpotIDs...); err != nil {
		log.Err(err).Str("func", "*Handler.attachFishingSpots").Int64("route_id", routeID).Msg("fishing spots attachment ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "fishing spots attached"}, http.StatusOK)
}
