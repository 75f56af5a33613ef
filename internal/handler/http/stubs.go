package http

import (
	"net/http"

	"github.com/MKhiriev/fleet-tracker/internal/utils"
	"github.com/MKhiriev/fleet-tracker/models"
)

// notImplemented backs the endpoints that exist in the route table but have
// no behaviour yet: standard report templates, data export, route comments
// and ship status updates. They answer 501 so clients can distinguish a
// reserved path from a missing one.
func (h *Handler) notImplemented(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "not implemented"}, http.StatusNotImplemented)
}
