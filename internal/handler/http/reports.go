package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/utils"
	"github.com/MKhiriev/fleet-tracker/models"
)

func (h *Handler) createReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, err := principalFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ReportCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createReport").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	report, err := h.services.ReportService.CreateReport(ctx, principal, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createReport").Msg("report creation ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusCreated)
}

// listReports returns reports visible to the caller. Captains only ever see
// their own reports; the scoping happens in the service layer. The optional
// `route_id` query parameter switches to a per-route listing, and `offset` /
// `limit` page through the result (limit defaults to 100 server-side).
func (h *Handler) listReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, err := principalFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var reports []models.Report
	if routeID := queryInt64(r, "route_id"); routeID > 0 {
		reports, err = h.services.ReportService.ListReportsByRoute(ctx, routeID)
	} else {
		reports, err = h.services.ReportService.ListReports(ctx, principal, queryInt64(r, "offset"), queryInt64(r, "limit"))
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.listReports").Msg("reports listing ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, reports, http.StatusOK)
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	reportID, err := idFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.services.ReportService.GetReport(ctx, reportID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getReport").Int64("report_id", reportID).Msg("report lookup ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) approveReport(w http.ResponseWriter, r *http.Request) {
	h.transitionReport(w, r, "*Handler.approveReport", h.services.ReportService.ConfirmReport)
}

func (h *Handler) rejectReport(w http.ResponseWriter, r *http.Request) {
	h.transitionReport(w, r, "*Handler.rejectReport", h.services.ReportService.RejectReport)
}

func (h *Handler) cancelReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, err := principalFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	reportID, err := idFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.services.ReportService.CancelReport(ctx, principal, reportID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.cancelReport").Int64("report_id", reportID).Msg("report cancellation ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) transitionReport(w http.ResponseWriter, r *http.Request, funcName string, transition func(context.Context, int64) (models.Report, error)) {
	log := logger.FromRequest(r)

	reportID, err := idFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := transition(r.Context(), reportID)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("report_id", reportID).Msg("report status update ended with error")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}
