package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/store"
	"github.com/MKhiriev/fleet-tracker/internal/validators"
	"github.com/MKhiriev/fleet-tracker/models"
)

// reportService is the concrete implementation of ReportService.
//
// Creation is the only guarded step of the workflow: the payload is
// validated, an optional route reference is checked for existence and captain
// assignment, and the stored row starts as "new" with a server-side
// created_at. Confirm, reject and cancel overwrite the status without looking
// at the current one — the workflow is deliberately permissive and the last
// write wins. Cancel additionally requires the caller to own the report.
type reportService struct {
	reportRepository store.ReportRepository
	routeRepository  store.RouteRepository
	validator        validators.Validator
	logger           *logger.Logger
}

func NewReportService(reports store.ReportRepository, routes store.RouteRepository, validator validators.Validator, logger *logger.Logger) ReportService {
	return &reportService{
		reportRepository: reports,
		routeRepository:  routes,
		validator:        validator,
		logger:           logger,
	}
}

// CreateReport files a new catch report for the calling captain.
//
// When the request references a route, the route must exist (the repository's
// store.ErrRouteNotFound passes through) and must be assigned to the caller
// (ErrRouteOwnership otherwise). The route check runs at creation time only;
// later route reassignment does not revoke existing reports.
func (r *reportService) CreateReport(ctx context.Context, captain models.User, req models.ReportCreateRequest) (models.Report, error) {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid report data provided")
		return models.Report{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if req.RouteID != nil {
		route, err := r.routeRepository.GetRoute(ctx, *req.RouteID)
		if err != nil {
			log.Err(err).Int64("route_id", *req.RouteID).Msg("route lookup ended with error")
			return models.Report{}, fmt.Errorf("route lookup ended with error: %w", err)
		}
		if route.CaptainID != captain.UserID {
			log.Error().
				Int64("route_id", route.RouteID).
				Int64("route_captain_id", route.CaptainID).
				Int64("caller_id", captain.UserID).
				Msg("route assigned to another captain")
			return models.Report{}, ErrRouteOwnership
		}
	}

	report := models.Report{
		FishType: req.FishType,
		Weight:   req.Weight,
		Location: req.Location,
		Notes:    req.Notes,
		UserID:   captain.UserID,
		RouteID:  req.RouteID,
	}

	created, err := r.reportRepository.CreateReport(ctx, report)
	if err != nil {
		log.Err(err).Msg("report creation ended with error")
		return models.Report{}, fmt.Errorf("report creation ended with error: %w", err)
	}

	return created, nil
}

func (r *reportService) GetReport(ctx context.Context, reportID int64) (models.Report, error) {
	report, err := r.reportRepository.GetReport(ctx, reportID)
	if err != nil {
		return models.Report{}, fmt.Errorf("report lookup ended with error: %w", err)
	}

	return report, nil
}

// ListReports returns reports visible to the principal: captains see only
// their own, any other role sees everything. A non-positive limit falls back
// to the repository default of 100.
func (r *reportService) ListReports(ctx context.Context, principal models.User, offset, limit int64) ([]models.Report, error) {
	filter := models.ReportFilter{
		Offset: offset,
		Limit:  limit,
	}
	if principal.Role == models.RoleCaptain {
		filter.UserID = principal.UserID
	}

	reports, err := r.reportRepository.ListReports(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("reports listing failed: %w", err)
	}

	return reports, nil
}

func (r *reportService) ListReportsByRoute(ctx context.Context, routeID int64) ([]models.Report, error) {
	reports, err := r.reportRepository.ListReportsByRoute(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("reports listing failed: %w", err)
	}

	return reports, nil
}

// ConfirmReport sets the status to confirmed regardless of the current one.
func (r *reportService) ConfirmReport(ctx context.Context, reportID int64) (models.Report, error) {
	return r.transition(ctx, reportID, models.ReportStatusConfirmed)
}

// RejectReport sets the status to rejected regardless of the current one.
func (r *reportService) RejectReport(ctx context.Context, reportID int64) (models.Report, error) {
	return r.transition(ctx, reportID, models.ReportStatusRejected)
}

// CancelReport sets the status to cancelled. Only the captain who filed the
// report may cancel it; anybody else gets ErrReportOwnership.
func (r *reportService) CancelReport(ctx context.Context, captain models.User, reportID int64) (models.Report, error) {
	log := logger.FromContext(ctx)

	report, err := r.reportRepository.GetReport(ctx, reportID)
	if err != nil {
		log.Err(err).Int64("report_id", reportID).Msg("report lookup ended with error")
		return models.Report{}, fmt.Errorf("report lookup ended with error: %w", err)
	}

	if report.UserID != captain.UserID {
		log.Error().
			Int64("report_id", reportID).
			Int64("owner_id", report.UserID).
			Int64("caller_id", captain.UserID).
			Msg("report filed by another captain")
		return models.Report{}, ErrReportOwnership
	}

	return r.transition(ctx, reportID, models.ReportStatusCancelled)
}

func (r *reportService) transition(ctx context.Context, reportID int64, status models.ReportStatus) (models.Report, error) {
	log := logger.FromContext(ctx)

	report, err := r.reportRepository.UpdateReportStatus(ctx, reportID, status)
	if err != nil {
		log.Err(err).
			Int64("report_id", reportID).
			Str("status", string(status)).
			Msg("report status update ended with error")
		return models.Report{}, fmt.Errorf("report status update ended with error: %w", err)
	}

	return report, nil
}
