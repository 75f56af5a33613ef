package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fleet-tracker/internal/adapter"
	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/store"
	"github.com/MKhiriev/fleet-tracker/models"
)

type clientReportService struct {
	adapter adapter.ServerAdapter
	cache   store.LocalReportRepository
	logger  *logger.Logger
}

func NewClientReportService(serverAdapter adapter.ServerAdapter, cache store.LocalReportRepository, logger *logger.Logger) ClientReportService {
	return &clientReportService{adapter: serverAdapter, cache: cache, logger: logger}
}

// List fetches reports from the server and refreshes the local cache on
// success. When the server is unreachable the cached snapshot is served
// instead; the returned fromCache flag lets the UI mark the data as possibly
// stale. A cache write failure does not fail the listing.
func (r *clientReportService) List(ctx context.Context) ([]models.Report, bool, error) {
	reports, err := r.adapter.ListReports(ctx, 0, 0)
	if err == nil {
		if cacheErr := r.cache.ReplaceReports(ctx, reports...); cacheErr != nil {
			r.logger.Err(cacheErr).Msg("report cache refresh ended with error")
		}
		return reports, false, nil
	}

	r.logger.Err(err).Msg("server reports listing failed, falling back to cache")

	cached, cacheErr := r.cache.GetAllReports(ctx)
	if cacheErr != nil {
		r.logger.Err(cacheErr).Msg("report cache read ended with error")
		return nil, false, fmt.Errorf("list reports: %w", err)
	}

	return cached, true, nil
}

// Refresh replaces the local cache with the latest server snapshot.
func (r *clientReportService) Refresh(ctx context.Context) error {
	reports, err := r.adapter.ListReports(ctx, 0, 0)
	if err != nil {
		return fmt.Errorf("fetch reports for refresh: %w", err)
	}

	if err = r.cache.ReplaceReports(ctx, reports...); err != nil {
		return fmt.Errorf("replace cached reports: %w", err)
	}

	return nil
}

func (r *clientReportService) Create(ctx context.Context, req models.ReportCreateRequest) (models.Report, error) {
	report, err := r.adapter.CreateReport(ctx, req)
	if err != nil {
		return models.Report{}, fmt.Errorf("create report on server: %w", err)
	}

	return report, nil
}

func (r *clientReportService) Approve(ctx context.Context, reportID int64) (models.Report, error) {
	report, err := r.adapter.ApproveReport(ctx, reportID)
	if err != nil {
		return models.Report{}, fmt.Errorf("approve report on server: %w", err)
	}

	return report, nil
}

func (r *clientReportService) Reject(ctx context.Context, reportID int64) (models.Report, error) {
	report, err := r.adapter.RejectReport(ctx, reportID)
	if err != nil {
		return models.Report{}, fmt.Errorf("reject report on server: %w", err)
	}

	return report, nil
}

func (r *clientReportService) Cancel(ctx context.Context, reportID int64) (models.Report, error) {
	report, err := r.adapter.CancelReport(ctx, reportID)
	if err != nil {
		return models.Report{}, fmt.Errorf("cancel report on server: %w", err)
	}

	return report, nil
}
