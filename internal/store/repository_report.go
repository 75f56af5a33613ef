package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/models"
)

// reportRepository is the PostgreSQL-backed implementation of
// [ReportRepository].
//
// The INSERT deliberately omits status and created_at: both come from column
// defaults ('new', now()) so the database is the single authority on them.
// UpdateReportStatus writes the new status without reading the current one —
// last write wins.
type reportRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewReportRepository(db *DB, logger *logger.Logger) ReportRepository {
	logger.Debug().Msg("creating report repository")
	return &reportRepository{
		db:     db,
		logger: logger,
	}
}

func (r *reportRepository) CreateReport(ctx context.Context, report models.Report) (models.Report, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createReport,
		report.FishType, report.Weight, report.Location, report.Notes,
		report.UserID, report.RouteID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*reportRepository.CreateReport").Msg("error: row is nil")
		return models.Report{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&report.ReportID, &report.FishType, &report.Weight,
		&report.Location, &report.Notes, &report.Status, &report.CreatedAt,
		&report.UserID, &report.RouteID); err != nil {
		log.Err(err).Str("func", "*reportRepository.CreateReport").Msg("error: scanning error")
		return models.Report{}, err
	}

	return report, nil
}

func (r *reportRepository) GetReport(ctx context.Context, reportID int64) (models.Report, error) {
	log := logger.FromContext(ctx)

	var report models.Report
	row := r.db.QueryRowContext(ctx, getReport, reportID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*reportRepository.GetReport").Int64("report_id", reportID).Msg("error: row is nil")
		return models.Report{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&report.ReportID, &report.FishType, &report.Weight,
		&report.Location, &report.Notes, &report.Status, &report.CreatedAt,
		&report.UserID, &report.RouteID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Report{}, ErrReportNotFound
		}
		log.Err(err).Str("func", "*reportRepository.GetReport").Msg("error: scanning error")
		return models.Report{}, err
	}

	return report, nil
}

// ListReports runs the dynamically built listing query. Scoping by owner is
// the caller's concern: a zero filter.UserID lists everything.
func (r *reportRepository) ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListReportsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.ListReports").Msg("error: building query failed")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.ListReports").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanReports(rows)
}

func (r *reportRepository) ListReportsByRoute(ctx context.Context, routeID int64) ([]models.Report, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listReportsByRoute, routeID)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.ListReportsByRoute").Int64("route_id", routeID).Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanReports(rows)
}

func scanReports(rows *sql.Rows) ([]models.Report, error) {
	var reports []models.Report
	for rows.Next() {
		var report models.Report
		if err := rows.Scan(&report.ReportID, &report.FishType, &report.Weight,
			&report.Location, &report.Notes, &report.Status, &report.CreatedAt,
			&report.UserID, &report.RouteID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reports, nil
}

// UpdateReportStatus overwrites the status column unconditionally and returns
// the resulting row. The current status is never consulted.
func (r *reportRepository) UpdateReportStatus(ctx context.Context, reportID int64, status models.ReportStatus) (models.Report, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateReportStatus, status, reportID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*reportRepository.UpdateReportStatus").Int64("report_id", reportID).Msg("error: row is nil")
		return models.Report{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var report models.Report
	if err := row.Scan(&report.ReportID, &report.FishType, &report.Weight,
		&report.Location, &report.Notes, &report.Status, &report.CreatedAt,
		&report.UserID, &report.RouteID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Report{}, ErrReportNotFound
		}
		log.Err(err).Str("func", "*reportRepository.UpdateReportStatus").Msg("error: scanning error")
		return models.Report{}, err
	}

	return report, nil
}
