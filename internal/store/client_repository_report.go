package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/models"
)

const (
	clearCachedReports = `DELETE FROM cached_reports;`

	insertCachedReport = `INSERT INTO cached_reports (id, fish_type, weight, location, notes, status, created_at, user_id, route_id)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`

	selectCachedReports = `SELECT id, fish_type, weight, location, notes, status, created_at, user_id, route_id
    FROM cached_reports
    ORDER BY id;`
)

type localReportRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalReportRepository(db *DB, logger *logger.Logger) LocalReportRepository {
	return &localReportRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceReports swaps the whole cache for the given snapshot inside one
// transaction, so readers never observe a half-refreshed state.
func (l *localReportRepository) ReplaceReports(ctx context.Context, reports ...models.Report) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localReportRepository.ReplaceReports").Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, clearCachedReports); err != nil {
		log.Err(err).Str("func", "localReportRepository.ReplaceReports").Msg("failed to clear cached reports")
		return fmt.Errorf("failed to clear cached reports: %w", err)
	}

	for _, report := range reports {
		_, err := tx.ExecContext(ctx, insertCachedReport,
			report.ReportID,
			report.FishType,
			report.Weight,
			report.Location,
			report.Notes,
			report.Status,
			report.CreatedAt,
			report.UserID,
			report.RouteID,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localReportRepository.ReplaceReports").
				Int64("report_id", report.ReportID).
				Msg("failed to insert cached report")
			return fmt.Errorf("failed to insert cached report (id=%d): %w", report.ReportID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (l *localReportRepository) GetAllReports(ctx context.Context) ([]models.Report, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, selectCachedReports)
	if err != nil {
		log.Err(err).Str("func", "localReportRepository.GetAllReports").Msg("failed to query cached reports")
		return nil, fmt.Errorf("failed to query cached reports: %w", err)
	}
	defer rows.Close()

	return scanReports(rows)
}
