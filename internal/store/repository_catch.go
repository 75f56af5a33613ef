package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/models"
)

// catchRepository is the PostgreSQL-backed implementation of [CatchRepository].
// Catch records are immutable: there is no update or delete path.
type catchRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCatchRepository(db *DB, logger *logger.Logger) CatchRepository {
	logger.Debug().Msg("creating catch repository")
	return &catchRepository{
		db:     db,
		logger: logger,
	}
}

func (r *catchRepository) CreateCatch(ctx context.Context, record models.Catch) (models.Catch, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCatch,
		record.UserID, record.RouteID, record.FishType, record.Weight)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*catchRepository.CreateCatch").Msg("error: row is nil")
		return models.Catch{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&record.CatchID, &record.UserID, &record.RouteID,
		&record.FishType, &record.Weight); err != nil {
		log.Err(err).Str("func", "*catchRepository.CreateCatch").Msg("error: scanning error")
		return models.Catch{}, err
	}

	return record, nil
}

// Statistics aggregates total weight and record count over catches whose
// route's voyage window falls inside the optional date bounds.
func (r *catchRepository) Statistics(ctx context.Context, filter models.CatchStatsFilter) (models.CatchStatistics, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCatchStatisticsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*catchRepository.Statistics").Msg("error: building query failed")
		return models.CatchStatistics{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stats models.CatchStatistics
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*catchRepository.Statistics").Msg("error: row is nil")
		return models.CatchStatistics{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&stats.TotalWeight, &stats.Count); err != nil {
		log.Err(err).Str("func", "*catchRepository.Statistics").Msg("error: scanning error")
		return models.CatchStatistics{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return stats, nil
}
