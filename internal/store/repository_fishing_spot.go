package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/models"
)

// fishingSpotRepository is the PostgreSQL-backed implementation of
// [FishingSpotRepository]. Spots are shared between captains, so no query in
// this file carries an ownership filter. Visits are recorded in the
// user_fishing_spot join table instead.
type fishingSpotRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewFishingSpotRepository(db *DB, logger *logger.Logger) FishingSpotRepository {
	logger.Debug().Msg("creating fishing spot repository")
	return &fishingSpotRepository{
		db:     db,
		logger: logger,
	}
}

func (r *fishingSpotRepository) CreateSpot(ctx context.Context, spot models.FishingSpot) (models.FishingSpot, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSpot,
		spot.Name, spot.Coordinates, spot.Depth, spot.FishType, spot.ArrivalTime, spot.DepartureTime)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*fishingSpotRepository.CreateSpot").Msg("error: row is nil")
		return models.FishingSpot{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&spot.SpotID, &spot.Name, &spot.Coordinates, &spot.Depth,
		&spot.FishType, &spot.ArrivalTime, &spot.DepartureTime); err != nil {
		log.Err(err).Str("func", "*fishingSpotRepository.CreateSpot").Msg("error: scanning error")
		return models.FishingSpot{}, err
	}

	return spot, nil
}

func (r *fishingSpotRepository) ListSpots(ctx context.Context) ([]models.FishingSpot, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listSpots)
	if err != nil {
		log.Err(err).Str("func", "*fishingSpotRepository.ListSpots").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var spots []models.FishingSpot
	for rows.Next() {
		var s models.FishingSpot
		if err := rows.Scan(&s.SpotID, &s.Name, &s.Coordinates, &s.Depth,
			&s.FishType, &s.ArrivalTime, &s.DepartureTime); err != nil {
			log.Err(err).Str("func", "*fishingSpotRepository.ListSpots").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		spots = append(spots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return spots, nil
}

func (r *fishingSpotRepository) GetSpot(ctx context.Context, spotID int64) (models.FishingSpot, error) {
	log := logger.FromContext(ctx)

	var spot models.FishingSpot
	row := r.db.QueryRowContext(ctx, getSpot, spotID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*fishingSpotRepository.GetSpot").Int64("spot_id", spotID).Msg("error: row is nil")
		return models.FishingSpot{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&spot.SpotID, &spot.Name, &spot.Coordinates, &spot.Depth,
		&spot.FishType, &spot.ArrivalTime, &spot.DepartureTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FishingSpot{}, ErrSpotNotFound
		}
		log.Err(err).Str("func", "*fishingSpotRepository.GetSpot").Msg("error: scanning error")
		return models.FishingSpot{}, err
	}

	return spot, nil
}

// UpdateSpotTimes touches only the timestamps. COALESCE keeps the stored value
// for whichever bound the caller left nil.
func (r *fishingSpotRepository) UpdateSpotTimes(ctx context.Context, spotID int64, update models.SpotTimeUpdate) (models.FishingSpot, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateSpotTimes, update.ArrivalTime, update.DepartureTime, spotID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*fishingSpotRepository.UpdateSpotTimes").Int64("spot_id", spotID).Msg("error: row is nil")
		return models.FishingSpot{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var spot models.FishingSpot
	if err := row.Scan(&spot.SpotID, &spot.Name, &spot.Coordinates, &spot.Depth,
		&spot.FishType, &spot.ArrivalTime, &spot.DepartureTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FishingSpot{}, ErrSpotNotFound
		}
		log.Err(err).Str("func", "*fishingSpotRepository.UpdateSpotTimes").Msg("error: scanning error")
		return models.FishingSpot{}, err
	}

	return spot, nil
}

func (r *fishingSpotRepository) DeleteSpot(ctx context.Context, spotID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteSpot, spotID)
	if err != nil {
		log.Err(err).Str("func", "*fishingSpotRepository.DeleteSpot").Int64("spot_id", spotID).Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSpotNotFound
	}

	return nil
}

// LinkSpotVisit upserts a row in user_fishing_spot. Re-visiting a spot is a
// no-op thanks to ON CONFLICT DO NOTHING.
func (r *fishingSpotRepository) LinkSpotVisit(ctx context.Context, userID int64, spotID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, linkSpotVisit, userID, spotID); err != nil {
		log.Err(err).
			Str("func", "*fishingSpotRepository.LinkSpotVisit").
			Int64("user_id", userID).
			Int64("spot_id", spotID).
			Msg("error: insert failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
