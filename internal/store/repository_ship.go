package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/models"
)

// shipRepository is the PostgreSQL-backed implementation of [ShipRepository].
//
// Every mutating query carries the owner's user_id in its WHERE clause, so a
// ship belonging to another operator behaves exactly like a missing ship:
// both surface as [ErrShipNotFound].
type shipRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewShipRepository(db *DB, logger *logger.Logger) ShipRepository {
	logger.Debug().Msg("creating ship repository")
	return &shipRepository{
		db:     db,
		logger: logger,
	}
}

func (r *shipRepository) CreateShip(ctx context.Context, ship models.Ship) (models.Ship, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createShip,
		ship.UserID, ship.Name, ship.Type, ship.Displacement, ship.BuildDate)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*shipRepository.CreateShip").Msg("error: row is nil")
		return models.Ship{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&ship.ShipID, &ship.UserID, &ship.Name, &ship.Type,
		&ship.Displacement, &ship.BuildDate); err != nil {
		log.Err(err).Str("func", "*shipRepository.CreateShip").Msg("error: scanning error")
		return models.Ship{}, err
	}

	return ship, nil
}

func (r *shipRepository) ListShipsByOwner(ctx context.Context, userID int64) ([]models.Ship, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listShipsByOwner, userID)
	if err != nil {
		log.Err(err).Str("func", "*shipRepository.ListShipsByOwner").Int64("user_id", userID).Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ships []models.Ship
	for rows.Next() {
		var s models.Ship
		if err := rows.Scan(&s.ShipID, &s.UserID, &s.Name, &s.Type, &s.Displacement, &s.BuildDate); err != nil {
			log.Err(err).Str("func", "*shipRepository.ListShipsByOwner").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ships = append(ships, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ships, nil
}

// UpdateShip rewrites the mutable ship columns. The WHERE clause matches both
// id and user_id; a vanished RETURNING row therefore means either a missing
// ship or somebody else's ship, and both map to [ErrShipNotFound].
func (r *shipRepository) UpdateShip(ctx context.Context, ship models.Ship) (models.Ship, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateShip,
		ship.Name, ship.Type, ship.Displacement, ship.BuildDate, ship.ShipID, ship.UserID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*shipRepository.UpdateShip").Msg("error: row is nil")
		return models.Ship{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var updated models.Ship
	if err := row.Scan(&updated.ShipID, &updated.UserID, &updated.Name, &updated.Type,
		&updated.Displacement, &updated.BuildDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Ship{}, ErrShipNotFound
		}
		log.Err(err).Str("func", "*shipRepository.UpdateShip").Msg("error: scanning error")
		return models.Ship{}, err
	}

	return updated, nil
}

func (r *shipRepository) DeleteShip(ctx context.Context, shipID int64, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteShip, shipID, userID)
	if err != nil {
		log.Err(err).Str("func", "*shipRepository.DeleteShip").Int64("ship_id", shipID).Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrShipNotFound
	}

	return nil
}
