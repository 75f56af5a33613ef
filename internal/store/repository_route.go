package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/models"
)

// routeRepository is the PostgreSQL-backed implementation of [RouteRepository].
// The search operation builds its SELECT dynamically with squirrel, everything
// else runs fixed queries from sql_queries.go.
type routeRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewRouteRepository(db *DB, logger *logger.Logger) RouteRepository {
	logger.Debug().Msg("creating route repository")
	return &routeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *routeRepository) CreateRoute(ctx context.Context, route models.Route) (models.Route, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createRoute,
		route.ShipID, route.OperatorID, route.CaptainID, route.Code,
		route.DepartureTime, route.ReturnTime)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*routeRepository.CreateRoute").Msg("error: row is nil")
		return models.Route{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&route.RouteID, &route.ShipID, &route.OperatorID, &route.CaptainID,
		&route.Code, &route.DepartureTime, &route.ReturnTime); err != nil {
		log.Err(err).Str("func", "*routeRepository.CreateRoute").Msg("error: scanning error")
		return models.Route{}, err
	}

	return route, nil
}

func (r *routeRepository) GetRoute(ctx context.Context, routeID int64) (models.Route, error) {
	log := logger.FromContext(ctx)

	var route models.Route
	row := r.db.QueryRowContext(ctx, getRoute, routeID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*routeRepository.GetRoute").Int64("route_id", routeID).Msg("error: row is nil")
		return models.Route{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&route.RouteID, &route.ShipID, &route.OperatorID, &route.CaptainID,
		&route.Code, &route.DepartureTime, &route.ReturnTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Route{}, ErrRouteNotFound
		}
		log.Err(err).Str("func", "*routeRepository.GetRoute").Msg("error: scanning error")
		return models.Route{}, err
	}

	return route, nil
}

func (r *routeRepository) ListRoutesByOperator(ctx context.Context, operatorID int64) ([]models.Route, error) {
	return r.listRoutes(ctx, listRoutesByOperator, operatorID)
}

func (r *routeRepository) ListRoutesByCaptain(ctx context.Context, captainID int64) ([]models.Route, error) {
	return r.listRoutes(ctx, listRoutesByCaptain, captainID)
}

func (r *routeRepository) listRoutes(ctx context.Context, query string, id int64) ([]models.Route, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		log.Err(err).Str("func", "*routeRepository.listRoutes").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanRoutes(rows)
}

// SearchRoutes runs the dynamically built filter query. An empty filter
// degrades to a full listing ordered by id.
func (r *routeRepository) SearchRoutes(ctx context.Context, filter models.RouteFilter) ([]models.Route, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchRoutesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*routeRepository.SearchRoutes").Msg("error: building query failed")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*routeRepository.SearchRoutes").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanRoutes(rows)
}

func scanRoutes(rows *sql.Rows) ([]models.Route, error) {
	var routes []models.Route
	for rows.Next() {
		var route models.Route
		if err := rows.Scan(&route.RouteID, &route.ShipID, &route.OperatorID, &route.CaptainID,
			&route.Code, &route.DepartureTime, &route.ReturnTime); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		routes = append(routes, route)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return routes, nil
}

// DeleteRoute removes a route only when it belongs to the given operator.
// A foreign or missing route surfaces as [ErrRouteNotFound].
func (r *routeRepository) DeleteRoute(ctx context.Context, routeID int64, operatorID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteRoute, routeID, operatorID)
	if err != nil {
		log.Err(err).Str("func", "*routeRepository.DeleteRoute").Int64("route_id", routeID).Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRouteNotFound
	}

	return nil
}

// AttachFishingSpots links the given spots to a route inside one transaction.
// Already linked pairs are skipped by ON CONFLICT DO NOTHING.
func (r *routeRepository) AttachFishingSpots(ctx context.Context, routeID int64, spotIDs ...int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*routeRepository.AttachFishingSpots").Msg("error: begin transaction failed")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, spotID := range spotIDs {
		if _, err := tx.ExecContext(ctx, attachFishingSpot, routeID, spotID); err != nil {
			log.Err(err).
				Str("func", "*routeRepository.AttachFishingSpots").
				Int64("route_id", routeID).
				Int64("spot_id", spotID).
				Msg("error: insert failed")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
