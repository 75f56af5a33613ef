package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/store"
	"github.com/MKhiriev/fleet-tracker/internal/validators"
	"github.com/MKhiriev/fleet-tracker/models"
)

// voyageService is the concrete implementation of VoyageService.
//
// Routes are created and deleted by operators; the delete query filters on
// operator_id, so a foreign route surfaces as store.ErrRouteNotFound. Catch
// records are immutable once logged.
type voyageService struct {
	routeRepository store.RouteRepository
	catchRepository store.CatchRepository
	validator       validators.Validator
	logger          *logger.Logger
}

func NewVoyageService(routes store.RouteRepository, catches store.CatchRepository, validator validators.Validator, logger *logger.Logger) VoyageService {
	return &voyageService{
		routeRepository: routes,
		catchRepository: catches,
		validator:       validator,
		logger:          logger,
	}
}

// CreateRoute opens a new voyage. Any OperatorID in the payload is
// overwritten with operatorID.
func (v *voyageService) CreateRoute(ctx context.Context, operatorID int64, route models.Route) (models.Route, error) {
	log := logger.FromContext(ctx)

	if err := v.validator.Validate(ctx, route); err != nil {
		log.Err(err).Msg("invalid route data provided")
		return models.Route{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	route.OperatorID = operatorID
	created, err := v.routeRepository.CreateRoute(ctx, route)
	if err != nil {
		log.Err(err).Msg("route creation ended with error")
		return models.Route{}, fmt.Errorf("route creation ended with error: %w", err)
	}

	return created, nil
}

func (v *voyageService) ListRoutesForOperator(ctx context.Context, operatorID int64) ([]models.Route, error) {
	routes, err := v.routeRepository.ListRoutesByOperator(ctx, operatorID)
	if err != nil {
		return nil, fmt.Errorf("routes listing failed: %w", err)
	}

	return routes, nil
}

func (v *voyageService) ListRoutesForCaptain(ctx context.Context, captainID int64) ([]models.Route, error) {
	routes, err := v.routeRepository.ListRoutesByCaptain(ctx, captainID)
	if err != nil {
		return nil, fmt.Errorf("routes listing failed: %w", err)
	}

	return routes, nil
}

func (v *voyageService) SearchRoutes(ctx context.Context, filter models.RouteFilter) ([]models.Route, error) {
	routes, err := v.routeRepository.SearchRoutes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("route search failed: %w", err)
	}

	return routes, nil
}

func (v *voyageService) DeleteRoute(ctx context.Context, operatorID int64, routeID int64) error {
	log := logger.FromContext(ctx)

	if err := v.routeRepository.DeleteRoute(ctx, routeID, operatorID); err != nil {
		log.Err(err).Int64("route_id", routeID).Msg("route deletion ended with error")
		return fmt.Errorf("route deletion ended with error: %w", err)
	}

	return nil
}

// AttachFishingSpots links spots to a route. The route must exist; spot ids
// are passed through to the join table as given.
func (v *voyageService) AttachFishingSpots(ctx context.Context, routeID int64, spotIDs ...int64) error {
	log := logger.FromContext(ctx)

	if len(spotIDs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptySpotIDs)
	}

	if _, err := v.routeRepository.GetRoute(ctx, routeID); err != nil {
		log.Err(err).Int64("route_id", routeID).Msg("route lookup ended with error")
		return fmt.Errorf("route lookup ended with error: %w", err)
	}

	if err := v.routeRepository.AttachFishingSpots(ctx, routeID, spotIDs...); err != nil {
		log.Err(err).Int64("route_id", routeID).Msg("fishing spot attachment ended with error")
		return fmt.Errorf("fishing spot attachment ended with error: %w", err)
	}

	return nil
}

// LogCatch records a haul against a route. Any UserID in the payload is
// overwritten with operatorID. The referenced route must exist.
func (v *voyageService) LogCatch(ctx context.Context, operatorID int64, record models.Catch) (models.Catch, error) {
	log := logger.FromContext(ctx)

	if err := v.validator.Validate(ctx, record); err != nil {
		log.Err(err).Msg("invalid catch data provided")
		return models.Catch{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := v.routeRepository.GetRoute(ctx, record.RouteID); err != nil {
		log.Err(err).Int64("route_id", record.RouteID).Msg("route lookup ended with error")
		return models.Catch{}, fmt.Errorf("route lookup ended with error: %w", err)
	}

	record.UserID = operatorID
	created, err := v.catchRepository.CreateCatch(ctx, record)
	if err != nil {
		log.Err(err).Msg("catch logging ended with error")
		return models.Catch{}, fmt.Errorf("catch logging ended with error: %w", err)
	}

	return created, nil
}

func (v *voyageService) CatchStatistics(ctx context.Context, filter models.CatchStatsFilter) (models.CatchStatistics, error) {
	stats, err := v.catchRepository.Statistics(ctx, filter)
	if err != nil {
		return models.CatchStatistics{}, fmt.Errorf("catch statistics failed: %w", err)
	}

	return stats, nil
}
