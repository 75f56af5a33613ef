package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/store"
	"github.com/MKhiriev/fleet-tracker/internal/validators"
	"github.com/MKhiriev/fleet-tracker/models"
)

// fleetService is the concrete implementation of FleetService.
//
// Ships are scoped to the operator who registered them: the owner id is
// forced to the caller on create, and update/delete queries filter on it, so
// somebody else's ship is indistinguishable from a missing one. Fishing spots
// deliberately carry no such scoping — every captain works with the shared
// pool.
type fleetService struct {
	shipRepository store.ShipRepository
	spotRepository store.FishingSpotRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewFleetService(ships store.ShipRepository, spots store.FishingSpotRepository, validator validators.Validator, logger *logger.Logger) FleetService {
	return &fleetService{
		shipRepository: ships,
		spotRepository: spots,
		validator:      validator,
		logger:         logger,
	}
}

// CreateShip registers a new vessel for the calling operator. Any UserID in
// the payload is overwritten with operatorID.
func (f *fleetService) CreateShip(ctx context.Context, operatorID int64, ship models.Ship) (models.Ship, error) {
	log := logger.FromContext(ctx)

	if err := f.validator.Validate(ctx, ship); err != nil {
		log.Err(err).Msg("invalid ship data provided")
		return models.Ship{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	ship.UserID = operatorID
	created, err := f.shipRepository.CreateShip(ctx, ship)
	if err != nil {
		log.Err(err).Msg("ship creation ended with error")
		return models.Ship{}, fmt.Errorf("ship creation ended with error: %w", err)
	}

	return created, nil
}

func (f *fleetService) ListShips(ctx context.Context, operatorID int64) ([]models.Ship, error) {
	ships, err := f.shipRepository.ListShipsByOwner(ctx, operatorID)
	if err != nil {
		return nil, fmt.Errorf("ships listing failed: %w", err)
	}

	return ships, nil
}

// UpdateShip rewrites a vessel owned by the calling operator. The repository
// filters on the owner, so a foreign ship surfaces as store.ErrShipNotFound.
func (f *fleetService) UpdateShip(ctx context.Context, operatorID int64, ship models.Ship) (models.Ship, error) {
	log := logger.FromContext(ctx)

	if err := f.validator.Validate(ctx, ship); err != nil {
		log.Err(err).Msg("invalid ship data provided")
		return models.Ship{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	ship.UserID = operatorID
	updated, err := f.shipRepository.UpdateShip(ctx, ship)
	if err != nil {
		log.Err(err).Int64("ship_id", ship.ShipID).Msg("ship update ended with error")
		return models.Ship{}, fmt.Errorf("ship update ended with error: %w", err)
	}

	return updated, nil
}

func (f *fleetService) DeleteShip(ctx context.Context, operatorID int64, shipID int64) error {
	log := logger.FromContext(ctx)

	if err := f.shipRepository.DeleteShip(ctx, shipID, operatorID); err != nil {
		log.Err(err).Int64("ship_id", shipID).Msg("ship deletion ended with error")
		return fmt.Errorf("ship deletion ended with error: %w", err)
	}

	return nil
}

func (f *fleetService) CreateSpot(ctx context.Context, spot models.FishingSpot) (models.FishingSpot, error) {
	log := logger.FromContext(ctx)

	if err := f.validator.Validate(ctx, spot); err != nil {
		log.Err(err).Msg("invalid fishing spot data provided")
		return models.FishingSpot{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := f.spotRepository.CreateSpot(ctx, spot)
	if err != nil {
		log.Err(err).Msg("fishing spot creation ended with error")
		return models.FishingSpot{}, fmt.Errorf("fishing spot creation ended with error: %w", err)
	}

	return created, nil
}

func (f *fleetService) ListSpots(ctx context.Context) ([]models.FishingSpot, error) {
	spots, err := f.spotRepository.ListSpots(ctx)
	if err != nil {
		return nil, fmt.Errorf("fishing spots listing failed: %w", err)
	}

	return spots, nil
}

// UpdateSpotTimes records new arrival/departure bounds on a spot. Setting an
// arrival time counts as a visit by the calling captain and is linked in
// user_fishing_spot; the linkage is best-effort and does not fail the update.
func (f *fleetService) UpdateSpotTimes(ctx context.Context, captainID int64, spotID int64, update models.SpotTimeUpdate) (models.FishingSpot, error) {
	log := logger.FromContext(ctx)

	spot, err := f.spotRepository.UpdateSpotTimes(ctx, spotID, update)
	if err != nil {
		log.Err(err).Int64("spot_id", spotID).Msg("fishing spot time update ended with error")
		return models.FishingSpot{}, fmt.Errorf("fishing spot time update ended with error: %w", err)
	}

	if update.ArrivalTime != nil {
		if err := f.spotRepository.LinkSpotVisit(ctx, captainID, spotID); err != nil {
			log.Err(err).
				Int64("captain_id", captainID).
				Int64("spot_id", spotID).
				Msg("spot visit linkage failed")
		}
	}

	return spot, nil
}

func (f *fleetService) DeleteSpot(ctx context.Context, spotID int64) error {
	log := logger.FromContext(ctx)

	if err := f.spotRepository.DeleteSpot(ctx, spotID); err != nil {
		log.Err(err).Int64("spot_id", spotID).Msg("fishing spot deletion ended with error")
		return fmt.Errorf("fishing spot deletion ended with error: %w", err)
	}

	return nil
}
