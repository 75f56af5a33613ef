package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/store"
	"github.com/MKhiriev/fleet-tracker/internal/validators"
	"github.com/MKhiriev/fleet-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.ShipRepository
// ─────────────────────────────────────────────

type mockShipRepository struct {
	createFn func(ctx context.Context, ship models.Ship) (models.Ship, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Ship, error)
	updateFn func(ctx context.Context, ship models.Ship) (models.Ship, error)
	deleteFn func(ctx context.Context, shipID int64, userID int64) error
}

func (m *mockShipRepository) CreateShip(ctx context.Context, ship models.Ship) (models.Ship, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ship)
	}
	ship.ShipID = 1
	return ship, nil
}

func (m *mockShipRepository) ListShipsByOwner(ctx context.Context, userID int64) ([]models.Ship, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockShipRepository) UpdateShip(ctx context.Context, ship models.Ship) (models.Ship, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, ship)
	}
	return ship, nil
}

func (m *mockShipRepository) DeleteShip(ctx context.Context, shipID int64, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, shipID, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.FishingSpotRepository
// ─────────────────────────────────────────────

type mockSpotRepository struct {
	createFn      func(ctx context.Context, spot models.FishingSpot) (models.FishingSpot, error)
	listFn        func(ctx context.Context) ([]models.FishingSpot, error)
	getFn         func(ctx context.Context, spotID int64) (models.FishingSpot, error)
	updateTimesFn func(ctx context.Context, spotID int64, update models.SpotTimeUpdate) (models.FishingSpot, error)
	deleteFn      func(ctx context.Context, spotID int64) error
	linkVisitFn   func(ctx context.Context, userID int64, spotID int64) error
}

func (m *mockSpotRepository) CreateSpot(ctx context.Context, spot models.FishingSpot) (models.FishingSpot, error) {
	if m.createFn != nil {
		return m.createFn(ctx, spot)
	}
	spot.SpotID = 1
	return spot, nil
}

func (m *mockSpotRepository) ListSpots(ctx context.Context) ([]models.FishingSpot, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockSpotRepository) GetSpot(ctx context.Context, spotID int64) (models.FishingSpot, error) {
	if m.getFn != nil {
		return m.getFn(ctx, spotID)
	}
	return models.FishingSpot{SpotID: spotID}, nil
}

func (m *mockSpotRepository) UpdateSpotTimes(ctx context.Context, spotID int64, update models.SpotTimeUpdate) (models.FishingSpot, error) {
	if m.updateTimesFn != nil {
		return m.updateTimesFn(ctx, spotID, update)
	}
	return models.FishingSpot{SpotID: spotID}, nil
}

func (m *mockSpotRepository) DeleteSpot(ctx context.Context, spotID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, spotID)
	}
	return nil
}

func (m *mockSpotRepository) LinkSpotVisit(ctx context.Context, userID int64, spotID int64) error {
	if m.linkVisitFn != nil {
		return m.linkVisitFn(ctx, userID, spotID)
	}
	return nil
}

func newTestFleetService(ships store.ShipRepository, spots store.FishingSpotRepository) FleetService {
	return NewFleetService(ships, spots, validators.NewFleetValidator(), logger.NewLogger("test"))
}

func TestFleetService_CreateShip_ForcesOwner(t *testing.T) {
	var persisted models.Ship
	ships := &mockShipRepository{
		createFn: func(_ context.Context, ship models.Ship) (models.Ship, error) {
			persisted = ship
			ship.ShipID = 11
			return ship, nil
		},
	}
	svc := newTestFleetService(ships, &mockSpotRepository{})

	ship := models.Ship{Name: "Alpha", Type: models.ShipTrawler, UserID: 999}
	created, err := svc.CreateShip(context.Background(), 4, ship)
	require.NoError(t, err)

	assert.Equal(t, int64(4), persisted.UserID)
	assert.Equal(t, int64(11), created.ShipID)
}

func TestFleetService_CreateShip_Invalid(t *testing.T) {
	svc := newTestFleetService(&mockShipRepository{}, &mockSpotRepository{})

	_, err := svc.CreateShip(context.Background(), 4, models.Ship{Type: models.ShipTrawler})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestFleetService_UpdateShip_ForeignLooksMissing(t *testing.T) {
	ships := &mockShipRepository{
		updateFn: func(_ context.Context, _ models.Ship) (models.Ship, error) {
			return models.Ship{}, store.ErrShipNotFound
		},
	}
	svc := newTestFleetService(ships, &mockSpotRepository{})

	_, err := svc.UpdateShip(context.Background(), 4, models.Ship{ShipID: 11, Name: "Alpha", Type: models.ShipFreezer})
	require.ErrorIs(t, err, store.ErrShipNotFound)
}

func TestFleetService_DeleteShip_PassesOwner(t *testing.T) {
	var gotShipID, gotUserID int64
	ships := &mockShipRepository{
		deleteFn: func(_ context.Context, shipID int64, userID int64) error {
			gotShipID, gotUserID = shipID, userID
			return nil
		},
	}
	svc := newTestFleetService(ships, &mockSpotRepository{})

	require.NoError(t, svc.DeleteShip(context.Background(), 4, 11))
	assert.Equal(t, int64(11), gotShipID)
	assert.Equal(t, int64(4), gotUserID)
}

func TestFleetService_CreateSpot_Invalid(t *testing.T) {
	svc := newTestFleetService(&mockShipRepository{}, &mockSpotRepository{})

	_, err := svc.CreateSpot(context.Background(), models.FishingSpot{Name: "North Bank"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestFleetService_UpdateSpotTimes_ArrivalLinksVisit(t *testing.T) {
	var linkedUser, linkedSpot int64
	spots := &mockSpotRepository{
		linkVisitFn: func(_ context.Context, userID int64, spotID int64) error {
			linkedUser, linkedSpot = userID, spotID
			return nil
		},
	}
	svc := newTestFleetService(&mockShipRepository{}, spots)

	arrival := time.Now()
	_, err := svc.UpdateSpotTimes(context.Background(), 9, 5, models.SpotTimeUpdate{ArrivalTime: &arrival})
	require.NoError(t, err)

	assert.Equal(t, int64(9), linkedUser)
	assert.Equal(t, int64(5), linkedSpot)
}

func TestFleetService_UpdateSpotTimes_DepartureOnlySkipsVisit(t *testing.T) {
	linked := false
	spots := &mockSpotRepository{
		linkVisitFn: func(_ context.Context, _ int64, _ int64) error {
			linked = true
			return nil
		},
	}
	svc := newTestFleetService(&mockShipRepository{}, spots)

	departure := time.Now()
	_, err := svc.UpdateSpotTimes(context.Background(), 9, 5, models.SpotTimeUpdate{DepartureTime: &departure})
	require.NoError(t, err)

	assert.False(t, linked)
}

func TestFleetService_UpdateSpotTimes_NotFound(t *testing.T) {
	spots := &mockSpotRepository{
		updateTimesFn: func(_ context.Context, _ int64, _ models.SpotTimeUpdate) (models.FishingSpot, error) {
			return models.FishingSpot{}, store.ErrSpotNotFound
		},
	}
	svc := newTestFleetService(&mockShipRepository{}, spots)

	arrival := time.Now()
	_, err := svc.UpdateSpotTimes(context.Background(), 9, 404, models.SpotTimeUpdate{ArrivalTime: &arrival})
	require.ErrorIs(t, err, store.ErrSpotNotFound)
}
