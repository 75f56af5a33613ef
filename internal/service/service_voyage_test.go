package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/store"
	"github.com/MKhiriev/fleet-tracker/internal/validators"
	"github.com/MKhiriev/fleet-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.CatchRepository
// ─────────────────────────────────────────────

type mockCatchRepository struct {
	createFn func(ctx context.Context, record models.Catch) (models.Catch, error)
	statsFn  func(ctx context.Context, filter models.CatchStatsFilter) (models.CatchStatistics, error)
}

func (m *mockCatchRepository) CreateCatch(ctx context.Context, record models.Catch) (models.Catch, error) {
	if m.createFn != nil {
		return m.createFn(ctx, record)
	}
	record.CatchID = 1
	return record, nil
}

func (m *mockCatchRepository) Statistics(ctx context.Context, filter models.CatchStatsFilter) (models.CatchStatistics, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx, filter)
	}
	return models.CatchStatistics{}, nil
}

func newTestVoyageService(routes store.RouteRepository, catches store.CatchRepository) VoyageService {
	return NewVoyageService(routes, catches, validators.NewFleetValidator(), logger.NewLogger("test"))
}

func TestVoyageService_CreateRoute_ForcesOperator(t *testing.T) {
	var persisted models.Route
	routes := &mockRouteRepository{
		createFn: func(_ context.Context, route models.Route) (models.Route, error) {
			persisted = route
			route.RouteID = 1
			return route, nil
		},
	}
	svc := newTestVoyageService(routes, &mockCatchRepository{})

	route := models.Route{Code: "R-042", ShipID: 2, CaptainID: 9, OperatorID: 999}
	created, err := svc.CreateRoute(context.Background(), 4, route)
	require.NoError(t, err)

	assert.Equal(t, int64(4), persisted.OperatorID)
	assert.Equal(t, int64(1), created.RouteID)
}

func TestVoyageService_CreateRoute_Invalid(t *testing.T) {
	svc := newTestVoyageService(&mockRouteRepository{}, &mockCatchRepository{})

	_, err := svc.CreateRoute(context.Background(), 4, models.Route{ShipID: 2, CaptainID: 9})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestVoyageService_DeleteRoute_NotOwned(t *testing.T) {
	routes := &mockRouteRepository{
		deleteFn: func(_ context.Context, _ int64, _ int64) error {
			return store.ErrRouteNotFound
		},
	}
	svc := newTestVoyageService(routes, &mockCatchRepository{})

	err := svc.DeleteRoute(context.Background(), 4, 11)
	require.ErrorIs(t, err, store.ErrRouteNotFound)
}

func TestVoyageService_AttachFishingSpots_EmptyList(t *testing.T) {
	svc := newTestVoyageService(&mockRouteRepository{}, &mockCatchRepository{})

	err := svc.AttachFishingSpots(context.Background(), 1)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestVoyageService_AttachFishingSpots_RouteMissing(t *testing.T) {
	routes := &mockRouteRepository{
		getFn: func(_ context.Context, _ int64) (models.Route, error) {
			return models.Route{}, store.ErrRouteNotFound
		},
	}
	svc := newTestVoyageService(routes, &mockCatchRepository{})

	err := svc.AttachFishingSpots(context.Background(), 404, 1, 2)
	require.ErrorIs(t, err, store.ErrRouteNotFound)
}

func TestVoyageService_AttachFishingSpots_Success(t *testing.T) {
	var attached []int64
	routes := &mockRouteRepository{
		attachFn: func(_ context.Context, _ int64, spotIDs ...int64) error {
			attached = spotIDs
			return nil
		},
	}
	svc := newTestVoyageService(routes, &mockCatchRepository{})

	require.NoError(t, svc.AttachFishingSpots(context.Background(), 1, 5, 6))
	assert.Equal(t, []int64{5, 6}, attached)
}

func TestVoyageService_LogCatch_ForcesOperatorAndChecksRoute(t *testing.T) {
	var persisted models.Catch
	catches := &mockCatchRepository{
		createFn: func(_ context.Context, record models.Catch) (models.Catch, error) {
			persisted = record
			record.CatchID = 3
			return record, nil
		},
	}
	svc := newTestVoyageService(&mockRouteRepository{}, catches)

	record := models.Catch{RouteID: 2, FishType: models.FishCod, Weight: 300, UserID: 999}
	created, err := svc.LogCatch(context.Background(), 4, record)
	require.NoError(t, err)

	assert.Equal(t, int64(4), persisted.UserID)
	assert.Equal(t, int64(3), created.CatchID)
}

func TestVoyageService_LogCatch_RouteMissing(t *testing.T) {
	routes := &mockRouteRepository{
		getFn: func(_ context.Context, _ int64) (models.Route, error) {
			return models.Route{}, store.ErrRouteNotFound
		},
	}
	svc := newTestVoyageService(routes, &mockCatchRepository{})

	_, err := svc.LogCatch(context.Background(), 4, models.Catch{RouteID: 404, FishType: models.FishCod, Weight: 300})
	require.ErrorIs(t, err, store.ErrRouteNotFound)
}

func TestVoyageService_LogCatch_Invalid(t *testing.T) {
	svc := newTestVoyageService(&mockRouteRepository{}, &mockCatchRepository{})

	_, err := svc.LogCatch(context.Background(), 4, models.Catch{RouteID: 2, FishType: "kraken", Weight: 300})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestVoyageService_CatchStatistics_PassesFilter(t *testing.T) {
	var gotFilter models.CatchStatsFilter
	catches := &mockCatchRepository{
		statsFn: func(_ context.Context, filter models.CatchStatsFilter) (models.CatchStatistics, error) {
			gotFilter = filter
			return models.CatchStatistics{TotalWeight: 420.5, Count: 3}, nil
		},
	}
	svc := newTestVoyageService(&mockRouteRepository{}, catches)

	stats, err := svc.CatchStatistics(context.Background(), models.CatchStatsFilter{})
	require.NoError(t, err)

	assert.Equal(t, 420.5, stats.TotalWeight)
	assert.Equal(t, int64(3), stats.Count)
	assert.Nil(t, gotFilter.DateFrom)
}
