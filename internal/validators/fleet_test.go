package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/fleet-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFleetValidator_RegisterRequest(t *testing.T) {
	v := NewFleetValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{
			name: "valid captain",
			req:  models.RegisterRequest{Email: "c@x.com", Password: "pw", Role: models.RoleCaptain},
		},
		{
			name: "valid operator",
			req:  models.RegisterRequest{Email: "o@x.com", Password: "pw", Role: models.RoleOperator},
		},
		{
			name:    "empty email",
			req:     models.RegisterRequest{Password: "pw", Role: models.RoleCaptain},
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "email without at sign",
			req:     models.RegisterRequest{Email: "nope", Password: "pw", Role: models.RoleCaptain},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "empty password",
			req:     models.RegisterRequest{Email: "c@x.com", Role: models.RoleCaptain},
			wantErr: ErrEmptyPassword,
		},
		{
			name:    "unknown role",
			req:     models.RegisterRequest{Email: "c@x.com", Password: "pw", Role: "admiral"},
			wantErr: ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFleetValidator_ReportCreateRequest(t *testing.T) {
	v := NewFleetValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.ReportCreateRequest
		wantErr error
	}{
		{
			name: "valid report",
			req:  models.ReportCreateRequest{FishType: "cod", Weight: 12.5, Location: "64.5N 11.2E"},
		},
		{
			name:    "missing fish type",
			req:     models.ReportCreateRequest{Weight: 12.5, Location: "bank"},
			wantErr: ErrEmptyFishType,
		},
		{
			name:    "zero weight",
			req:     models.ReportCreateRequest{FishType: "cod", Location: "bank"},
			wantErr: ErrInvalidWeight,
		},
		{
			name:    "negative weight",
			req:     models.ReportCreateRequest{FishType: "cod", Weight: -1, Location: "bank"},
			wantErr: ErrInvalidWeight,
		},
		{
			name:    "missing location",
			req:     models.ReportCreateRequest{FishType: "cod", Weight: 12.5},
			wantErr: ErrEmptyLocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, &tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFleetValidator_Ship(t *testing.T) {
	v := NewFleetValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.Ship{Name: "Alpha", Type: models.ShipTrawler}))
	assert.ErrorIs(t, v.Validate(ctx, models.Ship{Type: models.ShipTrawler}), ErrEmptyShipName)
	assert.ErrorIs(t, v.Validate(ctx, models.Ship{Name: "Alpha", Type: "submarine"}), ErrInvalidShipType)
}

func TestFleetValidator_FishingSpot(t *testing.T) {
	v := NewFleetValidator()
	ctx := context.Background()

	cod := models.FishCod
	bad := models.FishType("kraken")

	require.NoError(t, v.Validate(ctx, models.FishingSpot{Name: "North Bank", Coordinates: "64.5N 11.2E"}))
	require.NoError(t, v.Validate(ctx, models.FishingSpot{Name: "North Bank", Coordinates: "64.5N 11.2E", FishType: &cod}))
	assert.ErrorIs(t, v.Validate(ctx, models.FishingSpot{Coordinates: "64.5N 11.2E"}), ErrEmptySpotName)
	assert.ErrorIs(t, v.Validate(ctx, models.FishingSpot{Name: "North Bank"}), ErrEmptyCoordinates)
	assert.ErrorIs(t, v.Validate(ctx, models.FishingSpot{Name: "North Bank", Coordinates: "x", FishType: &bad}), ErrInvalidFishType)
}

func TestFleetValidator_Route(t *testing.T) {
	v := NewFleetValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.Route{Code: "R-042", ShipID: 2, CaptainID: 9}))
	assert.ErrorIs(t, v.Validate(ctx, models.Route{ShipID: 2, CaptainID: 9}), ErrEmptyRouteCode)
	assert.ErrorIs(t, v.Validate(ctx, models.Route{Code: "R-042", CaptainID: 9}), ErrInvalidShipID)
	assert.ErrorIs(t, v.Validate(ctx, models.Route{Code: "R-042", ShipID: 2}), ErrInvalidCaptainID)
}

func TestFleetValidator_Catch(t *testing.T) {
	v := NewFleetValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.Catch{RouteID: 3, FishType: models.FishHerring, Weight: 80}))
	assert.ErrorIs(t, v.Validate(ctx, models.Catch{FishType: models.FishHerring, Weight: 80}), ErrInvalidRouteID)
	assert.ErrorIs(t, v.Validate(ctx, models.Catch{RouteID: 3, FishType: "kraken", Weight: 80}), ErrInvalidFishType)
	assert.ErrorIs(t, v.Validate(ctx, models.Catch{RouteID: 3, FishType: models.FishHerring}), ErrInvalidWeight)
}

func TestFleetValidator_FieldScoping(t *testing.T) {
	v := NewFleetValidator()
	ctx := context.Background()

	// only the named field is checked, an invalid role passes
	req := models.RegisterRequest{Email: "c@x.com", Role: "admiral"}
	assert.NoError(t, v.Validate(ctx, req, FieldEmail))

	assert.ErrorIs(t, v.Validate(ctx, req, "no_such_field"), ErrUnknownField)
}

func TestFleetValidator_UnsupportedType(t *testing.T) {
	v := NewFleetValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), struct{}{}), ErrUnsupportedType)
}
