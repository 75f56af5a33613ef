package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/fleet-tracker/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldEmail targets the account email address.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a register or login request.
	FieldPassword = "password"

	// FieldRole targets the account role (operator or captain).
	FieldRole = "role"

	// FieldFishType targets the species field of a report or catch.
	FieldFishType = "fish_type"

	// FieldWeight targets the weight field of a report or catch.
	FieldWeight = "weight"

	// FieldLocation targets the free-text location of a report.
	FieldLocation = "location"

	// FieldShipName targets the vessel display name.
	FieldShipName = "ship_name"

	// FieldShipType targets the vessel class field.
	FieldShipType = "ship_type"

	// FieldSpotName targets the fishing spot display name.
	FieldSpotName = "spot_name"

	// FieldCoordinates targets the fishing spot coordinates.
	FieldCoordinates = "coordinates"

	// FieldRouteCode targets the route voyage code.
	FieldRouteCode = "route_code"

	// FieldShipID targets the vessel reference of a route.
	FieldShipID = "ship_id"

	// FieldCaptainID targets the captain reference of a route.
	FieldCaptainID = "captain_id"

	// FieldRouteID targets the route reference of a catch.
	FieldRouteID = "route_id"
)

// FleetValidator implements the Validator interface for all fleet domain
// models: RegisterRequest, LoginRequest, ReportCreateRequest, Ship,
// FishingSpot, Route, and Catch.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type FleetValidator struct {
}

// NewFleetValidator constructs a new FleetValidator
// and returns it as the Validator interface.
func NewFleetValidator() Validator {
	return &FleetValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.LoginRequest / *models.LoginRequest
//   - models.ReportCreateRequest / *models.ReportCreateRequest
//   - models.Ship / *models.Ship
//   - models.FishingSpot / *models.FishingSpot
//   - models.Route / *models.Route
//   - models.Catch / *models.Catch
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *FleetValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.ReportCreateRequest:
		return v.validateReportCreateRequest(ctx, value, fields...)
	case *models.ReportCreateRequest:
		return v.validateReportCreateRequest(ctx, *value, fields...)

	case models.Ship:
		return v.validateShip(ctx, value, fields...)
	case *models.Ship:
		return v.validateShip(ctx, *value, fields...)

	case models.FishingSpot:
		return v.validateFishingSpot(ctx, value, fields...)
	case *models.FishingSpot:
		return v.validateFishingSpot(ctx, *value, fields...)

	case models.Route:
		return v.validateRoute(ctx, value, fields...)
	case *models.Route:
		return v.validateRoute(ctx, *value, fields...)

	case models.Catch:
		return v.validateCatch(ctx, value, fields...)
	case *models.Catch:
		return v.validateCatch(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FleetValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldRole}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		case FieldRole:
			if !req.Role.Valid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FleetValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FleetValidator) validateReportCreateRequest(_ context.Context, req models.ReportCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFishType, FieldWeight, FieldLocation}
	}

	for _, field := range fields {
		switch field {
		case FieldFishType:
			if req.FishType == "" {
				return ErrEmptyFishType
			}
		case FieldWeight:
			if req.Weight <= 0 {
				return ErrInvalidWeight
			}
		case FieldLocation:
			if req.Location == "" {
				return ErrEmptyLocation
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FleetValidator) validateShip(_ context.Context, ship models.Ship, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldShipName, FieldShipType}
	}

	for _, field := range fields {
		switch field {
		case FieldShipName:
			if ship.Name == "" {
				return ErrEmptyShipName
			}
		case FieldShipType:
			if !ship.Type.Valid() {
				return ErrInvalidShipType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FleetValidator) validateFishingSpot(_ context.Context, spot models.FishingSpot, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSpotName, FieldCoordinates, FieldFishType}
	}

	for _, field := range fields {
		switch field {
		case FieldSpotName:
			if spot.Name == "" {
				return ErrEmptySpotName
			}
		case FieldCoordinates:
			if spot.Coordinates == "" {
				return ErrEmptyCoordinates
			}
		case FieldFishType:
			// fish type is optional for a spot, checked only when present
			if spot.FishType != nil && !spot.FishType.Valid() {
				return ErrInvalidFishType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FleetValidator) validateRoute(_ context.Context, route models.Route, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRouteCode, FieldShipID, FieldCaptainID}
	}

	for _, field := range fields {
		switch field {
		case FieldRouteCode:
			if route.Code == "" {
				return ErrEmptyRouteCode
			}
		case FieldShipID:
			if route.ShipID <= 0 {
				return ErrInvalidShipID
			}
		case FieldCaptainID:
			if route.CaptainID <= 0 {
				return ErrInvalidCaptainID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FleetValidator) validateCatch(_ context.Context, record models.Catch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRouteID, FieldFishType, FieldWeight}
	}

	for _, field := range fields {
		switch field {
		case FieldRouteID:
			if record.RouteID <= 0 {
				return ErrInvalidRouteID
			}
		case FieldFishType:
			if !record.FishType.Valid() {
				return ErrInvalidFishType
			}
		case FieldWeight:
			if record.Weight <= 0 {
				return ErrInvalidWeight
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	// minimal shape check, full verification happens at delivery time
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}

	return nil
}
