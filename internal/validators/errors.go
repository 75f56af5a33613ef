package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmptyPassword    = errors.New("password is required")
	ErrInvalidRole      = errors.New("invalid role")
	ErrEmptyFishType    = errors.New("fish type is required")
	ErrInvalidFishType  = errors.New("invalid fish type")
	ErrEmptyLocation    = errors.New("location is required")
	ErrInvalidWeight    = errors.New("weight must be positive")
	ErrEmptyShipName    = errors.New("ship name is required")
	ErrInvalidShipType  = errors.New("invalid ship type")
	ErrEmptySpotName    = errors.New("fishing spot name is required")
	ErrEmptyCoordinates = errors.New("coordinates are required")
	ErrEmptyRouteCode   = errors.New("route code is required")
	ErrInvalidShipID    = errors.New("invalid ship ID")
	ErrInvalidCaptainID = errors.New("invalid captain ID")
	ErrInvalidRouteID   = errors.New("invalid route ID")
	ErrEmptySpotIDs     = errors.New("fishing spot IDs list cannot be empty")
)
