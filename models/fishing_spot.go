package models

import "time"

// FishType classifies catches and the target species of a fishing spot.
type FishType string

const (
	FishCod     FishType = "cod"
	FishSalmon  FishType = "salmon"
	FishHerring FishType = "herring"
	FishOther   FishType = "other"
)

// Valid reports whether t is one of the known fish types.
func (t FishType) Valid() bool {
	switch t {
	case FishCod, FishSalmon, FishHerring, FishOther:
		return true
	}
	return false
}

// FishingSpot is a shared fishing location. Unlike ships, spots carry no
// owner: any captain may create, update or delete any spot.
type FishingSpot struct {
	// SpotID is the internal unique identifier of the spot.
	SpotID int64 `json:"id"`

	// Name is the spot display name.
	Name string `json:"name"`

	// Coordinates holds the location in free text form ("69.2N 33.4E").
	Coordinates string `json:"coordinates"`

	// Depth is the optional water depth in metres.
	Depth *float64 `json:"depth,omitempty"`

	// FishType is the optional target species at the spot.
	FishType *FishType `json:"fish_type,omitempty"`

	// ArrivalTime is the optional time a vessel arrived at the spot.
	ArrivalTime *time.Time `json:"arrival_time,omitempty"`

	// DepartureTime is the optional time a vessel left the spot.
	DepartureTime *time.Time `json:"departure_time,omitempty"`
}

// TableName returns the name of the database table
// associated with the FishingSpot model.
func (f FishingSpot) TableName() string {
	return "fishing_spots"
}

// SpotTimeUpdate carries the optional arrival/departure timestamps for the
// spot time update operation. Nil fields are left untouched.
type SpotTimeUpdate struct {
	ArrivalTime   *time.Time `json:"arrival_time,omitempty"`
	DepartureTime *time.Time `json:"departure_time,omitempty"`
}
