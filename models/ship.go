package models

import "time"

// ShipType classifies a vessel by its fleet function.
type ShipType string

const (
	ShipTrawler  ShipType = "trawler"
	ShipFreezer  ShipType = "freezer"
	ShipFlagship ShipType = "flagship"
)

// Valid reports whether t is one of the known ship types.
func (t ShipType) Valid() bool {
	return t == ShipTrawler || t == ShipFreezer || t == ShipFlagship
}

// Ship is a vessel registered and owned by exactly one operator.
// Only the owning operator may update or delete it.
type Ship struct {
	// ShipID is the internal unique identifier of the vessel.
	ShipID int64 `json:"id"`

	// UserID references the operator who registered the vessel.
	UserID int64 `json:"user_id"`

	// Name is the vessel display name.
	Name string `json:"name"`

	// Type is the vessel class: trawler, freezer or flagship.
	Type ShipType `json:"type"`

	// Displacement is the vessel displacement in tonnes.
	Displacement float64 `json:"displacement"`

	// BuildDate is the vessel construction date.
	BuildDate time.Time `json:"build_date"`
}

// TableName returns the name of the database table
// associated with the Ship model.
func (s Ship) TableName() string {
	return "ships"
}
