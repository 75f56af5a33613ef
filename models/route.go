package models

import "time"

// Route is a voyage assignment linking one vessel, one operator and one
// captain. Routes are created by operators and may be deleted only by the
// operator who created them.
type Route struct {
	// RouteID is the internal unique identifier of the route.
	RouteID int64 `json:"id"`

	// ShipID references the assigned vessel.
	ShipID int64 `json:"ship_id"`

	// OperatorID references the operator who created the route.
	OperatorID int64 `json:"operator_id"`

	// CaptainID references the captain assigned to the route.
	CaptainID int64 `json:"captain_id"`

	// Code is the voyage code ("MRM-2026-014").
	Code string `json:"code,omitempty"`

	// DepartureTime is the scheduled departure timestamp.
	DepartureTime *time.Time `json:"departure_time,omitempty"`

	// ReturnTime is the scheduled return timestamp.
	ReturnTime *time.Time `json:"return_time,omitempty"`
}

// TableName returns the name of the database table
// associated with the Route model.
func (r Route) TableName() string {
	return "routes"
}

// RouteFilter holds the optional criteria of the route search operation.
// Zero-valued fields are skipped when the query is built.
type RouteFilter struct {
	ShipID    int64
	CaptainID int64
	DateFrom  *time.Time
	DateTo    *time.Time
}
