package models

import "time"

// Catch is a single logged haul: one route, one logging operator, one fish
// type and a weight. Catches are immutable once logged; no update or delete
// operation is exposed.
type Catch struct {
	// CatchID is the internal unique identifier of the catch.
	CatchID int64 `json:"id"`

	// UserID references the operator who logged the catch.
	UserID int64 `json:"user_id"`

	// RouteID references the route the catch belongs to.
	RouteID int64 `json:"route_id"`

	// FishType is the caught species.
	FishType FishType `json:"fish_type"`

	// Weight is the haul weight in kilograms. Must be positive.
	Weight float64 `json:"weight"`
}

// TableName returns the name of the database table
// associated with the Catch model.
func (c Catch) TableName() string {
	return "catches"
}

// CatchStatsFilter bounds catch statistics by the departure/return window of
// the route each catch belongs to. Nil bounds are skipped.
type CatchStatsFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
}

// CatchStatistics is the aggregate returned by the statistics operation.
type CatchStatistics struct {
	// TotalWeight is the summed weight of all matched catches.
	TotalWeight float64 `json:"total_weight"`

	// Count is the number of matched catches.
	Count int64 `json:"count"`
}
