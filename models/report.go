package models

import "time"

// ReportStatus is the lifecycle state of a catch report.
//
// A report is always created in [ReportStatusNew]. Operators move it to
// confirmed or rejected; the owning captain may cancel it. Transitions are
// applied unconditionally: the current status is not checked before a new
// one is written, so a confirmed report can be re-confirmed or rejected
// afterwards. Last write wins.
type ReportStatus string

const (
	ReportStatusNew       ReportStatus = "new"
	ReportStatusConfirmed ReportStatus = "confirmed"
	ReportStatusRejected  ReportStatus = "rejected"
	ReportStatusCancelled ReportStatus = "cancelled"
)

// DefaultReportLimit caps report listings when the caller does not supply a
// positive limit.
const DefaultReportLimit int64 = 100

// Report is a captain-filed catch claim subject to operator confirmation.
type Report struct {
	// ReportID is the internal unique identifier of the report.
	ReportID int64 `json:"id"`

	// FishType is the reported species, free text.
	FishType string `json:"fish_type"`

	// Weight is the reported weight in kilograms. Must be positive.
	Weight float64 `json:"weight"`

	// Location is the reported catch location, free text.
	Location string `json:"location"`

	// Notes is optional commentary by the captain.
	Notes string `json:"notes,omitempty"`

	// Status is the current lifecycle state.
	// Forced to "new" on creation regardless of caller input.
	Status ReportStatus `json:"status"`

	// CreatedAt is assigned server-side at persistence time.
	// Caller-supplied values are ignored.
	CreatedAt time.Time `json:"created_at"`

	// UserID references the captain who filed the report.
	UserID int64 `json:"user_id"`

	// RouteID optionally references the route the report was filed against.
	// When present, the route's captain must equal UserID; the check runs at
	// creation time only.
	RouteID *int64 `json:"route_id,omitempty"`
}

// TableName returns the name of the database table
// associated with the Report model.
func (r Report) TableName() string {
	return "reports"
}

// ReportFilter holds the criteria of the report listing operation.
type ReportFilter struct {
	// UserID restricts the listing to reports owned by the given captain.
	// Zero means no owner restriction.
	UserID int64

	// RouteID restricts the listing to reports filed against a route.
	// Zero means no route restriction.
	RouteID int64

	// Offset and Limit paginate the result. A non-positive Limit falls back
	// to the server default of 100.
	Offset int64
	Limit  int64
}
