package service

import (
	"context"

	"github.com/MKhiriev/fleet-tracker/models"
)

// ClientAuthService defines the client-side contract for registration and
// authentication against the fleet server.
type ClientAuthService interface {
	// Register creates a new account on the server. No token is issued;
	// call Login afterwards.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login exchanges credentials for a bearer token (stored inside the
	// server adapter) and returns the authenticated account record.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
}

// ClientReportService defines the client-side contract for browsing and
// mutating catch reports. Listings are served from the server when it is
// reachable and fall back to the local SQLite cache otherwise; every
// successful server fetch refreshes the cache.
type ClientReportService interface {
	// List returns the reports visible to the authenticated user. fromCache
	// reports whether the result came from the local cache because the
	// server was unreachable.
	List(ctx context.Context) (reports []models.Report, fromCache bool, err error)

	// Refresh fetches the latest report snapshot from the server and
	// replaces the local cache with it.
	Refresh(ctx context.Context) error

	// Create files a new catch report. Captain accounts only.
	Create(ctx context.Context, req models.ReportCreateRequest) (models.Report, error)

	// Approve confirms a report. Operator accounts only.
	Approve(ctx context.Context, reportID int64) (models.Report, error)

	// Reject rejects a report. Operator accounts only.
	Reject(ctx context.Context, reportID int64) (models.Report, error)

	// Cancel cancels a report previously filed by the caller.
	Cancel(ctx context.Context, reportID int64) (models.Report, error)
}
