package store

import (
	"context"

	"github.com/MKhiriev/fleet-tracker/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalReportRepository is the client-side report cache. The background
// refresh worker replaces its contents with the latest server snapshot; the
// console reads from it when the server is unreachable.
type LocalReportRepository interface {
	ReplaceReports(ctx context.Context, reports ...models.Report) error
	GetAllReports(ctx context.Context) ([]models.Report, error)
}
