package store

import (
	"context"

	"github.com/MKhiriev/fleet-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error)
}

type ShipRepository interface {
	CreateShip(ctx context.Context, ship models.Ship) (models.Ship, error)
	ListShipsByOwner(ctx context.Context, userID int64) ([]models.Ship, error)
	UpdateShip(ctx context.Context, ship models.Ship) (models.Ship, error)
	DeleteShip(ctx context.Context, shipID int64, userID int64) error
}

type FishingSpotRepository interface {
	CreateSpot(ctx context.Context, spot models.FishingSpot) (models.FishingSpot, error)
	ListSpots(ctx context.Context) ([]models.FishingSpot, error)
	GetSpot(ctx context.Context, spotID int64) (models.FishingSpot, error)
	UpdateSpotTimes(ctx context.Context, spotID int64, update models.SpotTimeUpdate) (models.FishingSpot, error)
	DeleteSpot(ctx context.Context, spotID int64) error
	LinkSpotVisit(ctx context.Context, userID int64, spotID int64) error
}

type RouteRepository interface {
	CreateRoute(ctx context.Context, route models.Route) (models.Route, error)
	GetRoute(ctx context.Context, routeID int64) (models.Route, error)
	ListRoutesByOperator(ctx context.Context, operatorID int64) ([]models.Route, error)
	ListRoutesByCaptain(ctx context.Context, captainID int64) ([]models.Route, error)
	SearchRoutes(ctx context.Context, filter models.RouteFilter) ([]models.Route, error)
	DeleteRoute(ctx context.Context, routeID int64, operatorID int64) error
	AttachFishingSpots(ctx context.Context, routeID int64, spotIDs ...int64) error
}

type CatchRepository interface {
	CreateCatch(ctx context.Context, record models.Catch) (models.Catch, error)
	Statistics(ctx context.Context, filter models.CatchStatsFilter) (models.CatchStatistics, error)
}

type ReportRepository interface {
	CreateReport(ctx context.Context, report models.Report) (models.Report, error)
	GetReport(ctx context.Context, reportID int64) (models.Report, error)
	ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error)
	ListReportsByRoute(ctx context.Context, routeID int64) ([]models.Report, error)
	UpdateReportStatus(ctx context.Context, reportID int64, status models.ReportStatus) (models.Report, error)
}
