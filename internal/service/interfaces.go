package service

import (
	"context"

	"github.com/MKhiriev/fleet-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ResolveUser(ctx context.Context, email string) (models.User, error)
	ListCaptains(ctx context.Context) ([]models.User, error)
}

// FleetService covers ships (operator-owned) and fishing spots (shared
// between captains).
type FleetService interface {
	CreateShip(ctx context.Context, operatorID int64, ship models.Ship) (models.Ship, error)
	ListShips(ctx context.Context, operatorID int64) ([]models.Ship, error)
	UpdateShip(ctx context.Context, operatorID int64, ship models.Ship) (models.Ship, error)
	DeleteShip(ctx context.Context, operatorID int64, shipID int64) error

	CreateSpot(ctx context.Context, spot models.FishingSpot) (models.FishingSpot, error)
	ListSpots(ctx context.Context) ([]models.FishingSpot, error)
	UpdateSpotTimes(ctx context.Context, captainID int64, spotID int64, update models.SpotTimeUpdate) (models.FishingSpot, error)
	DeleteSpot(ctx context.Context, spotID int64) error
}

// VoyageService covers routes and the catch ledger.
type VoyageService interface {
	CreateRoute(ctx context.Context, operatorID int64, route models.Route) (models.Route, error)
	ListRoutesForOperator(ctx context.Context, operatorID int64) ([]models.Route, error)
	ListRoutesForCaptain(ctx context.Context, captainID int64) ([]models.Route, error)
	SearchRoutes(ctx context.Context, filter models.RouteFilter) ([]models.Route, error)
	DeleteRoute(ctx context.Context, operatorID int64, routeID int64) error
	AttachFishingSpots(ctx context.Context, routeID int64, spotIDs ...int64) error

	LogCatch(ctx context.Context, operatorID int64, record models.Catch) (models.Catch, error)
	CatchStatistics(ctx context.Context, filter models.CatchStatsFilter) (models.CatchStatistics, error)
}

type ReportService interface {
	CreateReport(ctx context.Context, captain models.User, req models.ReportCreateRequest) (models.Report, error)
	GetReport(ctx context.Context, reportID int64) (models.Report, error)
	ListReports(ctx context.Context, principal models.User, offset, limit int64) ([]models.Report, error)
	ListReportsByRoute(ctx context.Context, routeID int64) ([]models.Report, error)
	ConfirmReport(ctx context.Context, reportID int64) (models.Report, error)
	RejectReport(ctx context.Context, reportID int64) (models.Report, error)
	CancelReport(ctx context.Context, captain models.User, reportID int64) (models.Report, error)
}
