package service

import (
	"github.com/MKhiriev/fleet-tracker/internal/config"
	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/store"
	"github.com/MKhiriev/fleet-tracker/internal/validators"
)

type Services struct {
	AuthService   AuthService
	FleetService  FleetService
	VoyageService VoyageService
	ReportService ReportService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewFleetValidator()

	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg.App, validator, logger),
		FleetService:  NewFleetService(storages.ShipRepository, storages.FishingSpotRepository, validator, logger),
		VoyageService: NewVoyageService(storages.RouteRepository, storages.CatchRepository, validator, logger),
		ReportService: NewReportService(storages.ReportRepository, storages.RouteRepository, validator, logger),
	}
}
