package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fleet-tracker/internal/config"
	"github.com/MKhiriev/fleet-tracker/internal/logger"
)

// Storages groups all server-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	UserRepository        UserRepository
	ShipRepository        ShipRepository
	FishingSpotRepository FishingSpotRepository
	RouteRepository       RouteRepository
	CatchRepository       CatchRepository
	ReportRepository      ReportRepository
}

// NewStorages initialises the server storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens a PostgreSQL connection using the DSN from cfg.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		ShipRepository:        NewShipRepository(db, logger),
		FishingSpotRepository: NewFishingSpotRepository(db, logger),
		RouteRepository:       NewRouteRepository(db, logger),
		CatchRepository:       NewCatchRepository(db, logger),
		ReportRepository:      NewReportRepository(db, logger),
	}, nil
}
