package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fleet-tracker/internal/config"
	"github.com/MKhiriev/fleet-tracker/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the client service layer. Currently it
// holds only [LocalReportRepository]; additional repositories can be added
// here as the feature set grows.
type ClientStorages struct {
	// ReportRepository is the SQLite-backed cache of the last report snapshot
	// fetched from the server.
	ReportRepository LocalReportRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.Path,
//     creating the database file if it does not yet exist (an empty path
//     keeps the cache in-memory).
//  2. Creates the local cache schema.
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [LocalReportRepository].
//
// Returns an error if the database connection cannot be established.
func NewClientStorages(cfg config.ClientCache, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		ReportRepository: NewLocalReportRepository(db, logger),
	}, nil
}
