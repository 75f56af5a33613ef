package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/fleet-tracker/internal/config"
	"github.com/MKhiriev/fleet-tracker/internal/logger"
)

const createLocalReportsTable = `CREATE TABLE IF NOT EXISTS cached_reports
(
    id         INTEGER PRIMARY KEY,
    fish_type  TEXT    NOT NULL,
    weight     REAL    NOT NULL,
    location   TEXT    NOT NULL,
    notes      TEXT    NOT NULL DEFAULT '',
    status     TEXT    NOT NULL,
    created_at TIMESTAMP NOT NULL,
    user_id    INTEGER NOT NULL,
    route_id   INTEGER
);`

func NewConnectSQLite(ctx context.Context, cfg config.ClientCache, log *logger.Logger) (*DB, error) {
	// empty path keeps the cache in-memory
	dsn := cfg.Path
	if dsn == "" {
		dsn = ":memory:"
	}

	// db will be in file
	if dsn != ":memory:" {
		if err := createLocalDBFileIfNotExists(dsn); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file")
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// local cache schema is a single table, no goose needed here
	if _, err := conn.ExecContext(ctx, createLocalReportsTable); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating local schema")
		return nil, fmt.Errorf("error creating local schema: %w", err)
	}

	// construct a DB struct
	db := &DB{
		DB:     conn,
		logger: log,
	}

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
