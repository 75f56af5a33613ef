package store

import (
	"github.com/MKhiriev/fleet-tracker/migrations"
)

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
