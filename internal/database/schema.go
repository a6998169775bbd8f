package database

import (
	"database/sql"
	"fmt"
)

// Reference tables are immutable for the process lifetime; the
// observation table is append-only and replaced wholesale on a reload.
const schema = `
CREATE TABLE IF NOT EXISTS sites (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	latitude REAL NOT NULL,
	longitude REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS zones (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	site_id INTEGER NOT NULL REFERENCES sites(id)
);

CREATE TABLE IF NOT EXISTS crowd_observations (
	timestamp INTEGER NOT NULL,
	site_id INTEGER NOT NULL,
	zone_id INTEGER NOT NULL,
	count INTEGER NOT NULL,
	density REAL NOT NULL,
	PRIMARY KEY (site_id, zone_id, timestamp)
);

CREATE INDEX IF NOT EXISTS idx_observations_ts ON crowd_observations(timestamp);
CREATE INDEX IF NOT EXISTS idx_zones_site ON zones(site_id);
`

// ApplySchema creates the crowd tables if they do not exist.
func ApplySchema(conn *sql.DB) error {
	if _, err := conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
