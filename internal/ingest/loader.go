package ingest

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/touristiq/crowd-backend-go/internal/database"
	"github.com/touristiq/crowd-backend-go/pkg/logger"
)

// Accepted timestamp layouts in the crowd CSV export.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Loader reads the CSV exports (sites, zones, crowd observations) into
// the sqlite store. Runs once at startup; a data refresh is a full
// reload into a fresh store, not an incremental update.
type Loader struct {
	db *sql.DB
}

// NewLoader creates a new CSV loader
func NewLoader(db *sql.DB) *Loader {
	return &Loader{db: db}
}

// LoadAll ingests the three CSV files in reference-first order.
func (l *Loader) LoadAll(sitesPath, zonesPath, crowdPath string) error {
	sites, err := l.LoadSites(sitesPath)
	if err != nil {
		return err
	}
	zones, err := l.LoadZones(zonesPath)
	if err != nil {
		return err
	}
	observations, err := l.LoadObservations(crowdPath)
	if err != nil {
		return err
	}

	logger.Info("data loaded",
		zap.Int("sites", sites),
		zap.Int("zones", zones),
		zap.Int("observations", observations),
	)
	return nil
}

// LoadSites ingests sites.csv (id, name, latitude, longitude).
func (l *Loader) LoadSites(path string) (int, error) {
	records, cols, err := readCSV(path)
	if err != nil {
		return 0, err
	}

	count := 0
	err = database.Transaction(l.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT OR REPLACE INTO sites (id, name, latitude, longitude) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare sites insert: %w", err)
		}
		defer stmt.Close()

		for i, rec := range records {
			id, err := strconv.ParseInt(field(rec, cols, "id"), 10, 64)
			if err != nil {
				return fmt.Errorf("sites row %d: invalid id: %w", i+2, err)
			}
			lat, err := strconv.ParseFloat(field(rec, cols, "latitude"), 64)
			if err != nil {
				return fmt.Errorf("sites row %d: invalid latitude: %w", i+2, err)
			}
			lon, err := strconv.ParseFloat(field(rec, cols, "longitude"), 64)
			if err != nil {
				return fmt.Errorf("sites row %d: invalid longitude: %w", i+2, err)
			}
			if _, err := stmt.Exec(id, field(rec, cols, "name"), lat, lon); err != nil {
				return fmt.Errorf("sites row %d: insert failed: %w", i+2, err)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// LoadZones ingests zones.csv (id, name, site_id).
func (l *Loader) LoadZones(path string) (int, error) {
	records, cols, err := readCSV(path)
	if err != nil {
		return 0, err
	}

	count := 0
	err = database.Transaction(l.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT OR REPLACE INTO zones (id, name, site_id) VALUES (?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare zones insert: %w", err)
		}
		defer stmt.Close()

		for i, rec := range records {
			id, err := strconv.ParseInt(field(rec, cols, "id"), 10, 64)
			if err != nil {
				return fmt.Errorf("zones row %d: invalid id: %w", i+2, err)
			}
			siteID, err := strconv.ParseInt(field(rec, cols, "site_id"), 10, 64)
			if err != nil {
				return fmt.Errorf("zones row %d: invalid site_id: %w", i+2, err)
			}
			if _, err := stmt.Exec(id, field(rec, cols, "name"), siteID); err != nil {
				return fmt.Errorf("zones row %d: insert failed: %w", i+2, err)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// LoadObservations ingests the hourly crowd export
// (timestamp, site_id, zone_id, count, density).
func (l *Loader) LoadObservations(path string) (int, error) {
	records, cols, err := readCSV(path)
	if err != nil {
		return 0, err
	}

	count := 0
	err = database.Transaction(l.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT OR REPLACE INTO crowd_observations
			(timestamp, site_id, zone_id, count, density) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare observations insert: %w", err)
		}
		defer stmt.Close()

		for i, rec := range records {
			ts, err := ParseTimestamp(field(rec, cols, "timestamp"))
			if err != nil {
				return fmt.Errorf("crowd row %d: %w", i+2, err)
			}
			siteID, err := strconv.ParseInt(field(rec, cols, "site_id"), 10, 64)
			if err != nil {
				return fmt.Errorf("crowd row %d: invalid site_id: %w", i+2, err)
			}
			zoneID, err := strconv.ParseInt(field(rec, cols, "zone_id"), 10, 64)
			if err != nil {
				return fmt.Errorf("crowd row %d: invalid zone_id: %w", i+2, err)
			}
			visitors, err := strconv.Atoi(field(rec, cols, "count"))
			if err != nil {
				return fmt.Errorf("crowd row %d: invalid count: %w", i+2, err)
			}
			density, err := strconv.ParseFloat(field(rec, cols, "density"), 64)
			if err != nil {
				return fmt.Errorf("crowd row %d: invalid density: %w", i+2, err)
			}
			if _, err := stmt.Exec(ts, siteID, zoneID, visitors, density); err != nil {
				return fmt.Errorf("crowd row %d: insert failed: %w", i+2, err)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ParseTimestamp parses a CSV timestamp into Unix seconds (UTC).
func ParseTimestamp(value string) (int64, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Unix(), nil
		}
	}
	return 0, fmt.Errorf("unrecognized timestamp %q", value)
}

// readCSV reads a headered CSV file and returns its data rows plus a
// lowercase header → column index map.
func readCSV(path string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var records [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		records = append(records, rec)
	}

	return records, cols, nil
}

func field(rec []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(rec) {
		return ""
	}
	return rec[idx]
}
