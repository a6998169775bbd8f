package repository

import (
	"database/sql"
	"fmt"

	"github.com/touristiq/crowd-backend-go/internal/models"
)

// SiteRepository handles database operations for the site and zone
// reference tables.
type SiteRepository struct {
	db *sql.DB
}

// NewSiteRepository creates a new site repository
func NewSiteRepository(db *sql.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

// SiteByID returns a site by id, or nil when no such site exists.
func (r *SiteRepository) SiteByID(id int64) (*models.Site, error) {
	var site models.Site
	err := r.db.QueryRow(`SELECT id, name, latitude, longitude FROM sites WHERE id = ?`, id).
		Scan(&site.ID, &site.Name, &site.Latitude, &site.Longitude)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query site %d: %w", id, err)
	}
	return &site, nil
}

// ZoneByID returns a zone by id, or nil when no such zone exists.
func (r *SiteRepository) ZoneByID(id int64) (*models.Zone, error) {
	var zone models.Zone
	err := r.db.QueryRow(`SELECT id, name, site_id FROM zones WHERE id = ?`, id).
		Scan(&zone.ID, &zone.Name, &zone.SiteID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query zone %d: %w", id, err)
	}
	return &zone, nil
}

// AllSites returns every site reference row.
func (r *SiteRepository) AllSites() ([]models.Site, error) {
	rows, err := r.db.Query(`SELECT id, name, latitude, longitude FROM sites ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sites: %w", err)
	}
	defer rows.Close()

	var sites []models.Site
	for rows.Next() {
		var site models.Site
		if err := rows.Scan(&site.ID, &site.Name, &site.Latitude, &site.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, site)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sites: %w", err)
	}

	return sites, nil
}
