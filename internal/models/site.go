package models

// Site represents a tourist site reference row. Loaded once at startup
// and treated as immutable for the process lifetime.
type Site struct {
	ID        int64   `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Zone represents a sub-area of a site tracked independently for crowd
// density. Immutable reference data.
type Zone struct {
	ID     int64  `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	SiteID int64  `json:"site_id" db:"site_id"`
}
