package service

import (
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/touristiq/crowd-backend-go/internal/models"
	"github.com/touristiq/crowd-backend-go/internal/repository"
)

// Fixed staff headcount used by the utilization proxy.
const totalStaff = 10

// KPIService derives the point-in-time dashboard summary from the
// latest snapshot. Average stay, foreign share and staff utilization
// are deterministic proxies over the visitor count; the raw data does
// not carry those metrics.
type KPIService struct {
	observations *repository.ObservationRepository
}

// NewKPIService creates a new KPI service
func NewKPIService(observations *repository.ObservationRepository) *KPIService {
	return &KPIService{observations: observations}
}

// Kpis returns the KPI snapshot for one site at the global latest
// timestamp. Returns ErrNoData when the site has no rows there.
func (s *KPIService) Kpis(siteID int64) (*models.KpiSnapshot, error) {
	latest, err := s.observations.LatestTimestamp()
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoData
		}
		return nil, err
	}

	snapshot, err := s.observations.SnapshotAt(siteID, latest)
	if err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, ErrNoData
	}

	visitors := 0
	for _, obs := range snapshot {
		visitors += obs.Count
	}

	avgStay := math.Round((30+float64(visitors%25))*10) / 10
	foreignPct := math.Round(float64(visitors%20)) / 100

	utilization := int(math.Round(float64(visitors) / float64(totalStaff*staffCapacityPerPerson) * 100))
	if utilization > 100 {
		utilization = 100
	}

	return &models.KpiSnapshot{
		CurrentVisitors:     visitors,
		AverageStayMin:      avgStay,
		ForeignVisitorsPct:  foreignPct,
		StaffUtilizationPct: utilization,
		LastUpdated:         time.Unix(latest, 0).UTC().Format(time.RFC3339),
	}, nil
}
