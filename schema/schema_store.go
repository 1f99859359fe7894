package schema

import "time"

// SnapshotStatus reports the state of the city snapshot store.
type SnapshotStatus struct {
	Backend        StoreBackend `json:"backend"`
	Connected      bool         `json:"connected"`
	TotalCities    int          `json:"total_cities"`
	NewestSnapshot time.Time    `json:"newest_snapshot"`
	OldestSnapshot time.Time    `json:"oldest_snapshot"`
}

// RunStatus reports the state of the ranking-run store.
type RunStatus struct {
	Backend          StoreBackend `json:"backend"`
	Connected        bool         `json:"connected"`
	TotalRuns        int          `json:"total_runs"`
	LastRunID        int64        `json:"last_run_id"`
	LastRunTime      time.Time    `json:"last_run_time"`
	TotalCitiesRated int          `json:"total_cities_rated"`
}

// RunRecord is a row from the ranking_runs table.
type RunRecord struct {
	RunID        int64
	StartedAt    time.Time
	EndedAt      *time.Time
	TotalCities  int
	ConfigParams *string // JSON-encoded run parameters
}

// CityScoreRecord is a row from the run_city_scores table.
type CityScoreRecord struct {
	RunID           int64
	CityID          string
	CityName        string
	State           string
	Total           float64
	Climate         float64
	Cost            float64
	Demographics    float64
	QualityOfLife   float64
	Culture         float64
	Entertainment   float64
	Included        bool
	ExclusionReason *string
	CreatedAt       time.Time
}
