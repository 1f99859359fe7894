// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/cityscope/cityscope/schema"
)

// MetricSource defines where city metric snapshots come from. This
// allows the scoring pipeline to be tested without touching the bundled
// dataset or a database.
type MetricSource interface {
	// Cities returns every city snapshot the source knows about.
	Cities(ctx context.Context) ([]schema.CityMetrics, error)

	// City returns one snapshot by its stable ID.
	City(ctx context.Context, id string) (*schema.CityMetrics, error)
}

// StoreManager defines the interface for managing persistence stores.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetSnapshotStore() SnapshotStore
	GetRunStore() RunStore
}

// SnapshotStore defines the interface for persisted city snapshots.
type SnapshotStore interface {
	Get(id string) ([]byte, int, int64, error)
	Set(id string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.SnapshotStatus, error)
	Close() error
}

// RunStore defines the interface for tracking ranking runs and their
// per-city results.
type RunStore interface {
	// BeginRun creates a new ranking run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data
	EndRun(runID int64, endTime time.Time, totalCities int) error

	// RecordCityScore stores the final scores for one city
	RecordCityScore(runID int64, city schema.RankedCity) error

	// GetStatus returns status information about the run store
	GetStatus() (schema.RunStatus, error)

	// GetAllRuns retrieves all ranking runs for export
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllCityScores retrieves all per-city score rows for export
	GetAllCityScores() ([]schema.CityScoreRecord, error)

	// Close closes the underlying connection
	Close() error
}
