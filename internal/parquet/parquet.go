// Package parquet provides data structures and functions for exporting
// ranking run data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/cityscope/cityscope/schema"
	"github.com/parquet-go/parquet-go"
)

// RankingRun represents a single ranking run with metadata.
// This struct maps to the cityscope_ranking_runs database table.
type RankingRun struct {
	// RunID is the unique identifier for this ranking run
	RunID int64 `parquet:"run_id,snappy"`

	// StartedAt is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartedAt time.Time `parquet:"started_at,snappy"`

	// EndedAt is when the run completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndedAt *time.Time `parquet:"ended_at,optional,snappy"`

	// TotalCities is the number of cities scored in this run
	TotalCities int32 `parquet:"total_cities,snappy"`

	// ConfigParams contains the JSON-encoded run parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// CityScore represents the final scores for a single city in a run.
// This struct maps to the cityscope_city_scores database table.
type CityScore struct {
	// RunID references the parent ranking run
	RunID int64 `parquet:"run_id,snappy"`

	// CityID is the stable city identifier, e.g. "raleigh-nc"
	CityID string `parquet:"city_id,snappy"`

	// CityName is the display name of the city
	CityName string `parquet:"city_name,snappy"`

	// State is the two-letter state code
	State string `parquet:"state,snappy"`

	// Total is the overall weighted score (0-100)
	Total float64 `parquet:"total_score,snappy"`

	// Per-category scores (0-100)
	Climate       float64 `parquet:"score_climate,snappy"`
	Cost          float64 `parquet:"score_cost,snappy"`
	Demographics  float64 `parquet:"score_demographics,snappy"`
	QualityOfLife float64 `parquet:"score_quality_of_life,snappy"`
	Culture       float64 `parquet:"score_culture,snappy"`
	Entertainment float64 `parquet:"score_entertainment,snappy"`

	// Included reports whether the city passed all hard filters
	Included bool `parquet:"included,snappy"`

	// ExclusionReason names the filter the city failed (nullable)
	ExclusionReason *string `parquet:"exclusion_reason,optional,snappy"`

	// CreatedAt is when this score row was recorded
	CreatedAt time.Time `parquet:"created_at,snappy"`
}

// WriteRankingRunsParquet writes a slice of RankingRun structs to a Parquet file.
func WriteRankingRunsParquet(data []RankingRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the RankingRun struct tags
	writer := parquet.NewGenericWriter[RankingRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteCityScoresParquet writes a slice of CityScore structs to a Parquet file.
func WriteCityScoresParquet(data []CityScore, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the CityScore struct tags
	writer := parquet.NewGenericWriter[CityScore](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts schema.RunRecord to RankingRun for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []RankingRun {
	result := make([]RankingRun, len(records))
	for i, record := range records {
		result[i] = RankingRun{
			RunID:        record.RunID,
			StartedAt:    record.StartedAt,
			EndedAt:      record.EndedAt,
			TotalCities:  int32(record.TotalCities),
			ConfigParams: record.ConfigParams,
		}
	}
	return result
}

// ConvertCityScoreRecords converts schema.CityScoreRecord to CityScore for Parquet export.
func ConvertCityScoreRecords(records []schema.CityScoreRecord) []CityScore {
	result := make([]CityScore, len(records))
	for i, record := range records {
		result[i] = CityScore{
			RunID:           record.RunID,
			CityID:          record.CityID,
			CityName:        record.CityName,
			State:           record.State,
			Total:           record.Total,
			Climate:         record.Climate,
			Cost:            record.Cost,
			Demographics:    record.Demographics,
			QualityOfLife:   record.QualityOfLife,
			Culture:         record.Culture,
			Entertainment:   record.Entertainment,
			Included:        record.Included,
			ExclusionReason: record.ExclusionReason,
			CreatedAt:       record.CreatedAt,
		}
	}
	return result
}
