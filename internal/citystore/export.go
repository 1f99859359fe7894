package citystore

import (
	"errors"
	"fmt"

	"github.com/cityscope/cityscope/internal/parquet"
)

// ExecuteRunExport performs the actual export of ranking run data to Parquet files.
func ExecuteRunExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run store is not initialized; set --store-backend")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no ranking run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total ranking runs: %d\n", status.TotalRuns)
	fmt.Printf("Total city score rows: %d\n", status.TotalCitiesRated)

	// Retrieve all ranking runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve ranking runs: %w", err)
	}

	// Retrieve all per-city score rows
	cityScores, err := store.GetAllCityScores()
	if err != nil {
		return fmt.Errorf("failed to retrieve city scores: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetScores := parquet.ConvertCityScoreRecords(cityScores)

	// Write ranking runs to Parquet
	runsFile := outputFile + ".ranking_runs.parquet"
	if err := parquet.WriteRankingRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write ranking runs: %w", err)
	}
	fmt.Printf("Exported %d ranking runs to: %s\n", len(parquetRuns), runsFile)

	// Write city scores to Parquet
	scoresFile := outputFile + ".city_scores.parquet"
	if err := parquet.WriteCityScoresParquet(parquetScores, scoresFile); err != nil {
		return fmt.Errorf("failed to write city scores: %w", err)
	}
	fmt.Printf("Exported %d city score rows to: %s\n", len(parquetScores), scoresFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
