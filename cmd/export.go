package cmd

import (
	"github.com/cityscope/cityscope/internal/citystore"
	"github.com/cityscope/cityscope/internal/contract"
	"github.com/spf13/cobra"
)

// exportCmd exports ranking run history to Parquet files.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export ranking run history to Parquet for BI tools and analytics",
	Long: `Export all stored ranking run data to Parquet format for analytics tools.

Exports two datasets:
- Ranking runs - metadata about each ranking execution
- City scores - per-city totals and category scores per run

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all data
  cityscope export --output-file cityscope-data

  # Use with DuckDB for analysis
  cityscope export --output-file data
  duckdb -c "SELECT * FROM read_parquet('data.city_scores.parquet') LIMIT 10"`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := citystore.ExecuteRunExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run data", err)
		}
	},
}
