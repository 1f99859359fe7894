package cmd

import (
	"github.com/cityscope/cityscope/core"
	"github.com/cityscope/cityscope/internal/citystore"
	"github.com/cityscope/cityscope/internal/contract"
	"github.com/spf13/cobra"
)

// rankCmd performs the full catalog ranking.
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank every city against your preference profile.",
	Long: `Score every city in the catalog against a personal preference profile
and rank them from best to worst fit.

Each city receives a 0-100 score per category (climate, cost, demographics,
quality of life, culture, entertainment), combined into a weighted total.
Cities that fail a hard filter (e.g. home price above your maximum) are
excluded from the ranking but can be shown with --all.

When a store backend is configured, every ranking run is recorded for
later export and trend analysis.

Examples:
  # Rank with the built-in default preferences
  cityscope rank

  # Rank with your own preference document
  cityscope rank --prefs my-prefs.json --limit 5

  # Show cities excluded by hard filters too
  cityscope rank --all

  # Export the ranking to CSV
  cityscope rank --output csv --output-file ranking.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		source, err := newMetricSource()
		if err != nil {
			contract.LogFatal("Cannot load city data", err)
		}
		if err := core.ExecuteRank(rootCtx, cfg, source, citystore.Manager); err != nil {
			contract.LogFatal("Cannot run ranking", err)
		}
	},
}
