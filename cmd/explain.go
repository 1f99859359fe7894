package cmd

import (
	"github.com/cityscope/cityscope/core"
	"github.com/cityscope/cityscope/internal/contract"
	"github.com/spf13/cobra"
)

// explainCmd breaks one city's score down to individual factors.
var explainCmd = &cobra.Command{
	Use:   "explain <city-id>",
	Short: "Explain every factor behind one city's score.",
	Long: `Show exactly how one city earned its score, factor by factor.

For each category the breakdown lists every active factor with its raw
value, sub-score, weight share, status, and a one-line explanation of
how the value maps onto the score. Standalone penalties (such as the
population deficit penalty) are shown separately.

Examples:
  # Full breakdown across all categories
  cityscope explain raleigh-nc

  # Just the climate category
  cityscope explain raleigh-nc --category climate

  # Breakdown under your own preferences, as JSON
  cityscope explain denver-co --prefs my-prefs.json --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		source, err := newMetricSource()
		if err != nil {
			contract.LogFatal("Cannot load city data", err)
		}
		if err := core.ExecuteExplain(rootCtx, cfg, source, args[0]); err != nil {
			contract.LogFatal("Cannot explain city", err)
		}
	},
}
