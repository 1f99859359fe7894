package cmd

import (
	"github.com/cityscope/cityscope/core"
	"github.com/cityscope/cityscope/internal/contract"
	"github.com/spf13/cobra"
)

// compareCmd puts two cities side by side under the same preferences.
var compareCmd = &cobra.Command{
	Use:   "compare <city-a> <city-b>",
	Short: "Compare two cities side by side under the same preferences.",
	Long: `Compare two cities category by category under one preference profile.

For each category the comparison shows both scores, the delta, and which
city has the edge, plus a total row for the overall weighted scores.
Cities excluded by a hard filter are still compared, with a note naming
the filter that excluded them.

Examples:
  # Head-to-head with default preferences
  cityscope compare raleigh-nc austin-tx

  # Under your own preferences, as CSV
  cityscope compare denver-co boise-id --prefs my-prefs.json --output csv`,
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		source, err := newMetricSource()
		if err != nil {
			contract.LogFatal("Cannot load city data", err)
		}
		if err := core.ExecuteCompare(rootCtx, cfg, source, args[0], args[1]); err != nil {
			contract.LogFatal("Cannot compare cities", err)
		}
	},
}
