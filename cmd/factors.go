package cmd

import (
	"github.com/cityscope/cityscope/core"
	"github.com/cityscope/cityscope/internal/contract"
	"github.com/spf13/cobra"
)

// factorsCmd prints the factor reference.
var factorsCmd = &cobra.Command{
	Use:   "factors",
	Short: "List every scoring factor with its unit, domain, and direction.",
	Long: `Print the reference table of every factor the scorers use.

For each factor the table shows its category, measurement unit, the
calibrated domain (the value range mapped onto 0-100), and the scoring
direction: whether more is better, less is better, or the score peaks
at a target value.

Use this to understand what a preference weight actually weighs, and
which raw metric ranges produce good or bad sub-scores.

Examples:
  # Human-readable reference table
  cityscope factors

  # Machine-readable versions
  cityscope factors --output json
  cityscope factors --output csv --output-file factors.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFactors(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list factors", err)
		}
	},
}
