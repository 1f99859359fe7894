package cmd

import (
	"github.com/cityscope/cityscope/core"
	"github.com/cityscope/cityscope/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Cityscope MCP server",
	Long:  `Launch an MCP server that allows AI agents to rank, explain, and compare cities via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Normal setup; handlers print nothing to stdout themselves,
		// which keeps the stdio protocol channel clean.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		source, err := newMetricSource()
		if err != nil {
			return err
		}
		prefs, err := core.LoadActivePreferences(cfg)
		if err != nil {
			return err
		}
		return mcp.StartMCPServer(rootCtx, cfg, source, prefs)
	},
}
