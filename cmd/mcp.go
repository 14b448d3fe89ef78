package cmd

import (
	"github.com/openclinic/chartgeom/internal/mcpsrv"
	"github.com/openclinic/chartgeom/schema"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the chartgeom MCP server",
	Long:  `Launch an MCP server that allows AI agents to compute chart geometry via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Suppress the normal header logs when running in MCP mode
		// to avoid polluting stdio which is used for the protocol.
		return sharedSetup(rootCtx, schema.LineKind, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcpsrv.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
