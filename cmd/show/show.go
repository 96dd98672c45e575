package show

import (
	"github.com/spf13/cobra"
)

// ShowCmd is the base show command for displaying information.
var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display information",
	Long: `Display information about the softphone setup.

Subcommands:
  config   - Display the effective configuration
  version  - Display build information

Examples:
  lp show config           # Effective configuration
  lp show config --json    # Same, as JSON`,
	// No Run function - requires a subcommand
}

func init() {
	// Add subcommands
	ShowCmd.AddCommand(configCmd)
	ShowCmd.AddCommand(versionCmd)
}
