package list

import (
	"github.com/spf13/cobra"
)

// ListCmd is the base list command for printing the directory.
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List directory entries",
	Long: `List the entries of the directory used by the softphone.

Subcommands:
  contacts  - List contacts with their numbers and status
  calls     - List recent calls
  chats     - List conversations

Examples:
  lp list contacts                   # Contacts of the embedded sample
  lp list calls --json               # Recent calls as JSON
  lp list chats -d team.yaml         # Conversations of a directory file`,
	// No Run function - requires a subcommand
}

var (
	directoryFile string
	jsonOutput    bool
)

func init() {
	ListCmd.PersistentFlags().StringVarP(&directoryFile, "directory", "d", "", "YAML directory file (default: directory.file or the embedded sample)")
	ListCmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	// Add subcommands
	ListCmd.AddCommand(contactsCmd)
	ListCmd.AddCommand(callsCmd)
	ListCmd.AddCommand(chatsCmd)
}
