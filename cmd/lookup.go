package cmd

import (
	"fmt"

	"github.com/endorses/lippyphone/internal/pkg/cmdutil"
	"github.com/endorses/lippyphone/internal/pkg/output"
	"github.com/endorses/lippyphone/internal/pkg/phonematcher"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <number>",
	Short: "Identify the contact behind a phone number",
	Long: `Resolve a phone number to a directory contact the way caller ID does
in the softphone. Formatting and country prefixes are ignored; the number
matches when its digits end with a contact's number.

Examples:
  lp lookup "+1 (555) 123-4567"
  lp lookup 0015551234567 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

var (
	lookupDirectory string
	lookupJSON      bool
)

// lookupResult is the JSON form of a lookup
type lookupResult struct {
	Number     string `json:"number"`
	Normalized string `json:"normalized"`
	Found      bool   `json:"found"`
	ContactID  string `json:"contact_id,omitempty"`
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

func runLookup(cmd *cobra.Command, args []string) error {
	d, err := cmdutil.LoadDirectory(lookupDirectory)
	if err != nil {
		return err
	}

	res := lookupResult{
		Number:     args[0],
		Normalized: phonematcher.NormalizeToDigits(args[0]),
	}
	if c, ok := d.Lookup(args[0]); ok {
		res.Found = true
		res.ContactID = c.ID
		res.Name = c.Name
		res.Phone = c.Phone
	}

	w := cmd.OutOrStdout()
	if lookupJSON {
		return output.WriteJSON(w, res, output.IsTTY())
	}
	if !res.Found {
		_, err := fmt.Fprintf(w, "%s: no matching contact\n", res.Number)
		return err
	}
	_, err = fmt.Fprintf(w, "%s: %s (%s, id %s)\n", res.Number, res.Name, res.Phone, res.ContactID)
	return err
}

func init() {
	lookupCmd.Flags().StringVarP(&lookupDirectory, "directory", "d", "", "YAML directory file (default: directory.file or the embedded sample)")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "Output in JSON format")
}
