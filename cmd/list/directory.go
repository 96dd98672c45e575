package list

import (
	"fmt"
	"io"
	"strconv"

	"github.com/endorses/lippyphone/internal/pkg/cmdutil"
	"github.com/endorses/lippyphone/internal/pkg/directory"
	"github.com/endorses/lippyphone/internal/pkg/output"
	"github.com/spf13/cobra"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "List contacts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, writeContacts)
	},
}

var callsCmd = &cobra.Command{
	Use:     "calls",
	Aliases: []string{"recents"},
	Short:   "List recent calls",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, writeCalls)
	},
}

var chatsCmd = &cobra.Command{
	Use:     "chats",
	Aliases: []string{"conversations"},
	Short:   "List conversations",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, writeChats)
	},
}

type writerFunc func(w io.Writer, d *directory.Directory, asJSON bool) error

func runList(cmd *cobra.Command, write writerFunc) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	d, err := cmdutil.LoadDirectory(directoryFile)
	if err != nil {
		return err
	}
	return write(cmd.OutOrStdout(), d, asJSON)
}

func writeContacts(w io.Writer, d *directory.Directory, asJSON bool) error {
	contacts := d.Contacts()
	if asJSON {
		return output.WriteJSON(w, contacts, output.IsTTY())
	}
	if len(contacts) == 0 {
		_, err := fmt.Fprintln(w, "No contacts.")
		return err
	}

	t := output.NewTable(w, "ID", "NAME", "PHONE", "STATUS", "TITLE", "FAV")
	for _, c := range contacts {
		fav := ""
		if c.Favorite {
			fav = "★"
		}
		t.Row(c.ID, c.Name, c.Phone, string(c.Status), c.Title, fav)
	}
	return t.Flush()
}

func writeCalls(w io.Writer, d *directory.Directory, asJSON bool) error {
	recents := d.Recents()
	if asJSON {
		return output.WriteJSON(w, recents, output.IsTTY())
	}
	if len(recents) == 0 {
		_, err := fmt.Fprintln(w, "No recent calls.")
		return err
	}

	t := output.NewTable(w, "TYPE", "NAME", "NUMBER", "DURATION", "WHEN")
	for _, r := range recents {
		t.Row(string(r.Type), r.Name, r.Number, r.Duration, r.At.Local().Format("2006-01-02 15:04"))
	}
	return t.Flush()
}

func writeChats(w io.Writer, d *directory.Directory, asJSON bool) error {
	convs := d.Conversations()
	if asJSON {
		return output.WriteJSON(w, convs, output.IsTTY())
	}
	if len(convs) == 0 {
		_, err := fmt.Fprintln(w, "No conversations.")
		return err
	}

	t := output.NewTable(w, "ID", "NAME", "UNREAD", "LAST MESSAGE")
	for _, c := range convs {
		last := ""
		if m, ok := c.LastMessage(); ok {
			last = truncate(m.Text, 48)
		}
		t.Row(c.ID, c.Name, strconv.Itoa(c.Unread), last)
	}
	return t.Flush()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
