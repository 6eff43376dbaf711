package cli

import (
	"fmt"
	"github.com/rossdargan/layz-spa/internal/configflow"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
	"text/tabwriter"
)

var (
	entriesCmd = cobra.Command{
		Use:   "entries",
		Short: "List the configured spas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listEntries(viper.GetViper(), cmd.OutOrStdout())
		},
	}
	removeCmd = cobra.Command{
		Use:   "remove <did>",
		Short: "Remove a configured spa",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return removeEntry(viper.GetViper(), args[0], cmd.OutOrStdout())
		},
	}
)

func listEntries(v *viper.Viper, out io.Writer) error {
	entries, err := configflow.NewStore(v.GetString("entries.path")).Entries()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE")
	for _, entry := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", entry.ID, entry.Title)
	}
	return w.Flush()
}

func removeEntry(v *viper.Viper, id string, out io.Writer) error {
	removed, err := configflow.NewStore(v.GetString("entries.path")).Remove(id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("entry not found: %s", id)
	}
	_, err = fmt.Fprintf(out, "removed %s\n", id)
	return err
}
