package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-eater/internal/storage"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "List what the scores database holds",
	Long: `List every key in the scores database with its size and last write.

Examples:
  snake-eater db
  snake-eater db --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runDB,
}

func runDB(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Entries()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintf(out, "%s is empty.\n", flagDBPath)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tBYTES\tUPDATED")
	for _, e := range entries {
		updated := "-"
		if !e.UpdatedAt.IsZero() {
			updated = e.UpdatedAt.Local().Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", e.Key, len(e.Value), updated)
	}
	return tw.Flush()
}
