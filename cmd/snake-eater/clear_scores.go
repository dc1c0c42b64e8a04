package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-eater/internal/leaderboard"
)

var (
	flagYes   bool
	flagPurge bool
)

var clearScoresCmd = &cobra.Command{
	Use:   "clear-scores",
	Short: "Erase the leaderboard",
	Long: `Remove every saved score.

Requires --yes so scores are not erased by accident. By default an
empty list is saved; --purge deletes the key from the database.

Examples:
  snake-eater clear-scores --yes
  snake-eater clear-scores --yes --purge`,
	Args: cobra.NoArgs,
	RunE: runClearScores,
}

func init() {
	clearScoresCmd.Flags().BoolVar(&flagYes, "yes", false, "Confirm erasing all scores")
	clearScoresCmd.Flags().BoolVar(&flagPurge, "purge", false, "Delete the stored key instead of saving an empty list")
}

func runClearScores(cmd *cobra.Command, args []string) error {
	if !flagYes {
		return fmt.Errorf("refusing to erase scores without --yes")
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	scores, store, closeScores := openLeaderboard(logger)
	defer closeScores()

	n := len(scores.Entries())
	if flagPurge {
		if store == nil {
			return fmt.Errorf("scores database %s is not available", flagDBPath)
		}
		if err := store.Delete(leaderboard.StorageKey); err != nil {
			return err
		}
		scores.Reload()
	} else {
		scores.Clear()
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d scores.\n", n)
	return nil
}
