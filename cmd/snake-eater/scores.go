package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-eater/internal/platform/tui"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 scores.

The leaderboard opens in an interactive table when stdout is a
terminal. Use --plain for text output.

Examples:
  snake-eater scores
  snake-eater scores --plain`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as plain text")
}

func runScores(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	scores, _, closeScores := openLeaderboard(logger)
	defer closeScores()

	fd := int(os.Stdout.Fd())
	if flagPlain || !term.IsTerminal(fd) {
		fmt.Fprint(cmd.OutOrStdout(), tui.PlainScores(scores.Entries()))
		return nil
	}

	width := 80
	if w, _, termErr := term.GetSize(fd); termErr == nil {
		width = w
	}
	return tui.RunScoreboard(scores, width)
}
