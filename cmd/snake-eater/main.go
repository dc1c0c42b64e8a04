// snake-eater is a grid snake game for the terminal.
//
// Usage:
//
//	snake-eater play           - Play a round (the default command)
//	snake-eater scores         - Show the leaderboard
//	snake-eater clear-scores   - Erase the leaderboard
//	snake-eater config         - Print the effective configuration
//	snake-eater db             - List what the scores database holds
//
// Global flags:
//
//	--fps <rate>       - Set frame rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.snake-eater/snake-eater.db)
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-eater/internal/core"
	"github.com/vovakirdan/snake-eater/internal/leaderboard"
	"github.com/vovakirdan/snake-eater/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake-eater",
	Short: "Snake Eater - the snake game for your terminal",
	Long: `Snake Eater is a grid snake game played in the terminal.

Steer the snake to the food, grow longer and faster, and get your
name on the top ten leaderboard. The board wraps at every edge; the
only way to lose is to bite yourself.

Available commands:
  play          - Play a round (default)
  scores        - View the leaderboard
  clear-scores  - Erase the leaderboard
  config        - Print the effective configuration
  db            - List what the scores database holds

Examples:
  snake-eater
  snake-eater play --difficulty hard
  snake-eater scores --plain`,
	RunE: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake-eater/snake-eater.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(clearScoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(dbCmd)
}

// newLogger writes to --log-file when set and to fallback otherwise.
// The returned close function is always safe to call.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close, logs are already flushed
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake-eater",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// openLeaderboard loads the leaderboard from the scores database. When the
// database cannot be opened the leaderboard lives in memory for this run
// and the returned store is nil.
func openLeaderboard(logger *log.Logger) (*leaderboard.Leaderboard, *storage.Store, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not persist", "path", flagDBPath, "error", err)
		return leaderboard.New(leaderboard.NewMemoryStore(), core.SystemClock{}, logger), nil, func() {}
	}

	closeFn := func() {
		if err := store.Close(); err != nil {
			logger.Error("closing scores database", "error", err)
		}
	}
	return leaderboard.New(store, core.SystemClock{}, logger), store, closeFn
}
