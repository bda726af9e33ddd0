// runner is a coin-collecting endless runner for the terminal.
//
// Usage:
//
//	runner play              - Play the game
//	runner scores            - Show the run history
//	runner list              - List registered games
//	runner config            - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--log <path>    - Set log file (default: ~/.arcade/runner.log)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/coin-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Coin Runner - an endless runner in your terminal",
	Long: `Coin Runner is a terminal endless runner: jump over obstacles,
collect coins for combos and grab power-ups until a hit ends the run.

Available commands:
  play     - Play the game
  scores   - View the run history and best score
  list     - Show registered games
  config   - Print the default configuration

Examples:
  runner play
  runner play --difficulty hard
  runner scores --tui
  runner config > ~/.arcade/configs/runner.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.arcade/runner.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogger writes to the log file, since the terminal belongs to the
// game. The returned close function is never nil.
func openLogger(path string) (*log.Logger, func(), error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, func() {}, fmt.Errorf("log: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("log: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, func() {}, fmt.Errorf("log: cannot open %s: %w", path, err)
	}

	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		Prefix:          "runner",
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}
