package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/coin-runner/internal/audio"
	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/core"
	"github.com/vovakirdan/coin-runner/internal/games/runner"
	"github.com/vovakirdan/coin-runner/internal/platform/tui"
	"github.com/vovakirdan/coin-runner/internal/storage"
)

// saveAppName names the gdata save directory.
const saveAppName = "coin_runner"

var (
	flagConfig     string
	flagDifficulty string
	flagStore      string
	flagMute       bool
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run.

Controls:
  Space/Up/W - Start, then jump
  X/F        - Throw a fireball (with the flower power-up)
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at level 1, escalates every 1000 frames
  normal - Start at level 3
  hard   - Start at level 6
  fixed  - No escalation

High score storage (--store):
  sqlite - Scores database with run history (default)
  gdata  - Single save file in the user data directory
  none   - Keep the best score for this session only

Examples:
  runner play
  runner play --difficulty hard
  runner play --config ./my-runner.yaml --watch
  runner play --store gdata --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagStore, "store", "sqlite", "High score storage: sqlite, gdata, none")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes (applies on the next run)")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}

	// Fail early on a broken custom config rather than inside the TUI
	if flagConfig != "" {
		if _, err := config.LoadRunner(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger, closeLog, err := openLogger(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (logging disabled)\n", err)
		logger = nil
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Run history lives in the scores database whatever the high score backend
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	scores, err := openHighScores(flagStore, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (best score kept for this session only)\n", err)
		scores = storage.NewMemory(0)
	}

	var cues runner.CuePlayer = audio.Nop{}
	if !flagMute {
		player := audio.New(logger)
		// Init failure leaves the player silent; it is already logged
		_ = player.Init()
		defer player.Close()
		cues = player
	}

	var watcher *config.Watcher
	if flagWatch {
		watcher = openWatcher(logger)
		if watcher != nil {
			defer watcher.Close()
		}
	}

	game := runner.NewWithOptions(runner.Options{
		ConfigPath: flagConfig,
		Preset:     flagDifficulty,
		Audio:      cues,
		Scores:     scores,
		Logger:     logger,
	})

	runErr := tui.Run(game, cfg, tui.Options{
		Store:   store,
		Watcher: watcher,
		Preset:  flagDifficulty,
		Logger:  logger,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openHighScores selects the high score backend.
func openHighScores(kind string, store *storage.Store) (runner.HighScoreStore, error) {
	switch kind {
	case "sqlite":
		if store == nil {
			return nil, fmt.Errorf("scores database unavailable")
		}
		return storage.NewKeeper(store, "runner"), nil
	case "gdata":
		return storage.OpenSaveFile(saveAppName)
	case "none":
		return storage.NewMemory(0), nil
	default:
		return nil, fmt.Errorf("unknown store %q", kind)
	}
}

// openWatcher watches the custom config, or the per-user config file.
func openWatcher(logger *log.Logger) *config.Watcher {
	path := flagConfig
	if path == "" {
		path = config.UserConfigPath()
	}
	if path == "" {
		return nil
	}

	w, err := config.NewWatcher(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", path, err)
		return nil
	}
	if logger != nil {
		logger.Info("watching config", "path", w.Path())
	}
	return w
}
