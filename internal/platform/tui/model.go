package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/core"
	"github.com/vovakirdan/coin-runner/internal/games/runner"
	"github.com/vovakirdan/coin-runner/internal/storage"
)

// Options configures the play screen.
type Options struct {
	Store         *storage.Store  // Run history; nil disables recording
	Watcher       *config.Watcher // Config reloads; nil disables them
	Preset        string          // Difficulty preset applied to reloaded configs
	ScreenshotDir string          // Defaults to ~/.arcade/screenshots
	Logger        *log.Logger
}

// Model is the Bubble Tea model for playing the runner.
type Model struct {
	game       *runner.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	quitting   bool
	recorded   bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *runner.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		opts:       opts,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		logger:     opts.Logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), watchConfigCmd(m.opts.Watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ConfigChangedMsg:
		m.reloadConfig(msg.Path)
		return m, watchConfigCmd(m.opts.Watcher)

	case ConfigErrorMsg:
		m.logger.Warn("config watcher error", "error", msg.Err)
		return m, watchConfigCmd(m.opts.Watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, m.game.State(), &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The renderer scales the
// world to any size, so the run continues undisturbed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.fitScreen()
	return m, nil
}

// fitScreen sizes the playfield to the terminal minus the help footer.
func (m *Model) fitScreen() {
	rows := 1
	if m.help.ShowAll {
		for _, col := range m.keys.Keys().FullHelp() {
			rows = max(rows, len(col))
		}
	}
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-rows, 1))
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.recorded:
		m.recordRun()
		m.recorded = true
	case !m.gameState.GameOver:
		m.recorded = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRun appends the finished run to the history. Best-effort: the
// game continues regardless.
func (m *Model) recordRun() {
	if m.opts.Store == nil {
		return
	}
	snap := m.game.Snapshot()
	if snap.Score <= 0 {
		return
	}

	_, err := m.opts.Store.SaveRun(storage.Run{
		GameID: m.game.ID(),
		Score:  snap.Score,
		Coins:  snap.CoinsCollected,
		Style:  snap.Style,
		Level:  snap.Level,
		Frames: snap.Frame,
		Reason: snap.EndReason.String(),
	})
	if err != nil {
		m.logger.Warn("could not record run", "score", snap.Score, "error", err)
	}
}

// reloadConfig stages an edited config for the next run.
func (m *Model) reloadConfig(path string) {
	cfg, err := config.LoadRunner(path)
	if err != nil {
		m.logger.Warn("ignoring config change", "path", path, "error", err)
		return
	}
	config.ApplyRunnerPreset(&cfg, config.ParsePreset(m.opts.Preset))
	m.game.UseConfig(cfg)
	m.logger.Info("config reloaded, applies on next run", "path", path)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program with the given model.
func Run(game *runner.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
