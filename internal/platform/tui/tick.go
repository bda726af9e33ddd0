// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping, config reloads and the
// scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coin-runner/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ConfigChangedMsg reports that the watched config file was saved.
type ConfigChangedMsg struct {
	Path string
}

// ConfigErrorMsg carries a watcher failure.
type ConfigErrorMsg struct {
	Err error
}

// watchConfigCmd waits for the next watcher event. It returns nil once
// the watcher is closed, which ends the wait loop.
func watchConfigCmd(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return ConfigChangedMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return ConfigErrorMsg{Err: err}
		}
	}
}
