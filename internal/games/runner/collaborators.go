package runner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coin-runner/internal/core"
)

// CuePlayer plays sound cues. Calls are fire-and-forget: implementations
// must not block the frame and must swallow their own failures.
type CuePlayer interface {
	PlayCue(cue core.Cue)
}

// HighScoreStore persists the best finalized score. The game loads it when
// a session starts and saves it when a session ends with a new best.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// Options configures a Game. Zero values select silent audio, an
// in-memory high score and a discarding logger.
type Options struct {
	ConfigPath string // Custom YAML path; empty uses the default search order
	Preset     string // easy, normal, hard, fixed or empty
	Audio      CuePlayer
	Scores     HighScoreStore
	Logger     *log.Logger
}

type silentCues struct{}

func (silentCues) PlayCue(core.Cue) {}

// volatileScores keeps the high score for the lifetime of the process.
type volatileScores struct {
	best int
}

func (v *volatileScores) LoadHighScore() (int, error) {
	return v.best, nil
}

func (v *volatileScores) SaveHighScore(score int) error {
	v.best = max(v.best, score)
	return nil
}

func (o Options) withDefaults() Options {
	if o.Audio == nil {
		o.Audio = silentCues{}
	}
	if o.Scores == nil {
		o.Scores = &volatileScores{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}
