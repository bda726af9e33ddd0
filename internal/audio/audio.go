// Package audio synthesizes the runner's sound cues with beep.
package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/coin-runner/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a sine blip that decays exponentially from Amp to near silence.
type Tone struct {
	Freq     float64 // Hz
	Amp      float64 // Peak gain, 0..1
	Duration time.Duration
}

// Tones maps each cue to its sound.
var Tones = map[core.Cue]Tone{
	core.CueJump:     {Freq: 400, Amp: 0.3, Duration: 200 * time.Millisecond},
	core.CueCoin:     {Freq: 600, Amp: 0.3, Duration: 200 * time.Millisecond},
	core.CueFireball: {Freq: 800, Amp: 0.2, Duration: 100 * time.Millisecond},
	core.CueFall:     {Freq: 200, Amp: 0.5, Duration: 300 * time.Millisecond},
}

// floorGain is where the decay envelope ends.
const floorGain = 0.01

// NewToneStreamer returns a finite streamer playing t at rate.
func NewToneStreamer(t Tone, rate beep.SampleRate) beep.Streamer {
	total := rate.N(t.Duration)
	if total <= 0 {
		return beep.Silence(0)
	}

	// Per-sample factor taking Amp down to floorGain over the tone
	decay := 1.0
	if t.Amp > floorGain {
		decay = math.Pow(floorGain/t.Amp, 1/float64(total))
	}
	step := t.Freq / float64(rate)

	phase, gain := 0.0, t.Amp
	osc := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := gain * math.Sin(2*math.Pi*phase)
			samples[i][0] = v
			samples[i][1] = v
			phase += step
			phase -= math.Floor(phase)
			gain *= decay
		}
		return len(samples), true
	})
	return beep.Take(total, osc)
}

// Player plays cues through the system speaker. The zero value is not
// usable; create one with New.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
	failed      bool
}

// New creates a player. Call Init before the first cue.
func New(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker. On failure the player stays silent and the
// error is returned for the caller to report.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		p.failed = true
		p.logger.Warn("audio disabled", "error", err)
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// PlayCue queues the tone for cue and returns immediately.
func (p *Player) PlayCue(cue core.Cue) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("audio cue failed", "cue", cue, "panic", r)
		}
	}()

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	tone, ok := Tones[cue]
	if !ok {
		p.logger.Warn("unknown audio cue", "cue", cue)
		return
	}

	speaker.Lock()
	p.mixer.Add(NewToneStreamer(tone, sampleRate))
	speaker.Unlock()
}

// Close silences pending cues and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Nop discards every cue. Used for --mute and headless runs.
type Nop struct{}

// PlayCue does nothing.
func (Nop) PlayCue(core.Cue) {}
