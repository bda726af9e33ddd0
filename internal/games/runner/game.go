// Package runner implements a coin-collecting endless runner.
// The player jumps over scrolling obstacles, picks up coins and power-ups,
// and keeps going until a hit ends the run.
package runner

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/core"
	"github.com/vovakirdan/coin-runner/internal/registry"
)

// Mode is the session state.
type Mode int

const (
	ModeIdle    Mode = iota // Title screen, waiting for start
	ModeRunning             // Simulation advancing
	ModeEnded               // Run over, waiting for restart
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeRunning:
		return "running"
	case ModeEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndReason records why a run ended.
type EndReason int

const (
	EndNone EndReason = iota
	EndCollision
	EndFall
)

// String returns the reason name.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndCollision:
		return "collision"
	case EndFall:
		return "fall"
	default:
		return "unknown"
	}
}

// RunStats are counters kept for the run history.
type RunStats struct {
	ObstaclesDodged int
	NearMisses      int
	ShieldBlocks    int
	FireballsFired  int
	FireballHits    int
	PowerUps        int
	EntitiesDropped int // Malformed entities removed during updates
}

// Game implements the runner session. One Game owns every pool, timer and
// flag; nothing is shared with the renderer except through Snapshot.
type Game struct {
	opts      Options
	cfg       config.RunnerConfig
	pending   *config.RunnerConfig // Reloaded config waiting for the next session
	runtime   core.RuntimeConfig
	rng       *rand.Rand
	scheduler *config.Scheduler
	logger    *log.Logger

	mode      Mode
	paused    bool
	endReason EndReason

	player    Player
	obstacles pool[Obstacle]
	coins     pool[Coin]
	powerUps  pool[PowerUp]
	particles pool[Particle]
	fireballs pool[Fireball]
	mods      Modifiers

	frame         int           // Running frames this session
	elapsed       time.Duration // Running time this session, pauses excluded
	obstacleTimer int
	coinTimer     int

	score          int
	coinsCollected int
	style          int
	highScore      int
	stats          RunStats
}

// New creates a runner with default collaborators.
func New() *Game {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a runner with the given collaborators.
func NewWithOptions(opts Options) *Game {
	opts = opts.withDefaults()
	return &Game{
		opts:   opts,
		logger: opts.Logger,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Coin Runner"
}

// UseConfig stages a configuration for the next session. A run in
// progress keeps the tuning it started with.
func (g *Game) UseConfig(cfg config.RunnerConfig) {
	g.pending = &cfg
}

// Reset loads configuration and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.scheduler = config.NewScheduler(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.resetWorld()
	g.mode = ModeIdle
	g.loadHighScore()
}

// loadConfig resolves the tuning for a session: a staged reload first,
// then the configured file, then built-in defaults.
func (g *Game) loadConfig() config.RunnerConfig {
	if g.pending != nil {
		cfg := *g.pending
		g.pending = nil
		return cfg
	}

	cfg, err := config.LoadRunner(g.opts.ConfigPath)
	if err != nil {
		g.logger.Warn("using default config", "error", err)
		cfg = config.DefaultRunnerConfig()
	}
	config.ApplyRunnerPreset(&cfg, config.ParsePreset(g.opts.Preset))
	return cfg
}

// resetWorld puts every pool, modifier, timer and counter back to its
// initial value.
func (g *Game) resetWorld() {
	pc := g.cfg.Player
	g.player = Player{
		X:      pc.X,
		Y:      pc.GroundY,
		Width:  pc.Width,
		Height: pc.Height,
	}

	g.obstacles.reset(g.cfg.Obstacles.Cap)
	g.coins.reset(g.cfg.Coins.Cap)
	g.powerUps.reset(g.cfg.PowerUps.Cap)
	g.particles.reset(g.cfg.Particles.Cap)
	g.fireballs.reset(g.cfg.Projectiles.Cap)
	g.mods = NewModifiers()
	g.scheduler.Reset()

	g.paused = false
	g.endReason = EndNone
	g.frame = 0
	g.elapsed = 0
	g.obstacleTimer = 0
	g.coinTimer = 0
	g.score = 0
	g.coinsCollected = 0
	g.style = 0
	g.stats = RunStats{}
}

func (g *Game) loadHighScore() {
	best, err := g.opts.Scores.LoadHighScore()
	if err != nil {
		g.logger.Warn("could not load high score", "error", err)
		return
	}
	g.highScore = max(g.highScore, best)
}

// Step advances the game by one tick of the runtime's tick rate.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.Update(in, g.runtime.FrameDelta())
	return core.StepResult{State: g.State()}
}

// Update consumes one frame of input and, while running, advances the
// simulation by dt. Order within a running frame: input, player physics,
// difficulty, pools (spawn, move, expire), collisions, modifier timers,
// score.
func (g *Game) Update(in core.InputFrame, dt time.Duration) {
	switch g.mode {
	case ModeIdle:
		if in.Has(core.ActionStart) {
			g.start()
		}
		return
	case ModeEnded:
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	g.frame++
	g.elapsed += dt

	g.handleInput(in)
	g.updatePlayer()
	g.scheduler.Advance(g.frame)
	g.spawn()
	g.advance()
	g.prune()
	g.resolveCollisions()
	g.mods.Tick(g.frame)

	if g.endReason == EndNone && g.player.Y > g.cfg.World.Height {
		g.endReason = EndFall
	}

	g.recomputeScore()
	if g.endReason != EndNone {
		g.finish()
	}
}

func (g *Game) start() {
	g.mode = ModeRunning
	g.logger.Info("run started", "level", g.scheduler.Level(), "best", g.highScore)
}

// restart begins a new session straight into the running state.
func (g *Game) restart() {
	if g.pending != nil {
		g.cfg = g.loadConfig()
		g.scheduler = config.NewScheduler(g.cfg.Difficulty)
	}
	g.resetWorld()
	g.loadHighScore()
	g.mode = ModeRunning
	g.logger.Info("run restarted", "best", g.highScore)
}

// finish enters the ended state and persists a new best.
func (g *Game) finish() {
	g.mode = ModeEnded
	g.opts.Audio.PlayCue(core.CueFall)
	g.logger.Info("run ended",
		"reason", g.endReason,
		"score", g.score,
		"coins", g.coinsCollected,
		"style", g.style,
		"frames", g.frame,
	)

	if g.score <= g.highScore {
		return
	}
	g.highScore = g.score
	if err := g.opts.Scores.SaveHighScore(g.score); err != nil {
		g.logger.Warn("could not save high score", "score", g.score, "error", err)
		return
	}
	g.logger.Info("new high score", "score", g.score)
}

// handleInput applies jump and fire presses for this frame.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionJump) && !g.player.Jumping {
		g.player.VY = g.cfg.Physics.JumpImpulse
		g.player.Jumping = true
		g.opts.Audio.PlayCue(core.CueJump)
	}

	if in.Has(core.ActionFire) && g.mods.CanFire() {
		g.fireFireball()
	}
}

// updatePlayer integrates gravity and derives the effective height.
func (g *Game) updatePlayer() {
	pc := g.cfg.Player
	p := &g.player

	p.VY += g.cfg.Physics.Gravity
	p.Y += p.VY
	if p.Y > pc.GroundY {
		p.Y = pc.GroundY
		p.VY = 0
		p.Jumping = false
	}

	p.Height = pc.Height
	if p.Jumping {
		p.Height = pc.AirborneHeight
	}
	if g.mods.SizeBoost {
		p.Height *= g.cfg.PowerUps.SizeBoostFactor
	}
}

// recomputeScore derives the score from elapsed time and coins.
func (g *Game) recomputeScore() {
	perPoint := time.Duration(g.cfg.Scoring.MillisPerPoint) * time.Millisecond
	g.score = int(g.elapsed/perPoint) + g.coinsCollected*g.cfg.Scoring.CoinPoints
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Idle:     g.mode == ModeIdle,
		GameOver: g.mode == ModeEnded,
		Paused:   g.paused,
	}
}

// Mode returns the session state.
func (g *Game) Mode() Mode {
	return g.mode
}

// Register the game with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
