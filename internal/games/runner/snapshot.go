package runner

import "time"

// Snapshot is a read-only copy of the session taken after an update.
// It shares no memory with the Game, so a renderer may hold it while the
// simulation moves on.
type Snapshot struct {
	Mode      Mode
	Paused    bool
	EndReason EndReason

	Frame   int
	Elapsed time.Duration

	WorldW, WorldH float64
	GroundY        float64 // Top of the ground strip

	Player    Player
	Obstacles []Obstacle
	Coins     []Coin
	PowerUps  []PowerUp
	Particles []Particle
	Fireballs []Fireball

	Modifiers       Modifiers
	ActiveRemaining int

	Score          int
	CoinsCollected int
	Style          int
	HighScore      int
	Level          int
	SpeedFactor    float64
	Stats          RunStats
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Mode:      g.mode,
		Paused:    g.paused,
		EndReason: g.endReason,

		Frame:   g.frame,
		Elapsed: g.elapsed,

		WorldW:  g.cfg.World.Width,
		WorldH:  g.cfg.World.Height,
		GroundY: g.cfg.Player.GroundY + g.cfg.Player.Height,

		Player:    g.player,
		Obstacles: g.obstacles.snapshot(),
		Coins:     g.coins.snapshot(),
		PowerUps:  g.powerUps.snapshot(),
		Particles: g.particles.snapshot(),
		Fireballs: g.fireballs.snapshot(),

		Modifiers:       g.mods,
		ActiveRemaining: g.mods.ActiveRemaining(g.frame),

		Score:          g.score,
		CoinsCollected: g.coinsCollected,
		Style:          g.style,
		HighScore:      g.highScore,
		Stats:          g.stats,
	}
	if g.scheduler != nil {
		s.Level = g.scheduler.Level()
		s.SpeedFactor = g.scheduler.SpeedFactor()
	}
	return s
}

// Stats returns the counters for the current run.
func (g *Game) Stats() RunStats {
	return g.stats
}
