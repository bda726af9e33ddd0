package runner

import (
	"github.com/vovakirdan/coin-runner/internal/core"
)

// spawn runs the per-pool spawn rules for one frame. Obstacles and coins
// are timer driven; power-ups are a per-frame chance.
func (g *Game) spawn() {
	g.obstacleTimer++
	if g.obstacleTimer > g.scheduler.ObstacleFrequency() && !g.obstacles.Full() {
		g.obstacles.add(g.newObstacle())
		g.obstacleTimer = 0
	}

	g.coinTimer++
	if g.coinTimer > g.scheduler.CoinFrequency() && !g.coins.Full() {
		cc := g.cfg.Coins
		g.coins.add(Coin{
			X:     g.cfg.World.Width,
			Y:     g.randRange(cc.MinY, cc.MaxY),
			Size:  cc.Size,
			Value: cc.Value,
		})
		g.coinTimer = 0
	}

	pc := g.cfg.PowerUps
	if g.rng.Float64() < pc.SpawnChance && !g.powerUps.Full() {
		kind := PowerUpKind(1 + g.rng.Intn(int(powerUpKindCount)-1))
		g.powerUps.add(PowerUp{
			Kind: kind,
			X:    g.cfg.World.Width,
			Y:    g.randRange(pc.MinY, pc.MaxY),
			Size: pc.Size,
		})
	}
}

// newObstacle draws a variant from the configured weights and places it
// at the right edge.
func (g *Game) newObstacle() Obstacle {
	oc := g.cfg.Obstacles
	o := Obstacle{
		Kind: g.pickObstacleKind(),
		X:    g.cfg.World.Width,
		Y:    oc.GroundY,
		W:    oc.Width,
		H:    oc.Height,
	}

	switch o.Kind {
	case ObstacleGround:
	case ObstacleFlying:
		o.Y = g.randRange(oc.FlyingMinY, oc.FlyingMaxY)
	case ObstaclePatrol:
		o.VY = g.randRange(-oc.PatrolMaxSpeed, oc.PatrolMaxSpeed)
	}
	return o
}

func (g *Game) pickObstacleKind() ObstacleKind {
	oc := g.cfg.Obstacles
	total := oc.WeightGround + oc.WeightFlying + oc.WeightPatrol
	if total <= 0 {
		return ObstacleGround
	}

	r := g.rng.Intn(total)
	switch {
	case r < oc.WeightGround:
		return ObstacleGround
	case r < oc.WeightGround+oc.WeightFlying:
		return ObstacleFlying
	default:
		return ObstaclePatrol
	}
}

// advance moves every entity for one frame.
func (g *Game) advance() {
	speed := g.cfg.Physics.ScrollSpeed
	oc := g.cfg.Obstacles

	for i := range g.obstacles.items {
		o := &g.obstacles.items[i]
		o.X -= speed
		if o.Kind != ObstaclePatrol {
			continue
		}
		o.Y += o.VY
		if o.Y < oc.PatrolMinY || o.Y > oc.PatrolMaxY {
			o.VY = -o.VY
			o.Y = core.ClampF(o.Y, oc.PatrolMinY, oc.PatrolMaxY)
		}
	}

	cc := g.cfg.Coins
	for i := range g.coins.items {
		c := &g.coins.items[i]
		coinSpeed := speed
		if g.mods.Magnet && core.Dist(g.player.X, g.player.Y, c.X, c.Y) < cc.MagnetRange {
			coinSpeed *= cc.MagnetSpeedFactor
		}
		c.X -= coinSpeed
	}

	for i := range g.powerUps.items {
		g.powerUps.items[i].X -= speed
	}

	pc := g.cfg.Particles
	for i := range g.particles.items {
		p := &g.particles.items[i]
		p.X += p.VX
		p.Y += p.VY
		p.VY += pc.Gravity
		p.Life -= pc.Decay
	}

	for i := range g.fireballs.items {
		f := &g.fireballs.items[i]
		f.X += f.Speed
		g.emitTrail(f.X, f.Y)
	}
}

// prune removes entities that left the playfield, expired, or are
// malformed, then truncates every pool to its cap.
func (g *Game) prune() {
	dropped := 0

	g.obstacles.retain(func(o *Obstacle) bool {
		if !o.valid() {
			dropped++
			return false
		}
		if o.X < -o.W {
			g.style += g.cfg.Style.Dodge * g.mods.Multiplier
			g.stats.ObstaclesDodged++
			return false
		}
		return true
	})

	g.coins.retain(func(c *Coin) bool {
		if !c.valid() {
			dropped++
			return false
		}
		return c.X >= -c.Size
	})

	g.powerUps.retain(func(p *PowerUp) bool {
		if !p.valid() {
			dropped++
			return false
		}
		return p.X >= -p.Size
	})

	g.particles.retain(func(p *Particle) bool {
		if !p.valid() {
			dropped++
			return false
		}
		return p.Life > 0
	})

	width := g.cfg.World.Width
	g.fireballs.retain(func(f *Fireball) bool {
		if !f.valid() {
			dropped++
			return false
		}
		return f.X <= width
	})

	if dropped > 0 {
		g.stats.EntitiesDropped += dropped
		g.logger.Warn("dropped malformed entities", "count", dropped, "frame", g.frame)
	}

	g.obstacles.truncate()
	g.coins.truncate()
	g.powerUps.truncate()
	g.particles.truncate()
	g.fireballs.truncate()
}

// fireFireball launches a projectile from the player's leading edge.
// The oldest fireball is evicted once the cap is reached.
func (g *Game) fireFireball() {
	pc := g.cfg.Projectiles
	g.fireballs.push(Fireball{
		X:     g.player.X + g.player.Width,
		Y:     g.player.Y + g.player.Height/2,
		Speed: pc.Speed,
		Size:  pc.Size,
	})
	g.stats.FireballsFired++
	g.opts.Audio.PlayCue(core.CueFireball)
}

// burst emits n particles at (x, y). Particles past the cap are not
// spawned.
func (g *Game) burst(x, y float64, n int, color core.Color) {
	pc := g.cfg.Particles
	for range n {
		if !g.particles.add(Particle{
			X:     x,
			Y:     y,
			VX:    g.randRange(pc.MinVX, pc.MaxVX),
			VY:    g.randRange(pc.MinVY, pc.MaxVY),
			Life:  pc.Life,
			Color: color,
		}) {
			return
		}
	}
}

// emitTrail leaves a short-lived, motionless spark behind a fireball.
func (g *Game) emitTrail(x, y float64) {
	g.particles.add(Particle{
		X:     x,
		Y:     y,
		Life:  g.cfg.Particles.Life / 4,
		Color: core.ColorOrange,
	})
}

// randRange returns a uniform value in [lo, hi).
func (g *Game) randRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Float64()*(hi-lo)
}
