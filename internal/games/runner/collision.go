package runner

import (
	"github.com/vovakirdan/coin-runner/internal/core"
)

// resolveCollisions runs the per-category hit tests for one frame:
// fireballs against obstacles, then the player against obstacles, coins
// and power-ups.
func (g *Game) resolveCollisions() {
	g.resolveFireballs()

	hitbox := g.player.Rect().Expand(g.cfg.Collision.Buffer)
	g.resolveObstacles(hitbox)
	if g.endReason != EndNone {
		return
	}
	g.resolveCoins(hitbox)
	g.resolvePowerUps()
}

// resolveFireballs removes each obstacle hit by a fireball together with
// the fireball that hit it.
func (g *Game) resolveFireballs() {
	if g.fireballs.Len() == 0 || g.obstacles.Len() == 0 {
		return
	}

	spent := make([]bool, g.fireballs.Len())
	g.obstacles.retain(func(o *Obstacle) bool {
		box := o.Rect()
		for i := range g.fireballs.items {
			if spent[i] || !g.fireballs.items[i].Rect().Intersects(box) {
				continue
			}
			spent[i] = true
			cx, cy := box.Center()
			g.burst(cx, cy, g.cfg.Particles.Burst, core.ColorOrange)
			g.style += g.cfg.Style.Fireball * g.mods.Multiplier
			g.stats.FireballHits++
			return false
		}
		return true
	})

	i := 0
	g.fireballs.retain(func(*Fireball) bool {
		keep := !spent[i]
		i++
		return keep
	})
}

// resolveObstacles applies the hit policy: invincible players pass
// through, a shield absorbs one hit, anything else ends the run.
// Close passes without contact earn a one-time near-miss credit.
func (g *Game) resolveObstacles(hitbox core.RectF) {
	px, py := g.player.Rect().Center()
	g.obstacles.retain(func(o *Obstacle) bool {
		if g.endReason != EndNone {
			return true
		}

		box := o.Rect()
		if !hitbox.Intersects(box) {
			ox, oy := box.Center()
			if !o.Grazed && core.Dist(px, py, ox, oy) < g.cfg.Collision.NearMissDistance {
				o.Grazed = true
				g.style += g.cfg.Style.NearMiss * g.mods.Multiplier
				g.stats.NearMisses++
			}
			return true
		}

		switch {
		case g.mods.Invincible:
			return true
		case g.mods.ConsumeShield():
			cx, cy := box.Center()
			g.burst(cx, cy, g.cfg.Particles.Burst, core.ColorWhite)
			g.stats.ShieldBlocks++
			g.logger.Debug("shield absorbed hit", "kind", o.Kind, "frame", g.frame)
			return false
		default:
			g.endReason = EndCollision
			return true
		}
	})
}

// resolveCoins collects every coin touching the hitbox. Each pickup
// credits exactly one coin whatever its stored value.
func (g *Game) resolveCoins(hitbox core.RectF) {
	g.coins.retain(func(c *Coin) bool {
		if !hitbox.Intersects(c.Rect()) {
			return true
		}
		g.coinsCollected++
		g.style += g.cfg.Style.Coin * g.mods.Multiplier
		g.mods.CreditCoin(g.cfg.Combo)

		cx, cy := c.Rect().Center()
		g.burst(cx, cy, g.cfg.Particles.Burst, core.ColorYellow)
		g.opts.Audio.PlayCue(core.CueCoin)
		return false
	})
}

// resolvePowerUps activates power-ups touching the player's plain box.
func (g *Game) resolvePowerUps() {
	box := g.player.Rect()
	pc := g.cfg.PowerUps
	g.powerUps.retain(func(p *PowerUp) bool {
		if !box.Intersects(p.Rect()) {
			return true
		}
		g.mods.Activate(p.Kind, g.frame, pc)
		g.stats.PowerUps++

		cx, cy := p.Rect().Center()
		g.burst(cx, cy, pc.PickupParticles, powerUpColor(p.Kind))
		g.burst(g.player.X+g.player.Width/2, g.player.Y+g.player.Height/2, pc.FeedbackParticles, powerUpColor(p.Kind))
		g.logger.Debug("power-up collected", "kind", p.Kind, "frame", g.frame)
		return false
	})
}

func powerUpColor(k PowerUpKind) core.Color {
	switch k {
	case PowerUpInvincibility:
		return core.ColorBrightYellow
	case PowerUpSizeBoost:
		return core.ColorRed
	case PowerUpFireball:
		return core.ColorOrange
	case PowerUpMagnet:
		return core.ColorBrightMagenta
	case PowerUpShield:
		return core.ColorBrightCyan
	default:
		return core.ColorWhite
	}
}
