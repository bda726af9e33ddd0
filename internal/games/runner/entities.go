package runner

import (
	"math"

	"github.com/vovakirdan/coin-runner/internal/core"
)

// Player is the runner sprite. Y is the top edge; it rests at the ground
// line and moves up (negative) while jumping.
type Player struct {
	X, Y    float64
	VY      float64 // Vertical velocity, positive = down
	Width   float64
	Height  float64 // Effective height: shrinks in the air, grows with size boost
	Jumping bool
}

// Rect returns the player's unbuffered bounding box.
func (p Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// ObstacleKind is the obstacle variant tag.
type ObstacleKind int

const (
	ObstacleGround ObstacleKind = iota // Walks along the ground
	ObstacleFlying                     // Hovers at a fixed height
	ObstaclePatrol                     // Bounces vertically between bounds
	obstacleKindCount
)

// String returns the variant name.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleGround:
		return "ground"
	case ObstacleFlying:
		return "flying"
	case ObstaclePatrol:
		return "patrol"
	default:
		return "unknown"
	}
}

// Obstacle is a hazard scrolling toward the player.
// Y is the bottom edge, matching how ground obstacles stand on the floor.
type Obstacle struct {
	Kind ObstacleKind
	X, Y float64
	W, H float64
	VY   float64 // Patrol only

	Grazed bool // Near-miss already credited
}

// Rect returns the obstacle's bounding box.
func (o Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y-o.H, o.W, o.H)
}

func (o Obstacle) valid() bool {
	return o.Kind >= 0 && o.Kind < obstacleKindCount &&
		o.W > 0 && o.H > 0 && finite(o.X, o.Y, o.VY)
}

// Coin is a collectible. Value is carried for display only: a pickup
// always credits exactly one coin.
type Coin struct {
	X, Y  float64 // Top-left corner
	Size  float64
	Value int
}

// Rect returns the coin's bounding box.
func (c Coin) Rect() core.RectF {
	return core.NewRectF(c.X, c.Y, c.Size, c.Size)
}

func (c Coin) valid() bool {
	return c.Size > 0 && finite(c.X, c.Y)
}

// PowerUpKind is the power-up variant tag. PowerUpNone marks "no active
// power-up" in Modifiers and never appears on a pickup.
type PowerUpKind int

const (
	PowerUpNone PowerUpKind = iota
	PowerUpInvincibility
	PowerUpSizeBoost
	PowerUpFireball
	PowerUpMagnet
	PowerUpShield
	powerUpKindCount
)

// String returns the variant name shown in the HUD.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpNone:
		return "none"
	case PowerUpInvincibility:
		return "star"
	case PowerUpSizeBoost:
		return "mushroom"
	case PowerUpFireball:
		return "flower"
	case PowerUpMagnet:
		return "magnet"
	case PowerUpShield:
		return "shield"
	default:
		return "unknown"
	}
}

// PowerUp is a pickup that activates a timed modifier.
type PowerUp struct {
	Kind PowerUpKind
	X, Y float64 // Top-left corner
	Size float64
}

// Rect returns the power-up's bounding box.
func (p PowerUp) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Size, p.Size)
}

func (p PowerUp) valid() bool {
	return p.Kind > PowerUpNone && p.Kind < powerUpKindCount && p.Size > 0 && finite(p.X, p.Y)
}

// Particle is a cosmetic spark with an integer life countdown.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Color  core.Color
}

func (p Particle) valid() bool {
	return finite(p.X, p.Y, p.VX, p.VY)
}

// Fireball is the projectile unlocked by the flower power-up.
// X, Y is its center.
type Fireball struct {
	X, Y  float64
	Speed float64
	Size  float64
}

// Rect returns the fireball's bounding box.
func (f Fireball) Rect() core.RectF {
	return core.NewRectF(f.X-f.Size/2, f.Y-f.Size/2, f.Size, f.Size)
}

func (f Fireball) valid() bool {
	return f.Size > 0 && finite(f.X, f.Y, f.Speed)
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
