// Package config provides YAML-based game configuration loading and
// difficulty scheduling for the runner.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all tuning for the endless runner.
// Distances are world units on an 800x400 playfield, durations are frames.
type RunnerConfig struct {
	World       RunnerWorld       `yaml:"world"`
	Physics     RunnerPhysics     `yaml:"physics"`
	Player      RunnerPlayer      `yaml:"player"`
	Obstacles   RunnerObstacles   `yaml:"obstacles"`
	Coins       RunnerCoins       `yaml:"coins"`
	PowerUps    RunnerPowerUps    `yaml:"powerups"`
	Particles   RunnerParticles   `yaml:"particles"`
	Projectiles RunnerProjectiles `yaml:"projectiles"`
	Combo       RunnerCombo       `yaml:"combo"`
	Style       RunnerStyle       `yaml:"style"`
	Collision   RunnerCollision   `yaml:"collision"`
	Scoring     RunnerScoring     `yaml:"scoring"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// RunnerWorld defines the playfield.
type RunnerWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"` // Falling below this ends the run
}

// RunnerPhysics defines player and scroll physics.
type RunnerPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	ScrollSpeed float64 `yaml:"scroll_speed"` // Leftward speed of obstacles, coins and power-ups
}

// RunnerPlayer defines the player sprite.
type RunnerPlayer struct {
	X              float64 `yaml:"x"`
	GroundY        float64 `yaml:"ground_y"` // Top of the sprite while standing
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	AirborneHeight float64 `yaml:"airborne_height"`
}

// RunnerObstacles defines obstacle spawning and movement.
type RunnerObstacles struct {
	Cap            int     `yaml:"cap"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	GroundY        float64 `yaml:"ground_y"` // Obstacle Y is its bottom edge
	FlyingMinY     float64 `yaml:"flying_min_y"`
	FlyingMaxY     float64 `yaml:"flying_max_y"`
	PatrolMinY     float64 `yaml:"patrol_min_y"`
	PatrolMaxY     float64 `yaml:"patrol_max_y"`
	PatrolMaxSpeed float64 `yaml:"patrol_max_speed"`
	WeightGround   int     `yaml:"weight_ground"`
	WeightFlying   int     `yaml:"weight_flying"`
	WeightPatrol   int     `yaml:"weight_patrol"`
}

// RunnerCoins defines coin spawning and the magnet effect.
type RunnerCoins struct {
	Cap               int     `yaml:"cap"`
	Size              float64 `yaml:"size"`
	MinY              float64 `yaml:"min_y"`
	MaxY              float64 `yaml:"max_y"`
	Value             int     `yaml:"value"` // Stored on the coin; pickups always credit one
	MagnetRange       float64 `yaml:"magnet_range"`
	MagnetSpeedFactor float64 `yaml:"magnet_speed_factor"`
}

// RunnerPowerUps defines power-up spawning and effect durations.
type RunnerPowerUps struct {
	Cap                   int     `yaml:"cap"`
	Size                  float64 `yaml:"size"`
	SpawnChance           float64 `yaml:"spawn_chance"` // Per-frame probability
	MinY                  float64 `yaml:"min_y"`
	MaxY                  float64 `yaml:"max_y"`
	Duration              int     `yaml:"duration"`
	InvincibilityDuration int     `yaml:"invincibility_duration"`
	MagnetDuration        int     `yaml:"magnet_duration"`
	SizeBoostDuration     int     `yaml:"size_boost_duration"`
	SizeBoostFactor       float64 `yaml:"size_boost_factor"`
	PickupParticles       int     `yaml:"pickup_particles"`
	FeedbackParticles     int     `yaml:"feedback_particles"`
}

// RunnerParticles defines cosmetic particle behaviour.
type RunnerParticles struct {
	Cap     int     `yaml:"cap"`
	Life    int     `yaml:"life"`
	Decay   int     `yaml:"decay"`
	Gravity float64 `yaml:"gravity"`
	MinVX   float64 `yaml:"min_vx"`
	MaxVX   float64 `yaml:"max_vx"`
	MinVY   float64 `yaml:"min_vy"`
	MaxVY   float64 `yaml:"max_vy"`
	Burst   int     `yaml:"burst"`
}

// RunnerProjectiles defines fireballs.
type RunnerProjectiles struct {
	Cap   int     `yaml:"cap"`
	Speed float64 `yaml:"speed"`
	Size  float64 `yaml:"size"`
}

// RunnerCombo defines the coin streak multiplier.
type RunnerCombo struct {
	Window        int `yaml:"window"` // Frames before an idle streak resets
	Step          int `yaml:"step"`   // Coins per multiplier step
	MaxMultiplier int `yaml:"max_multiplier"`
}

// RunnerStyle defines style meter credits, all scaled by the multiplier.
type RunnerStyle struct {
	Dodge    int `yaml:"dodge"`
	NearMiss int `yaml:"near_miss"`
	Coin     int `yaml:"coin"`
	Fireball int `yaml:"fireball"`
}

// RunnerCollision defines hit-test forgiveness.
type RunnerCollision struct {
	Buffer           float64 `yaml:"buffer"`
	NearMissDistance float64 `yaml:"near_miss_distance"`
}

// RunnerScoring defines the derived score formula.
type RunnerScoring struct {
	MillisPerPoint int `yaml:"millis_per_point"`
	CoinPoints     int `yaml:"coin_points"`
}

// DifficultyConfig defines the stepwise escalation schedule.
type DifficultyConfig struct {
	Enabled                bool    `yaml:"enabled"`
	InitialLevel           int     `yaml:"initial_level"`
	Interval               int     `yaml:"interval"` // Frames between escalations
	MaxLevel               int     `yaml:"max_level"`
	SpeedStep              float64 `yaml:"speed_step"`
	MaxSpeed               float64 `yaml:"max_speed"`
	ObstacleFrequency      int     `yaml:"obstacle_frequency"`
	ObstacleFrequencyStep  int     `yaml:"obstacle_frequency_step"`
	ObstacleFrequencyFloor int     `yaml:"obstacle_frequency_floor"`
	CoinFrequency          int     `yaml:"coin_frequency"`
	CoinFrequencyStep      int     `yaml:"coin_frequency_step"`
	CoinFrequencyFloor     int     `yaml:"coin_frequency_floor"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the starting level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 6
	default:
		return 1
	}
}

// Hard limits a config may not raise. Pools are bounded so a long run
// cannot grow without limit.
const (
	MaxObstacles       = 10
	MaxCoins           = 15
	MaxPowerUps        = 3
	MaxParticles       = 50
	MaxProjectiles     = 5
	MaxDifficultyLevel = 10
	MaxSpeedFactor     = 2.0
)

// Validate reports configuration values the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.AirborneHeight <= 0 {
		errs = append(errs, errors.New("player dimensions must be positive"))
	}
	caps := []struct {
		name  string
		v     int
		limit int
	}{
		{"obstacles.cap", c.Obstacles.Cap, MaxObstacles},
		{"coins.cap", c.Coins.Cap, MaxCoins},
		{"powerups.cap", c.PowerUps.Cap, MaxPowerUps},
		{"particles.cap", c.Particles.Cap, MaxParticles},
		{"projectiles.cap", c.Projectiles.Cap, MaxProjectiles},
	}
	for _, cp := range caps {
		if cp.v < 0 || cp.v > cp.limit {
			errs = append(errs, fmt.Errorf("%s must be within [0, %d], got %d", cp.name, cp.limit, cp.v))
		}
	}
	if c.Obstacles.WeightGround+c.Obstacles.WeightFlying+c.Obstacles.WeightPatrol <= 0 {
		errs = append(errs, errors.New("obstacle weights must sum to a positive value"))
	}
	if c.Combo.Step <= 0 || c.Combo.MaxMultiplier < 1 {
		errs = append(errs, errors.New("combo step must be positive and max multiplier at least 1"))
	}
	if c.Scoring.MillisPerPoint <= 0 {
		errs = append(errs, errors.New("scoring.millis_per_point must be positive"))
	}
	d := c.Difficulty
	if d.Interval <= 0 {
		errs = append(errs, errors.New("difficulty.interval must be positive"))
	}
	if d.MaxLevel < 1 || d.MaxLevel > MaxDifficultyLevel {
		errs = append(errs, fmt.Errorf("difficulty.max_level must be within [1, %d], got %d", MaxDifficultyLevel, d.MaxLevel))
	}
	if d.ObstacleFrequencyFloor > d.ObstacleFrequency || d.CoinFrequencyFloor > d.CoinFrequency {
		errs = append(errs, errors.New("difficulty frequency floors must not exceed starting frequencies"))
	}
	if d.MaxSpeed < 1 || d.MaxSpeed > MaxSpeedFactor {
		errs = append(errs, fmt.Errorf("difficulty.max_speed must be within [1, %g], got %g", MaxSpeedFactor, d.MaxSpeed))
	}
	return errors.Join(errs...)
}
