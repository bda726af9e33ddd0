package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: RunnerWorld{
			Width:  800,
			Height: 400,
		},
		Physics: RunnerPhysics{
			Gravity:     0.6,
			JumpImpulse: -12,
			ScrollSpeed: 4,
		},
		Player: RunnerPlayer{
			X:              100,
			GroundY:        300,
			Width:          20,
			Height:         40,
			AirborneHeight: 20,
		},
		Obstacles: RunnerObstacles{
			Cap:            10,
			Width:          30,
			Height:         30,
			GroundY:        340,
			FlyingMinY:     200,
			FlyingMaxY:     300,
			PatrolMinY:     200,
			PatrolMaxY:     340,
			PatrolMaxSpeed: 2,
			WeightGround:   60,
			WeightFlying:   20,
			WeightPatrol:   20,
		},
		Coins: RunnerCoins{
			Cap:               15,
			Size:              20,
			MinY:              200,
			MaxY:              300,
			Value:             1,
			MagnetRange:       200,
			MagnetSpeedFactor: 2.0,
		},
		PowerUps: RunnerPowerUps{
			Cap:                   3,
			Size:                  30,
			SpawnChance:           0.002,
			MinY:                  150,
			MaxY:                  300,
			Duration:              300,
			InvincibilityDuration: 300,
			MagnetDuration:        300,
			SizeBoostDuration:     300,
			SizeBoostFactor:       1.5,
			PickupParticles:       10,
			FeedbackParticles:     20,
		},
		Particles: RunnerParticles{
			Cap:     50,
			Life:    255,
			Decay:   5,
			Gravity: 0.1,
			MinVX:   -2,
			MaxVX:   2,
			MinVY:   -5,
			MaxVY:   -2,
			Burst:   10,
		},
		Projectiles: RunnerProjectiles{
			Cap:   5,
			Speed: 8,
			Size:  20,
		},
		Combo: RunnerCombo{
			Window:        60,
			Step:          10,
			MaxMultiplier: 5,
		},
		Style: RunnerStyle{
			Dodge:    10,
			NearMiss: 5,
			Coin:     20,
			Fireball: 10,
		},
		Collision: RunnerCollision{
			Buffer:           5,
			NearMissDistance: 50,
		},
		Scoring: RunnerScoring{
			MillisPerPoint: 100,
			CoinPoints:     10,
		},
		Difficulty: DifficultyConfig{
			Enabled:                true,
			InitialLevel:           1,
			Interval:               1000,
			MaxLevel:               10,
			SpeedStep:              0.1,
			MaxSpeed:               2.0,
			ObstacleFrequency:      80,
			ObstacleFrequencyStep:  5,
			ObstacleFrequencyFloor: 30,
			CoinFrequency:          100,
			CoinFrequencyStep:      3,
			CoinFrequencyFloor:     60,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `runner config`.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
