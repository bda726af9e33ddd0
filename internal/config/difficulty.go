package config

import "math"

// Scheduler escalates spawn cadence and scroll speed in fixed frame steps.
// It is a pure function of the frame count: no randomness, no wall clock.
type Scheduler struct {
	cfg               DifficultyConfig
	level             int
	speed             float64
	obstacleFrequency int
	coinFrequency     int
}

// NewScheduler creates a scheduler at its initial level.
func NewScheduler(cfg DifficultyConfig) *Scheduler {
	s := &Scheduler{cfg: cfg}
	s.Reset()
	return s
}

// Reset restores the starting values. A preset's initial level is applied
// as that many escalations up front.
func (s *Scheduler) Reset() {
	s.level = 1
	s.speed = 1.0
	s.obstacleFrequency = s.cfg.ObstacleFrequency
	s.coinFrequency = s.cfg.CoinFrequency

	for i := 1; i < s.cfg.InitialLevel && i < s.cfg.MaxLevel; i++ {
		s.escalate()
	}
}

// IsEnabled returns whether escalation is active.
func (s *Scheduler) IsEnabled() bool {
	return s.cfg.Enabled && s.cfg.Interval > 0
}

// Advance is called once per running frame. It escalates when frame is a
// positive multiple of the interval and reports whether it did.
func (s *Scheduler) Advance(frame int) bool {
	if !s.IsEnabled() || frame <= 0 || frame%s.cfg.Interval != 0 {
		return false
	}
	s.escalate()
	return true
}

// escalate applies one step. Each value saturates at its own bound, so the
// frequencies keep tightening after the level has capped.
func (s *Scheduler) escalate() {
	s.level = min(s.level+1, s.cfg.MaxLevel)
	s.speed = math.Min(s.speed+s.cfg.SpeedStep, s.cfg.MaxSpeed)
	s.obstacleFrequency = max(s.cfg.ObstacleFrequencyFloor, s.obstacleFrequency-s.cfg.ObstacleFrequencyStep)
	s.coinFrequency = max(s.cfg.CoinFrequencyFloor, s.coinFrequency-s.cfg.CoinFrequencyStep)
}

// Level returns the current difficulty level (1-based).
func (s *Scheduler) Level() int {
	return s.level
}

// SpeedFactor returns the escalated game speed shown on the HUD.
// Scrolling itself stays at physics.scroll_speed.
func (s *Scheduler) SpeedFactor() float64 {
	return s.speed
}

// ObstacleFrequency returns the frames between obstacle spawns.
func (s *Scheduler) ObstacleFrequency() int {
	return s.obstacleFrequency
}

// CoinFrequency returns the frames between coin spawns.
func (s *Scheduler) CoinFrequency() int {
	return s.coinFrequency
}
