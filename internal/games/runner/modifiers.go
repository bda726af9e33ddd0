package runner

import "github.com/vovakirdan/coin-runner/internal/config"

// Modifiers holds the timed state layered over the run: the HUD power-up,
// the coin combo, and the independent effect flags.
//
// The HUD power-up and the flags are deliberately decoupled: a new pickup
// replaces the displayed power-up, but flags granted earlier keep running
// on their own expiry frames. Expiry frames are inclusive (an effect that
// expires at frame N is still active during frame N).
type Modifiers struct {
	Active      PowerUpKind // PowerUpNone when nothing is displayed
	ActiveUntil int

	Combo      int
	Multiplier int
	ComboTimer int // Frames left before an idle combo resets

	Invincible      bool
	InvincibleUntil int
	Shield          bool // Lasts until consumed by a hit
	Magnet          bool
	MagnetUntil     int
	SizeBoost       bool
	SizeBoostUntil  int
}

// NewModifiers returns the inactive state.
func NewModifiers() Modifiers {
	return Modifiers{Multiplier: 1}
}

// MultiplierFor derives the score multiplier from a combo count:
// clamp(combo/step + 1, 1, maxMultiplier).
func MultiplierFor(combo, step, maxMultiplier int) int {
	if step <= 0 {
		step = 1
	}
	m := combo/step + 1
	return max(1, min(m, maxMultiplier))
}

// Activate applies a power-up picked up during frame.
func (m *Modifiers) Activate(kind PowerUpKind, frame int, cfg config.RunnerPowerUps) {
	if kind <= PowerUpNone || kind >= powerUpKindCount {
		return
	}
	m.Active = kind
	m.ActiveUntil = frame + cfg.Duration

	switch kind {
	case PowerUpInvincibility:
		m.Invincible = true
		m.InvincibleUntil = frame + cfg.InvincibilityDuration
	case PowerUpSizeBoost:
		m.SizeBoost = true
		m.SizeBoostUntil = frame + cfg.SizeBoostDuration
	case PowerUpFireball:
		// Firing is gated on Active; nothing else to set
	case PowerUpMagnet:
		m.Magnet = true
		m.MagnetUntil = frame + cfg.MagnetDuration
	case PowerUpShield:
		m.Shield = true
	}
}

// CanFire reports whether the fireball action is unlocked.
func (m *Modifiers) CanFire() bool {
	return m.Active == PowerUpFireball
}

// ConsumeShield spends the shield if one is up.
func (m *Modifiers) ConsumeShield() bool {
	if !m.Shield {
		return false
	}
	m.Shield = false
	return true
}

// CreditCoin extends the combo for one pickup.
func (m *Modifiers) CreditCoin(cfg config.RunnerCombo) {
	m.Combo++
	m.ComboTimer = cfg.Window
	m.Multiplier = MultiplierFor(m.Combo, cfg.Step, cfg.MaxMultiplier)
}

// Tick runs once at the end of every running frame: it decays the combo
// and expires effects whose frame has passed.
func (m *Modifiers) Tick(frame int) {
	if m.Combo > 0 {
		m.ComboTimer--
		if m.ComboTimer <= 0 {
			m.Combo = 0
			m.ComboTimer = 0
			m.Multiplier = 1
		}
	}

	if m.Active != PowerUpNone && frame >= m.ActiveUntil {
		m.Active = PowerUpNone
	}
	if m.Invincible && frame >= m.InvincibleUntil {
		m.Invincible = false
	}
	if m.Magnet && frame >= m.MagnetUntil {
		m.Magnet = false
	}
	if m.SizeBoost && frame >= m.SizeBoostUntil {
		m.SizeBoost = false
	}
}

// ActiveRemaining returns frames left on the HUD power-up.
func (m *Modifiers) ActiveRemaining(frame int) int {
	if m.Active == PowerUpNone {
		return 0
	}
	return max(0, m.ActiveUntil-frame)
}
