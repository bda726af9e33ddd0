package core

// Cue identifies a sound effect requested by a game.
// Games emit cues; the platform decides how (or whether) to play them.
type Cue int

const (
	CueJump Cue = iota
	CueCoin
	CueFireball
	CueFall
)

// String returns the cue name used in logs.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueCoin:
		return "coin"
	case CueFireball:
		return "fireball"
	case CueFall:
		return "fall"
	default:
		return "unknown"
	}
}
