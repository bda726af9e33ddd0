package runner

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/coin-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	GroundChar   = '═'
	CoinChar     = '●'
	ParticleChar = '·'
	FireballChar = '*'
	GoombaChar   = '▓'
	FlyerChar    = '▼'
	PatrolChar   = '◆'
)

const hudRows = 2

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a snapshot scaled to the screen. It only reads s.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()
	if dst.Width() < 20 || dst.Height() < 8 || s.WorldW <= 0 || s.WorldH <= 0 {
		dst.DrawText(0, 0, "Window too small")
		return
	}

	v := viewport{
		sx:   float64(dst.Width()) / s.WorldW,
		sy:   float64(dst.Height()-hudRows) / s.WorldH,
		top:  hudRows,
		maxY: dst.Height() - 1,
	}

	groundRow := v.row(s.GroundY)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGreen)

	for _, p := range s.Particles {
		dst.SetColored(v.col(p.X), v.row(p.Y), ParticleChar, p.Color)
	}
	for _, c := range s.Coins {
		dst.SetColored(v.col(c.X+c.Size/2), v.row(c.Y+c.Size/2), CoinChar, core.ColorYellow)
	}
	for _, p := range s.PowerUps {
		dst.SetColored(v.col(p.X+p.Size/2), v.row(p.Y+p.Size/2), powerUpGlyph(p.Kind), powerUpColor(p.Kind))
	}
	for _, o := range s.Obstacles {
		drawRect(dst, v, o.Rect(), obstacleGlyph(o.Kind), obstacleColor(o.Kind))
	}
	for _, f := range s.Fireballs {
		dst.SetColored(v.col(f.X), v.row(f.Y), FireballChar, core.ColorOrange)
	}
	drawRect(dst, v, s.Player.Rect(), PlayerChar, playerColor(s.Modifiers))

	drawHUD(dst, s)

	switch {
	case s.Mode == ModeIdle:
		drawMessage(dst, "COIN RUNNER", "Press SPACE to start", fmt.Sprintf("Best: %d", s.HighScore))
	case s.Mode == ModeEnded:
		drawMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Coins: %d  Style: %d", s.Score, s.CoinsCollected, s.Style),
			fmt.Sprintf("Best: %d  |  Press R to restart", s.HighScore))
	case s.Paused:
		drawMessage(dst, "PAUSED", "Press P to resume")
	}
}

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64
	top    int
	maxY   int
}

func (v viewport) col(x float64) int {
	return int(x * v.sx)
}

func (v viewport) row(y float64) int {
	return core.Clamp(v.top+int(y*v.sy), v.top, v.maxY)
}

// drawRect fills the cells covered by a world-space box, at least one cell.
func drawRect(dst *core.Screen, v viewport, r core.RectF, ch rune, c core.Color) {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1, y1 := v.col(r.Right()), v.row(r.Bottom())
	x1 = core.Max(x1, x0+1)
	y1 = core.Max(y1, y0+1)
	dst.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), ch, c)
}

// drawHUD writes score, coins, combo and power-up status on the top rows.
func drawHUD(dst *core.Screen, s Snapshot) {
	left := fmt.Sprintf(" Score: %d  Coins: %d  Style: %d ", s.Score, s.CoinsCollected, s.Style)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf(" Best: %d  Lv %d  x%.1f ", s.HighScore, s.Level, s.SpeedFactor)
	dst.DrawTextColored(dst.Width()-len(right), 0, right, core.ColorCyan)

	var status []string
	m := s.Modifiers
	if m.Combo > 0 {
		status = append(status, fmt.Sprintf("Combo %d (x%d)", m.Combo, m.Multiplier))
	}
	if m.Active != PowerUpNone {
		status = append(status, fmt.Sprintf("%s %ds", m.Active, s.ActiveRemaining/60))
	}
	if m.Shield {
		status = append(status, "shield")
	}
	if len(status) > 0 {
		dst.DrawTextColored(1, 1, strings.Join(status, "  "), core.ColorBrightYellow)
	}
}

// drawMessage draws a message box in the center of the screen.
func drawMessage(dst *core.Screen, title string, lines ...string) {
	w := len([]rune(title))
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}

	boxW := w + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorDefault)
	}
}

func obstacleGlyph(k ObstacleKind) rune {
	switch k {
	case ObstacleFlying:
		return FlyerChar
	case ObstaclePatrol:
		return PatrolChar
	default:
		return GoombaChar
	}
}

func obstacleColor(k ObstacleKind) core.Color {
	switch k {
	case ObstacleFlying:
		return core.ColorMagenta
	case ObstaclePatrol:
		return core.ColorBrightRed
	default:
		return core.ColorRed
	}
}

func powerUpGlyph(k PowerUpKind) rune {
	switch k {
	case PowerUpInvincibility:
		return '★'
	case PowerUpSizeBoost:
		return '♠'
	case PowerUpFireball:
		return '✿'
	case PowerUpMagnet:
		return 'U'
	case PowerUpShield:
		return '◘'
	default:
		return '?'
	}
}

func playerColor(m Modifiers) core.Color {
	switch {
	case m.Invincible:
		return core.ColorBrightYellow
	case m.Shield:
		return core.ColorBrightCyan
	case m.Active == PowerUpFireball:
		return core.ColorOrange
	default:
		return core.ColorBrightBlue
	}
}
