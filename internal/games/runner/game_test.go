package runner

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/core"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     42,
}

type recordingCues struct {
	cues []core.Cue
}

func (r *recordingCues) PlayCue(c core.Cue) {
	r.cues = append(r.cues, c)
}

func (r *recordingCues) count(c core.Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

type fakeScores struct {
	best    int
	saves   []int
	loadErr error
}

func (f *fakeScores) LoadHighScore() (int, error) {
	return f.best, f.loadErr
}

func (f *fakeScores) SaveHighScore(score int) error {
	f.saves = append(f.saves, score)
	f.best = score
	return nil
}

// quietConfig returns defaults with every spawner switched off, so tests
// place entities by hand.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Difficulty.ObstacleFrequency = math.MaxInt32
	cfg.Difficulty.ObstacleFrequencyFloor = math.MaxInt32
	cfg.Difficulty.CoinFrequency = math.MaxInt32
	cfg.Difficulty.CoinFrequencyFloor = math.MaxInt32
	cfg.PowerUps.SpawnChance = 0
	return cfg
}

func newTestGame(t *testing.T, cfg config.RunnerConfig, opts Options) *Game {
	t.Helper()
	g := NewWithOptions(opts)
	g.UseConfig(cfg)
	g.Reset(testRuntime)
	return g
}

func startGame(t *testing.T, g *Game) {
	t.Helper()
	g.Step(core.InputOf(core.ActionStart))
	if g.Mode() != ModeRunning {
		t.Fatalf("expected running after start, got %v", g.Mode())
	}
}

func groundObstacle(x float64) Obstacle {
	return Obstacle{Kind: ObstacleGround, X: x, Y: 340, W: 30, H: 30}
}

func TestIdleUntilStart(t *testing.T) {
	g := newTestGame(t, quietConfig(), Options{})

	for range 10 {
		g.Step(core.NewInputFrame())
	}
	g.Step(core.InputOf(core.ActionJump))

	if g.Mode() != ModeIdle {
		t.Fatalf("expected idle, got %v", g.Mode())
	}
	if g.frame != 0 || g.elapsed != 0 {
		t.Errorf("idle frames must not advance the simulation: frame=%d elapsed=%v", g.frame, g.elapsed)
	}
	if !g.State().Idle {
		t.Error("State().Idle should be true before start")
	}

	startGame(t, g)
	g.Step(core.NewInputFrame())
	if g.frame != 1 {
		t.Errorf("expected frame 1 after first running step, got %d", g.frame)
	}
}

func TestObstacleCollisionEndsRun(t *testing.T) {
	cues := &recordingCues{}
	g := newTestGame(t, quietConfig(), Options{Audio: cues})
	startGame(t, g)

	g.obstacles.add(groundObstacle(800))

	for i := 1; i <= 175 && g.Mode() == ModeRunning; i++ {
		g.Step(core.NewInputFrame())
		if i < 169 && g.Mode() != ModeRunning {
			t.Fatalf("run ended early at frame %d", i)
		}
	}

	if g.Mode() != ModeEnded {
		t.Fatal("expected run to end within 175 frames")
	}
	if g.endReason != EndCollision {
		t.Errorf("expected collision, got %v", g.endReason)
	}
	if g.frame != 169 {
		t.Errorf("expected hit on frame 169, got %d", g.frame)
	}
	if x := g.obstacles.items[0].X; x < 95 || x > 125 {
		t.Errorf("obstacle should be at the player, x=%v", x)
	}
	if g.stats.NearMisses != 1 {
		t.Errorf("expected one near miss before the hit, got %d", g.stats.NearMisses)
	}
	if cues.count(core.CueFall) != 1 {
		t.Errorf("expected one fall cue, got %v", cues.cues)
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be set")
	}

	// Ended is terminal until restart
	frame := g.frame
	g.Step(core.InputOf(core.ActionJump))
	if g.frame != frame || g.Mode() != ModeEnded {
		t.Error("ended session must not advance")
	}
}

func TestCoinPickupsBuildCombo(t *testing.T) {
	cues := &recordingCues{}
	g := newTestGame(t, quietConfig(), Options{Audio: cues})
	startGame(t, g)

	for range 10 {
		g.coins.add(Coin{X: 104, Y: 310, Size: 20, Value: 5})
	}
	g.Step(core.NewInputFrame())

	if g.coinsCollected != 10 {
		t.Errorf("expected 10 coins regardless of stored value, got %d", g.coinsCollected)
	}
	if g.mods.Combo != 10 {
		t.Errorf("expected combo 10, got %d", g.mods.Combo)
	}
	if g.mods.Multiplier != 2 {
		t.Errorf("expected multiplier 2, got %d", g.mods.Multiplier)
	}
	if g.coins.Len() != 0 {
		t.Errorf("collected coins should be removed, %d left", g.coins.Len())
	}
	if g.style != 200 {
		t.Errorf("expected style 200, got %d", g.style)
	}
	if g.score != 100 {
		t.Errorf("expected score 100, got %d", g.score)
	}
	if cues.count(core.CueCoin) != 10 {
		t.Errorf("expected 10 coin cues, got %d", cues.count(core.CueCoin))
	}
	if g.particles.Len() != g.cfg.Particles.Cap {
		t.Errorf("bursts should fill the particle pool to its cap, got %d", g.particles.Len())
	}
}

func TestComboResetsAfterWindow(t *testing.T) {
	g := newTestGame(t, quietConfig(), Options{})
	startGame(t, g)

	g.coins.add(Coin{X: 104, Y: 310, Size: 20, Value: 1})
	g.Step(core.NewInputFrame())
	if g.mods.Combo != 1 {
		t.Fatalf("expected combo 1, got %d", g.mods.Combo)
	}

	for range g.cfg.Combo.Window {
		g.Step(core.NewInputFrame())
	}
	if g.mods.Combo != 0 || g.mods.Multiplier != 1 {
		t.Errorf("combo should reset after the window: combo=%d mult=%d", g.mods.Combo, g.mods.Multiplier)
	}
}

func TestShieldAbsorbsHit(t *testing.T) {
	g := newTestGame(t, quietConfig(), Options{})
	startGame(t, g)

	g.mods.Shield = true
	g.obstacles.add(groundObstacle(110))
	g.Step(core.NewInputFrame())

	if g.Mode() != ModeRunning {
		t.Fatalf("shield should keep the run going, got %v", g.Mode())
	}
	if g.mods.Shield {
		t.Error("shield should be consumed")
	}
	if g.obstacles.Len() != 0 {
		t.Error("blocked obstacle should be removed")
	}
	if g.particles.Len() != 10 {
		t.Errorf("expected 10 particles, got %d", g.particles.Len())
	}

	// No shield left: the next hit is fatal
	g.obstacles.add(groundObstacle(110))
	g.Step(core.NewInputFrame())
	if g.Mode() != ModeEnded {
		t.Error("second hit should end the run")
	}
}

func TestInvincibilityIgnoresHits(t *testing.T) {
	g := newTestGame(t, quietConfig(), Options{})
	startGame(t, g)

	g.mods.Activate(PowerUpInvincibility, g.frame, g.cfg.PowerUps)
	g.obstacles.add(groundObstacle(110))
	for range 5 {
		g.Step(core.NewInputFrame())
	}

	if g.Mode() != ModeRunning {
		t.Fatal("invincible player should not end the run")
	}
	if g.obstacles.Len() != 1 {
		t.Error("obstacle should survive contact with an invincible player")
	}
	if g.stats.NearMisses != 0 {
		t.Error("overlap must not count as a near miss")
	}
}

func TestRestartKeepsHigherStoredScore(t *testing.T) {
	scores := &fakeScores{best: 800}
	g := newTestGame(t, quietConfig(), Options{Scores: scores})
	if g.highScore != 800 {
		t.Fatalf("expected high score loaded at reset, got %d", g.highScore)
	}
	startGame(t, g)

	g.coinsCollected = 50
	g.obstacles.add(groundObstacle(110))
	g.Step(core.NewInputFrame())

	if g.Mode() != ModeEnded {
		t.Fatal("expected run to end")
	}
	if g.score != 500 {
		t.Fatalf("expected final score 500, got %d", g.score)
	}
	if len(scores.saves) != 0 {
		t.Errorf("lower score must not be saved, saves=%v", scores.saves)
	}

	g.Step(core.InputOf(core.ActionRestart))

	if g.Mode() != ModeRunning {
		t.Fatalf("restart should re-enter running, got %v", g.Mode())
	}
	if g.highScore != 800 || scores.best != 800 {
		t.Errorf("high score should stay 800, got game=%d store=%d", g.highScore, scores.best)
	}
	if g.score != 0 || g.coinsCollected != 0 || g.style != 0 || g.frame != 0 {
		t.Errorf("session counters should reset: score=%d coins=%d style=%d frame=%d",
			g.score, g.coinsCollected, g.style, g.frame)
	}
	if g.obstacles.Len()+g.coins.Len()+g.powerUps.Len()+g.particles.Len()+g.fireballs.Len() != 0 {
		t.Error("pools should be empty after restart")
	}
	if g.mods != NewModifiers() {
		t.Errorf("modifiers should reset, got %+v", g.mods)
	}
	if g.obstacleTimer != 0 || g.coinTimer != 0 {
		t.Error("spawn timers should reset")
	}
	if g.scheduler.Level() != 1 {
		t.Errorf("scheduler should reset, level=%d", g.scheduler.Level())
	}
}

func TestNewBestIsSaved(t *testing.T) {
	scores := &fakeScores{best: 100}
	g := newTestGame(t, quietConfig(), Options{Scores: scores})
	startGame(t, g)

	g.coinsCollected = 30
	g.obstacles.add(groundObstacle(110))
	g.Step(core.NewInputFrame())

	if len(scores.saves) != 1 || scores.saves[0] != 300 {
		t.Errorf("expected one save of 300, got %v", scores.saves)
	}
	if g.highScore != 300 {
		t.Errorf("expected high score 300, got %d", g.highScore)
	}
}

func TestHighScoreLoadFailureKeepsPlaying(t *testing.T) {
	scores := &fakeScores{loadErr: errors.New("disk gone")}
	g := newTestGame(t, quietConfig(), Options{Scores: scores})
	if g.highScore != 0 {
		t.Errorf("expected zero high score, got %d", g.highScore)
	}
	startGame(t, g)
	g.Step(core.NewInputFrame())
	if g.Mode() != ModeRunning {
		t.Error("load failure must not stop the session")
	}
}

func TestFallEndsRun(t *testing.T) {
	cfg := quietConfig()
	cfg.Player.GroundY = cfg.World.Height + 50
	g := newTestGame(t, cfg, Options{})
	startGame(t, g)

	g.Step(core.NewInputFrame())

	if g.Mode() != ModeEnded || g.endReason != EndFall {
		t.Errorf("expected fall, got mode=%v reason=%v", g.Mode(), g.endReason)
	}
}

func TestJumpPhysics(t *testing.T) {
	cues := &recordingCues{}
	g := newTestGame(t, quietConfig(), Options{Audio: cues})
	startGame(t, g)

	g.Step(core.InputOf(core.ActionJump))
	if !g.player.Jumping {
		t.Fatal("player should be airborne")
	}
	if g.player.Height != g.cfg.Player.AirborneHeight {
		t.Errorf("airborne height should be %v, got %v", g.cfg.Player.AirborneHeight, g.player.Height)
	}

	// A second press mid-air is ignored
	vy := g.player.VY
	g.Step(core.InputOf(core.ActionJump))
	if g.player.VY <= vy-1 {
		t.Error("double jump should be ignored")
	}

	for range 60 {
		g.Step(core.NewInputFrame())
		if g.player.Y > g.cfg.Player.GroundY {
			t.Fatalf("player sank below ground: y=%v", g.player.Y)
		}
	}
	if g.player.Jumping || g.player.Y != g.cfg.Player.GroundY {
		t.Errorf("player should have landed: y=%v jumping=%v", g.player.Y, g.player.Jumping)
	}
	if cues.count(core.CueJump) != 1 {
		t.Errorf("expected one jump cue, got %d", cues.count(core.CueJump))
	}
}

func TestSizeBoostRevertsOnExpiry(t *testing.T) {
	g := newTestGame(t, quietConfig(), Options{})
	startGame(t, g)

	g.mods.Activate(PowerUpSizeBoost, g.frame, g.cfg.PowerUps)
	g.Step(core.NewInputFrame())
	if g.player.Height != 60 {
		t.Errorf("boosted height should be 60, got %v", g.player.Height)
	}

	for range g.cfg.PowerUps.SizeBoostDuration {
		g.Step(core.NewInputFrame())
	}
	if g.mods.SizeBoost {
		t.Fatal("size boost should have expired")
	}
	g.Step(core.NewInputFrame())
	if g.player.Height != 40 {
		t.Errorf("height should revert to 40, got %v", g.player.Height)
	}
}

func TestFireballs(t *testing.T) {
	cues := &recordingCues{}
	g := newTestGame(t, quietConfig(), Options{Audio: cues})
	startGame(t, g)

	// Locked without the flower
	g.Step(core.InputOf(core.ActionFire))
	if g.fireballs.Len() != 0 {
		t.Fatal("fire should need the fireball power-up")
	}

	g.mods.Activate(PowerUpFireball, g.frame, g.cfg.PowerUps)
	for range 7 {
		g.Step(core.InputOf(core.ActionFire))
	}
	if g.fireballs.Len() != g.cfg.Projectiles.Cap {
		t.Errorf("expected %d fireballs, got %d", g.cfg.Projectiles.Cap, g.fireballs.Len())
	}
	if g.stats.FireballsFired != 7 {
		t.Errorf("expected 7 shots, got %d", g.stats.FireballsFired)
	}
	// Oldest evicted first: the leading fireball is the third one fired
	lead := g.fireballs.items[0].X
	for _, f := range g.fireballs.items[1:] {
		if f.X >= lead {
			t.Errorf("fireballs out of order: %v after %v", f.X, lead)
		}
	}
	if cues.count(core.CueFireball) != 7 {
		t.Errorf("expected 7 fireball cues, got %d", cues.count(core.CueFireball))
	}
}

func TestFireballDestroysObstacle(t *testing.T) {
	g := newTestGame(t, quietConfig(), Options{})
	startGame(t, g)

	g.mods.Activate(PowerUpFireball, g.frame, g.cfg.PowerUps)
	g.obstacles.add(groundObstacle(200))
	g.Step(core.InputOf(core.ActionFire))
	for range 10 {
		g.Step(core.NewInputFrame())
	}

	if g.Mode() != ModeRunning {
		t.Fatal("player should not have been hit")
	}
	if g.obstacles.Len() != 0 || g.fireballs.Len() != 0 {
		t.Errorf("hit should remove both: obstacles=%d fireballs=%d", g.obstacles.Len(), g.fireballs.Len())
	}
	if g.stats.FireballHits != 1 {
		t.Errorf("expected 1 fireball hit, got %d", g.stats.FireballHits)
	}
	if g.style != g.cfg.Style.Fireball {
		t.Errorf("expected style %d, got %d", g.cfg.Style.Fireball, g.style)
	}
}

func TestDodgedObstacleAwardsStyle(t *testing.T) {
	g := newTestGame(t, quietConfig(), Options{})
	startGame(t, g)

	g.obstacles.add(Obstacle{Kind: ObstacleFlying, X: 0, Y: 100, W: 30, H: 30})
	for range 10 {
		g.Step(core.NewInputFrame())
	}

	if g.obstacles.Len() != 0 {
		t.Fatal("obstacle past the left edge should be pruned")
	}
	if g.stats.ObstaclesDodged != 1 || g.style != g.cfg.Style.Dodge {
		t.Errorf("expected one dodge worth %d, got dodged=%d style=%d",
			g.cfg.Style.Dodge, g.stats.ObstaclesDodged, g.style)
	}
}

func TestPowerUpPickup(t *testing.T) {
	g := newTestGame(t, quietConfig(), Options{})
	startGame(t, g)

	g.powerUps.add(PowerUp{Kind: PowerUpMagnet, X: 104, Y: 300, Size: 30})
	g.Step(core.NewInputFrame())

	if g.powerUps.Len() != 0 {
		t.Fatal("power-up should be collected")
	}
	if g.mods.Active != PowerUpMagnet || !g.mods.Magnet {
		t.Errorf("magnet should be active, got %+v", g.mods)
	}
	want := g.cfg.PowerUps.PickupParticles + g.cfg.PowerUps.FeedbackParticles
	if g.particles.Len() != want {
		t.Errorf("expected %d particles, got %d", want, g.particles.Len())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, quietConfig(), Options{})
	startGame(t, g)

	g.Step(core.NewInputFrame())
	g.Step(core.InputOf(core.ActionPause))
	frame, elapsed := g.frame, g.elapsed

	for range 30 {
		g.Step(core.NewInputFrame())
	}
	if !g.State().Paused || g.frame != frame || g.elapsed != elapsed {
		t.Errorf("paused game advanced: frame=%d elapsed=%v", g.frame, g.elapsed)
	}

	g.Step(core.InputOf(core.ActionPause))
	if g.State().Paused || g.frame != frame+1 {
		t.Error("unpausing should resume on the same step")
	}
}

func TestMalformedEntitiesAreDropped(t *testing.T) {
	g := newTestGame(t, quietConfig(), Options{})
	startGame(t, g)

	g.obstacles.add(Obstacle{Kind: ObstacleGround, X: math.NaN(), Y: 340, W: 30, H: 30})
	g.obstacles.add(Obstacle{Kind: ObstacleKind(99), X: 500, Y: 340, W: 30, H: 30})
	g.coins.add(Coin{X: 500, Y: 250, Size: 0})
	g.powerUps.add(PowerUp{Kind: PowerUpNone, X: 500, Y: 250, Size: 30})
	g.particles.add(Particle{X: math.Inf(1), Life: 100})

	g.Step(core.NewInputFrame())

	if g.Mode() != ModeRunning {
		t.Fatal("malformed entities must not end the run")
	}
	if n := g.obstacles.Len() + g.coins.Len() + g.powerUps.Len() + g.particles.Len(); n != 0 {
		t.Errorf("expected malformed entities removed, %d left", n)
	}
	if g.stats.EntitiesDropped != 5 {
		t.Errorf("expected 5 dropped, got %d", g.stats.EntitiesDropped)
	}
}

func TestPoolCapsHold(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.PowerUps.SpawnChance = 0.5
	cfg.PowerUps.InvincibilityDuration = math.MaxInt32
	cfg.Difficulty.Interval = 200
	g := newTestGame(t, cfg, Options{})
	startGame(t, g)
	g.mods.Activate(PowerUpInvincibility, 0, g.cfg.PowerUps)

	for i := range 20000 {
		g.mods.Active = PowerUpFireball
		g.mods.ActiveUntil = g.frame + 10
		in := core.NewInputFrame()
		if i%3 == 0 {
			in.Set(core.ActionFire)
		}
		if i%40 == 0 {
			in.Set(core.ActionJump)
		}
		g.Step(in)

		switch {
		case g.obstacles.Len() > 10:
			t.Fatalf("frame %d: %d obstacles", g.frame, g.obstacles.Len())
		case g.coins.Len() > 15:
			t.Fatalf("frame %d: %d coins", g.frame, g.coins.Len())
		case g.particles.Len() > 50:
			t.Fatalf("frame %d: %d particles", g.frame, g.particles.Len())
		case g.powerUps.Len() > 3:
			t.Fatalf("frame %d: %d power-ups", g.frame, g.powerUps.Len())
		case g.fireballs.Len() > 5:
			t.Fatalf("frame %d: %d fireballs", g.frame, g.fireballs.Len())
		}
		if m := g.mods.Multiplier; m < 1 || m > 5 {
			t.Fatalf("frame %d: multiplier %d out of range", g.frame, m)
		}
		if want := MultiplierFor(g.mods.Combo, 10, 5); g.mods.Multiplier != want {
			t.Fatalf("frame %d: multiplier %d, want %d for combo %d", g.frame, g.mods.Multiplier, want, g.mods.Combo)
		}
	}

	if g.Mode() != ModeRunning {
		t.Fatalf("invincible run ended: %v", g.endReason)
	}
	if g.scheduler.Level() != 10 || g.scheduler.SpeedFactor() != 2.0 {
		t.Errorf("difficulty should be capped: level=%d speed=%v", g.scheduler.Level(), g.scheduler.SpeedFactor())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		cfg := config.DefaultRunnerConfig()
		cfg.PowerUps.SpawnChance = 0.01
		g := newTestGame(t, cfg, Options{})
		startGame(t, g)
		for i := range 3000 {
			in := core.NewInputFrame()
			if i%25 == 0 {
				in.Set(core.ActionJump)
			}
			in.Set(core.ActionFire)
			g.Step(in)
			if g.Mode() != ModeRunning {
				break
			}
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and input diverged: frames %d vs %d, scores %d vs %d", a.Frame, b.Frame, a.Score, b.Score)
	}
}

func TestScoreIsDerived(t *testing.T) {
	g := newTestGame(t, quietConfig(), Options{})
	startGame(t, g)

	// 66 frames at 60 Hz is 1.1s: 10 points
	for range 66 {
		g.Step(core.NewInputFrame())
	}
	if g.score != 10 {
		t.Errorf("expected 10 points after 1.1s, got %d", g.score)
	}

	g.coinsCollected = 3
	g.Step(core.NewInputFrame())
	if g.score != 41 {
		t.Errorf("expected 41, got %d", g.score)
	}
}

func TestStagedConfigAppliesOnRestart(t *testing.T) {
	g := newTestGame(t, quietConfig(), Options{})
	startGame(t, g)

	next := quietConfig()
	next.Physics.ScrollSpeed = 10
	g.UseConfig(next)
	if g.cfg.Physics.ScrollSpeed != 4 {
		t.Fatal("staged config must not touch the running session")
	}

	g.obstacles.add(groundObstacle(110))
	g.Step(core.NewInputFrame())
	g.Step(core.InputOf(core.ActionRestart))

	if g.cfg.Physics.ScrollSpeed != 10 {
		t.Errorf("restart should pick up the staged config, got %v", g.cfg.Physics.ScrollSpeed)
	}
}

func TestScrollSpeedIgnoresDifficulty(t *testing.T) {
	cfg := quietConfig()
	cfg.Difficulty.Interval = 1
	g := newTestGame(t, cfg, Options{})
	startGame(t, g)

	for range 20 {
		g.Step(core.NewInputFrame())
	}
	if g.scheduler.SpeedFactor() <= 1 {
		t.Fatalf("speed factor should have escalated, got %v", g.scheduler.SpeedFactor())
	}

	g.obstacles.add(Obstacle{Kind: ObstacleFlying, X: 700, Y: 200, W: 30, H: 30})
	g.coins.add(Coin{X: 600, Y: 150, Size: 20, Value: 1})
	g.powerUps.add(PowerUp{Kind: PowerUpShield, X: 650, Y: 150, Size: 30})
	g.Step(core.NewInputFrame())

	if x := g.obstacles.items[0].X; x != 696 {
		t.Errorf("obstacle x = %v, want 696", x)
	}
	if x := g.coins.items[0].X; x != 596 {
		t.Errorf("coin x = %v, want 596", x)
	}
	if x := g.powerUps.items[0].X; x != 646 {
		t.Errorf("power-up x = %v, want 646", x)
	}
	if s := g.Snapshot(); s.SpeedFactor != g.scheduler.SpeedFactor() {
		t.Errorf("snapshot speed factor = %v, want %v", s.SpeedFactor, g.scheduler.SpeedFactor())
	}
}

func TestMagnetPullsNearbyCoins(t *testing.T) {
	tests := []struct {
		name   string
		magnet bool
		x      float64
		want   float64
	}{
		{"within range", true, 250, 242},
		{"out of range", true, 500, 496},
		{"no magnet", false, 250, 246},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, quietConfig(), Options{})
			startGame(t, g)
			if tc.magnet {
				g.mods.Magnet = true
				g.mods.MagnetUntil = 1000
			}

			g.coins.add(Coin{X: tc.x, Y: 300, Size: 20, Value: 1})
			g.Step(core.NewInputFrame())

			if got := g.coins.items[0].X; got != tc.want {
				t.Errorf("coin x = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPatrolObstacleReflects(t *testing.T) {
	g := newTestGame(t, quietConfig(), Options{})
	startGame(t, g)

	g.obstacles.add(Obstacle{Kind: ObstaclePatrol, X: 700, Y: 338, VY: 3, W: 30, H: 30})

	g.Step(core.NewInputFrame())
	o := g.obstacles.items[0]
	if o.Y != 340 || o.VY != -3 {
		t.Fatalf("after crossing the lower bound: y=%v vy=%v, want 340/-3", o.Y, o.VY)
	}

	flips := 0
	prevVY := o.VY
	for range 100 {
		g.Step(core.NewInputFrame())
		o = g.obstacles.items[0]
		if o.Y < 200 || o.Y > 340 {
			t.Fatalf("frame %d: patrol y=%v left [200, 340]", g.frame, o.Y)
		}
		if o.VY != prevVY {
			flips++
			prevVY = o.VY
		}
	}
	if flips == 0 {
		t.Error("patrol obstacle never turned at the upper bound")
	}
	if g.Mode() != ModeRunning {
		t.Fatalf("run ended unexpectedly: %v", g.endReason)
	}
}

func TestObstacleKindWeights(t *testing.T) {
	g := newTestGame(t, quietConfig(), Options{})

	const draws = 10000
	counts := map[ObstacleKind]int{}
	for range draws {
		counts[g.pickObstacleKind()]++
	}

	want := map[ObstacleKind]float64{
		ObstacleGround: 0.6,
		ObstacleFlying: 0.2,
		ObstaclePatrol: 0.2,
	}
	for kind, share := range want {
		got := float64(counts[kind]) / draws
		if math.Abs(got-share) > 0.03 {
			t.Errorf("%v share = %.3f, want %.2f", kind, got, share)
		}
	}
	if len(counts) != 3 {
		t.Errorf("unexpected kinds drawn: %v", counts)
	}
}

func TestPowerUpSpawnStopsAtCap(t *testing.T) {
	cfg := quietConfig()
	cfg.PowerUps.SpawnChance = 1
	g := newTestGame(t, cfg, Options{})
	startGame(t, g)

	for i := 1; i <= 10; i++ {
		g.Step(core.NewInputFrame())
		if want := min(i, 3); g.powerUps.Len() != want {
			t.Fatalf("frame %d: %d power-ups, want %d", i, g.powerUps.Len(), want)
		}
	}
}

func TestNearMissCreditedOncePerObstacle(t *testing.T) {
	g := newTestGame(t, quietConfig(), Options{})
	startGame(t, g)

	// The obstacle passes straight through, so it is within near-miss
	// distance on both sides of the overlap.
	g.mods.Activate(PowerUpInvincibility, g.frame, g.cfg.PowerUps)
	g.obstacles.add(groundObstacle(200))
	for range 50 {
		g.Step(core.NewInputFrame())
	}

	if g.obstacles.Len() != 1 {
		t.Fatalf("obstacle should still be on screen, got %d", g.obstacles.Len())
	}
	if !g.obstacles.items[0].Grazed {
		t.Error("obstacle should be marked grazed")
	}
	if g.stats.NearMisses != 1 {
		t.Errorf("near misses = %d, want 1", g.stats.NearMisses)
	}
	if want := g.cfg.Style.NearMiss; g.style != want {
		t.Errorf("style = %d, want %d", g.style, want)
	}
}
