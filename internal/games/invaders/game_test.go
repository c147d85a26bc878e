package invaders

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/engine"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     12345,
	}
}

// quietConfig returns a config where aliens never fire and difficulty
// never changes.
func quietConfig() config.InvadersConfig {
	cfg := config.DefaultInvadersConfig()
	cfg.Aliens.HardShoot = 0
	cfg.Aliens.MediumShoot = 0
	cfg.Aliens.EasyShoot = 0
	cfg.Difficulty.Enabled = false
	return cfg
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i%11 == 0:
			inputSequence[i].Set(core.ActionShoot)
		case i%5 < 2:
			inputSequence[i].Set(core.ActionLeft)
		default:
			inputSequence[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := NewWithConfig(ModeEndless, config.DefaultInvadersConfig())
		g.Reset(testRuntime())
		for _, in := range inputSequence {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.CannonX != snap2.CannonX {
		t.Errorf("Determinism failed: cannon positions differ. Run1=%d, Run2=%d", snap1.CannonX, snap2.CannonX)
	}
}

func TestGameReset(t *testing.T) {
	cfg := quietConfig()
	cfg.Gameplay.Lives = 5

	g := NewWithConfig(ModeCampaign, cfg)
	g.Reset(testRuntime())

	state := g.State()
	if state.Score != 0 || state.Lives != 5 || state.Wave != 1 {
		t.Errorf("fresh state = %+v", state)
	}
	if state.GameOver || state.Paused {
		t.Errorf("fresh game should be running, got %+v", state)
	}

	aliens := g.Field().Aliens()
	if aliens.Alive() != 55 {
		t.Errorf("aliens = %d, want 55", aliens.Alive())
	}
}

func TestGamePause(t *testing.T) {
	g := NewWithConfig(ModeCampaign, quietConfig())
	g.Reset(testRuntime())

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	tick := g.Field().Tick()
	x := g.Field().Cannon().Position().X
	for range 10 {
		g.Step(press(core.ActionLeft, core.ActionShoot))
	}
	if g.Field().Tick() != tick || g.Field().Cannon().Position().X != x {
		t.Error("paused game should not advance")
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("game should resume")
	}
}

func TestGameInput(t *testing.T) {
	g := NewWithConfig(ModeCampaign, quietConfig())
	g.Reset(testRuntime())
	x := g.Field().Cannon().Position().X

	g.Step(press(core.ActionLeft))
	if got := g.Field().Cannon().Position().X; got != x-1 {
		t.Errorf("Left moved cannon to %d, want %d", got, x-1)
	}

	g.Step(press(core.ActionLeft, core.ActionRight))
	if got := g.Field().Cannon().Position().X; got != x-1 {
		t.Errorf("Left+Right moved cannon to %d, want %d", got, x-1)
	}

	g.Step(press(core.ActionShoot))
	if n := len(g.Field().Bullets()); n != 1 {
		t.Errorf("bullets = %d after shooting, want 1", n)
	}
}

func TestGameSpeedAppliesInputOnce(t *testing.T) {
	cfg := quietConfig()
	cfg.Difficulty.InitialLevel = 1.0
	cfg.Difficulty.Scaling.SpeedMultiplier = 2.0

	g := NewWithConfig(ModeCampaign, cfg)
	g.Reset(testRuntime())
	x := g.Field().Cannon().Position().X

	g.Step(press(core.ActionLeft, core.ActionShoot))

	if g.Field().Speed() != 3 {
		t.Fatalf("speed = %d, want 3", g.Field().Speed())
	}
	if g.Field().Tick() != 3 {
		t.Errorf("engine ticks = %d, want 3", g.Field().Tick())
	}
	if got := g.Field().Cannon().Position().X; got != x-1 {
		t.Errorf("cannon x = %d, want %d", got, x-1)
	}
	if g.Field().Stats().Shots != 1 {
		t.Errorf("shots = %d, want 1", g.Field().Stats().Shots)
	}
}

func TestGameScoreClampedForPlatform(t *testing.T) {
	g := NewWithConfig(ModeCampaign, quietConfig())
	g.Reset(testRuntime())

	// From the far left edge a shot misses every alien and bunker.
	for range 40 {
		g.Step(press(core.ActionLeft))
	}
	g.Step(press(core.ActionShoot))
	for range int(engine.FieldHeight) + 5 {
		g.Step(core.NewInputFrame())
	}

	if g.Field().Score() != -1 {
		t.Fatalf("engine score = %d, want -1", g.Field().Score())
	}
	if g.State().Score != 0 {
		t.Errorf("platform score = %d, want 0", g.State().Score)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	cfg := quietConfig()
	cfg.Aliens.HardShoot = 1
	cfg.Aliens.MediumShoot = 1
	cfg.Aliens.EasyShoot = 1

	g := NewWithConfig(ModeCampaign, cfg)
	g.Reset(testRuntime())

	lostLives := 0
	for i := 0; !g.State().GameOver; i++ {
		if i > 1000 {
			t.Fatal("game never ended under constant fire")
		}
		if g.Step(core.NewInputFrame()).LifeLost {
			lostLives++
		}
	}

	state := g.State()
	if state.Won || state.Lives != 0 {
		t.Errorf("end state = %+v, want lost with no lives", state)
	}
	if lostLives == 0 {
		t.Error("no tick reported a lost life")
	}

	g.Step(press(core.ActionRestart))
	if g.State().GameOver || g.State().Lives != cfg.Gameplay.Lives {
		t.Errorf("after restart state = %+v", g.State())
	}
}

// sweep plays with an autopilot firing every tick until done reports
// true or the tick budget runs out.
func sweep(t *testing.T, g *Game, done func() bool) {
	t.Helper()

	pilot := NewAutopilot(1)
	for i := 0; !done(); i++ {
		if i > 20000 {
			t.Fatal("sweep did not finish")
		}
		g.Step(pilot.Next(g))
	}
}

func TestCampaignWin(t *testing.T) {
	g := NewWithConfig(ModeCampaign, quietConfig())
	g.Reset(testRuntime())

	sweep(t, g, func() bool { return g.State().GameOver })

	state := g.State()
	if !state.Won {
		t.Fatalf("campaign ended without a win: %+v", state)
	}
	if g.Field().Stats().Kills != 55 {
		t.Errorf("kills = %d, want 55", g.Field().Stats().Kills)
	}
	if g.RunStats().Hits != 55 {
		t.Errorf("RunStats().Hits = %d, want 55", g.RunStats().Hits)
	}
}

func TestEndlessNextWave(t *testing.T) {
	g := NewWithConfig(ModeEndless, quietConfig())
	g.Reset(testRuntime())

	sweep(t, g, func() bool { return g.State().Wave > 1 })

	state := g.State()
	if state.GameOver {
		t.Fatalf("endless game ended: %+v", state)
	}
	aliens := g.Field().Aliens()
	if aliens.Alive() != 55 {
		t.Errorf("new wave has %d aliens, want 55", aliens.Alive())
	}
	if len(g.Field().Bullets()) != 0 {
		t.Errorf("new wave kept %d bullets", len(g.Field().Bullets()))
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := NewWithConfig(ModeCampaign, quietConfig())
	rt := testRuntime()
	rt.ScreenW, rt.ScreenH = 40, 12
	g.Reset(rt)

	g.Step(press(core.ActionShoot))
	if g.Field().Tick() != 0 {
		t.Error("game should not advance on a small screen")
	}

	screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := NewWithConfig(ModeCampaign, quietConfig())
	g.Reset(testRuntime())

	g.Step(press(core.ActionShoot))
	g.Resize(40, 12)
	g.Step(press(core.ActionShoot))
	if g.Field().Tick() != 1 {
		t.Errorf("ticks = %d, want 1 while too small", g.Field().Tick())
	}

	g.Resize(100, 40)
	g.Step(press(core.ActionShoot))
	if g.Field().Tick() != 2 {
		t.Errorf("ticks = %d, want 2 after growing", g.Field().Tick())
	}
	if got := g.RunStats().Shots; got != 2 {
		t.Errorf("RunStats().Shots = %d, want 2", got)
	}
}

func TestRender(t *testing.T) {
	g := NewWithConfig(ModeCampaign, quietConfig())
	rt := testRuntime()
	g.Reset(rt)
	g.Step(press(core.ActionShoot))

	screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 0", "Wave: 1", "♥♥♥"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if !strings.ContainsAny(out, "█▀▄") {
		t.Error("render has no field pixels")
	}

	g.Step(press(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}

func TestSetDifficulty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	g := New()
	if err := g.SetDifficulty("impossible"); err == nil {
		t.Error("SetDifficulty accepted an unknown preset")
	}

	tests := []struct {
		preset string
		lives  int
	}{
		{"easy", 5},
		{"hard", 2},
		{"normal", 3},
	}
	for _, tc := range tests {
		t.Run(tc.preset, func(t *testing.T) {
			g := New()
			if err := g.SetDifficulty(tc.preset); err != nil {
				t.Fatalf("SetDifficulty(%s) error = %v", tc.preset, err)
			}
			g.Reset(testRuntime())
			if g.State().Lives != tc.lives {
				t.Errorf("%s lives = %d, want %d", tc.preset, g.State().Lives, tc.lives)
			}
		})
	}
}

func TestSetDifficultyOverridesPackagePreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })

	shared := New()
	shared.Reset(testRuntime())
	if shared.State().Lives != 2 {
		t.Errorf("package preset lives = %d, want 2", shared.State().Lives)
	}

	own := New()
	if err := own.SetDifficulty("easy"); err != nil {
		t.Fatal(err)
	}
	own.Reset(testRuntime())
	if own.State().Lives != 5 {
		t.Errorf("per-game preset lives = %d, want 5", own.State().Lives)
	}
}

func TestConfigErrFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(testRuntime())
	if g.ConfigErr() == nil {
		t.Fatal("ConfigErr() = nil for a missing config file")
	}
	if g.State().Lives != config.DefaultInvadersConfig().Gameplay.Lives {
		t.Errorf("lives = %d, want the default", g.State().Lives)
	}

	SetConfigPath("")
	g.Reset(testRuntime())
	if err := g.ConfigErr(); err != nil {
		t.Errorf("ConfigErr() = %v after a clean reset", err)
	}
}

func TestAutopilotPlay(t *testing.T) {
	run := func() (int, uint64) {
		g := NewWithConfig(ModeCampaign, config.DefaultInvadersConfig())
		g.Reset(testRuntime())
		observed := 0
		ticks := NewAutopilot(3).Play(g, 500, func(int, core.StepResult) { observed++ })
		if observed != ticks {
			t.Errorf("observed %d steps, played %d", observed, ticks)
		}
		snap := g.Snapshot()
		return ticks, snap.Hash()
	}

	ticks1, hash1 := run()
	ticks2, hash2 := run()
	if ticks1 != ticks2 || hash1 != hash2 {
		t.Errorf("autopilot runs differ: (%d, %d) vs (%d, %d)", ticks1, hash1, ticks2, hash2)
	}
	if ticks1 < 1 || ticks1 > 500 {
		t.Errorf("ticks = %d, want 1..500", ticks1)
	}
}

func TestAutopilotShootEvery(t *testing.T) {
	g := NewWithConfig(ModeCampaign, quietConfig())
	g.Reset(testRuntime())

	pilot := NewAutopilot(4)
	shots := 0
	for range 12 {
		if pilot.Next(g).Has(core.ActionShoot) {
			shots++
		}
	}
	if shots != 3 {
		t.Errorf("shots = %d in 12 ticks, want 3", shots)
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"invaders", "invaders_endless"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}
