// Package invaders adapts the Space Invaders engine to the arcade platform:
// it owns the random source, difficulty, pause/game-over state and the
// terminal rendering of the play field.
package invaders

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/engine"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // Formation cleared (campaign only)
)

// GameMode selects what happens when the formation is cleared.
type GameMode int

const (
	ModeCampaign GameMode = iota // One wave, clearing it wins
	ModeEndless                  // Waves repeat until the cannon is destroyed
)

// hitFlashTicks is how long the cannon flashes after losing a life.
const hitFlashTicks = 15

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game implements registry.Game for Space Invaders.
type Game struct {
	mode GameMode

	field *engine.PlayField
	rng   *rand.Rand

	state     string
	tickCount int
	hitTick   int // tick of the last life lost, 0 if none

	runtime    core.RuntimeConfig
	cfg        config.InvadersConfig
	fixedCfg   *config.InvadersConfig  // bypasses file loading when set
	preset     config.DifficultyPreset // overrides the package preset when set
	difficulty *config.DifficultyManager
	cfgErr     error // last config load failure, defaults were used

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

var (
	_ registry.Game             = (*Game)(nil)
	_ registry.Describer        = (*Game)(nil)
	_ registry.StatsReporter    = (*Game)(nil)
	_ registry.Resizer          = (*Game)(nil)
	_ registry.DifficultySetter = (*Game)(nil)
	_ registry.ConfigReporter   = (*Game)(nil)
)

// New creates a new campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new endless game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(mode GameMode, cfg config.InvadersConfig) *Game {
	return &Game{mode: mode, fixedCfg: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "invaders_endless"
	}
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Space Invaders (Endless)"
	}
	return "Space Invaders"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == ModeEndless {
		return "Wave after wave until the cannon falls"
	}
	return "Clear the formation to win"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		cfg, err := config.LoadInvaders(configPath)
		g.cfgErr = err
		if err != nil {
			cfg = config.DefaultInvadersConfig()
		}
		preset := difficultyPreset
		if g.preset != "" {
			preset = g.preset
		}
		if preset != "" {
			config.ApplyInvadersPreset(&cfg, preset)
		}
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.minScreenW = int(engine.FieldWidth) + 2
	g.minScreenH = fieldRows + hudRows + 3
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	g.field = nil
	g.tickCount = 0
	g.hitTick = 0

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.field = engine.NewWithRules(g.rules())
	g.field.SetLives(uint(max(g.cfg.Gameplay.Lives, 1))) //#nosec G115 -- lives is positive
	g.field.SetSpeed(g.speed())

	g.state = StatePlaying
}

// SetDifficulty selects a preset for this game only, taking precedence
// over SetDifficultyPreset. It is ignored by games built with NewWithConfig.
func (g *Game) SetDifficulty(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	g.preset = p
	return nil
}

// ConfigErr returns the error that made the last Reset fall back to the
// default config, or nil.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// Resize records a new screen size. The run continues; a screen that is
// too small freezes it until the window grows again.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
}

// Field exposes the engine for read-only inspection.
func (g *Game) Field() *engine.PlayField {
	return g.field
}

// Mode returns the game mode.
func (g *Game) Mode() GameMode {
	return g.mode
}

// progressScore is the score the difficulty curve follows. Negative
// engine scores count as zero.
func (g *Game) progressScore() int {
	return int(max(g.field.Score(), 0))
}

func (g *Game) speed() uint {
	score := 0
	if g.field != nil {
		score = g.progressScore()
	}
	return uint(g.difficulty.Speed(score, g.tickCount)) //#nosec G115 -- Speed is at least 1
}

// rules builds the engine rules for the current difficulty level.
func (g *Game) rules() engine.Rules {
	score := 0
	if g.field != nil {
		score = g.progressScore()
	}

	r := engine.DefaultRules()
	r.ShootProbability[engine.Hard] = g.difficulty.FireRate(g.cfg.Aliens.HardShoot, score, g.tickCount)
	r.ShootProbability[engine.Medium] = g.difficulty.FireRate(g.cfg.Aliens.MediumShoot, score, g.tickCount)
	r.ShootProbability[engine.Easy] = g.difficulty.FireRate(g.cfg.Aliens.EasyShoot, score, g.tickCount)
	r.MysteryMinPoints = g.cfg.Aliens.MysteryMinPoints
	r.MysteryMaxPoints = g.cfg.Aliens.MysteryMaxPoints
	return r
}

// instruction folds left/right input into one engine instruction.
// Pressing both cancels out.
func instruction(in core.InputFrame) engine.Instruction {
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		return engine.MoveLeft
	case right && !left:
		return engine.MoveRight
	default:
		return engine.InstructionNone
	}
}

// Step advances the game by one platform tick. The engine is stepped
// Speed() times; input only applies to the first of those steps.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.field.SetSpeed(g.speed())
	g.field.SetRules(g.rules())

	move := instruction(in)
	shoot := in.Has(core.ActionShoot)
	lifeLost := false

	for range g.field.Speed() {
		if !g.field.Step(move, shoot, g.rng) {
			lifeLost = true
			g.hitTick = g.tickCount
		}
		move, shoot = engine.InstructionNone, false

		if g.field.Dead() {
			g.state = StateGameOver
			break
		}
		if g.field.Cleared() {
			if g.mode == ModeEndless {
				g.field.NextWave()
				continue
			}
			g.state = StateWin
			break
		}
	}

	return core.StepResult{State: g.State(), LifeLost: lifeLost}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.field == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.progressScore(),
		Wave:     g.field.Wave(),
		Lives:    int(g.field.Lives()), //#nosec G115 -- lives is small
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Stats returns the engine counters for the current run.
func (g *Game) Stats() engine.Stats {
	if g.field == nil {
		return engine.Stats{}
	}
	return g.field.Stats()
}

// RunStats reports shots fired and aliens destroyed for score storage.
func (g *Game) RunStats() core.RunStats {
	s := g.Stats()
	return core.RunStats{
		Shots: int(s.Shots), //#nosec G115 -- counters stay far below MaxInt
		Hits:  int(s.Kills), //#nosec G115 -- counters stay far below MaxInt
	}
}

// Register the games with the registry
func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
	registry.Register("invaders_endless", func() registry.Game {
		return NewEndless()
	})
}
