package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Options carries the optional collaborators of a game session.
type Options struct {
	Store  *storage.Store // nil disables score saving
	Logger *log.Logger    // nil falls back to log.Default()
	Player string         // recorded with saved runs, empty for local play
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	log        *log.Logger
	keys       *KeyMapper
	config     core.RuntimeConfig
	fixedSeed  bool // keep the configured seed across restarts
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
	lastRun    *storage.Run
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		log:        logger.With("game", game.ID()),
		keys:       NewKeyMapper(),
		config:     cfg,
		fixedSeed:  fixedSeed,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// The game is a pointer, so Reset sticks despite the value receiver.
	m.game.Reset(m.config)
	if cr, ok := m.game.(registry.ConfigReporter); ok {
		if err := cr.ConfigErr(); err != nil {
			m.log.Warn("using default config", "err", err)
		}
	}
	m.log.Debug("game started", "seed", m.config.Seed, "tick_rate", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Actions accumulate in the input
// frame until the next tick consumes them.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	}

	// Back leaves the game once it is over or paused.
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		m.saveRun()
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.log.Debug("game restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.LifeLost {
		m.log.Debug("life lost", "lives", m.gameState.Lives, "score", m.gameState.Score, "wave", m.gameState.Wave)
	}

	if m.gameState.GameOver {
		m.saveRun()
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current run once per game. Runs that scored
// nothing are not kept.
func (m *Model) saveRun() {
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true

	run := storage.Run{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  m.gameState.Score,
		Wave:   max(m.gameState.Wave, 1),
	}
	if sr, ok := m.game.(registry.StatsReporter); ok {
		stats := sr.RunStats()
		run.Shots = stats.Shots
		run.Hits = stats.Hits
	}

	if m.opts.Store == nil {
		m.lastRun = &run
		return
	}

	saved, err := m.opts.Store.SaveRun(run)
	if err != nil {
		m.log.Error("cannot save run", "err", err)
		return
	}
	m.lastRun = &saved
	m.log.Info("run saved", "run_id", saved.RunID, "score", saved.Score, "wave", saved.Wave)
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// LastRun returns the most recently finished run, or nil.
func (m Model) LastRun() *storage.Run {
	return m.lastRun
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("cannot save screenshot", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Outcome is how a local game session ended.
type Outcome struct {
	LastRun    *storage.Run // nil if nothing was recorded
	BackToMenu bool
}

// Run starts the Bubble Tea program for game in the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Outcome, error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Outcome{}, err
	}
	m, ok := final.(Model)
	if !ok {
		return Outcome{}, nil
	}
	return Outcome{LastRun: m.LastRun(), BackToMenu: m.BackToMenu()}, nil
}
