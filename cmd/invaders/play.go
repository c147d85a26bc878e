package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game, "invaders" if none is given.

Controls:
  Left/Right, A/D  - Move the cannon
  Space/Up/W       - Fire
  P/Esc            - Pause
  R                - Restart (after the game ends)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, slower fire, starts at the lowest level
  normal - Starts at 30% difficulty, progresses to max
  hard   - 2 lives, faster fire, starts at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  invaders play
  invaders play invaders_endless
  invaders play --difficulty hard
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = settings.FPS
	cfg.Seed = settings.Seed
	return cfg
}

// openStore opens the scores database, or returns nil with a warning so
// the game still runs without it.
func openStore() *storage.Store {
	store, err := storage.Open(settings.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "invaders"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'invaders list' to see available games", gameID)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadInvaders(flagConfig); err != nil {
			return err
		}
	}

	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	outcome, err := tui.Run(game, terminalConfig(), tui.Options{Store: store, Logger: logger})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if run := outcome.LastRun; run != nil {
		fmt.Printf("Final score %d on wave %d, accuracy %d%%\n", run.Score, run.Wave, int(run.Accuracy()*100))
	}
	return nil
}
