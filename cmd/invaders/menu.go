package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Left/Right to pick a difficulty and
Enter to start. After a game you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  invaders menu
  invaders menu --fps 60
  invaders menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	opts := tui.Options{Store: store, Logger: logger}

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if ds, ok := game.(registry.DifficultySetter); ok {
			if err := ds.SetDifficulty(string(menuResult.Difficulty)); err != nil {
				logger.Warn("cannot set difficulty", "err", err)
			}
		}

		// Quitting a game, or leaving it with Back, returns to the menu.
		if _, err := tui.Run(game, cfg, opts); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
