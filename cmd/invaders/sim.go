package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagSimTicks      int
	flagSimShootEvery int
	flagSimEndless    bool
	flagSimConfig     string
	flagSimDifficulty string
	flagSimSave       bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted game without a terminal",
	Long: `Play a game headlessly with a simple autopilot that sweeps the cannon
across the field and fires at a fixed interval. The same seed and flags
always produce the same result and state hash.

Examples:
  invaders sim --seed 42
  invaders sim --seed 42 --ticks 5000 --endless --shoot-every 2
  invaders sim --difficulty hard --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3000, "Maximum platform ticks to play")
	simCmd.Flags().IntVar(&flagSimShootEvery, "shoot-every", 4, "Fire every n-th tick")
	simCmd.Flags().BoolVar(&flagSimEndless, "endless", false, "Play endless waves instead of the campaign")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the result in the scores database")
}

func runSim(cmd *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagSimDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadInvaders(flagSimConfig)
	if err != nil {
		return err
	}
	if flagSimDifficulty != "" {
		config.ApplyInvadersPreset(&cfg, preset)
	}

	mode := invaders.ModeCampaign
	if flagSimEndless {
		mode = invaders.ModeEndless
	}

	logger := newLogger(cmd.ErrOrStderr(), "invaders-sim")

	game := invaders.NewWithConfig(mode, cfg)
	runtime := core.DefaultConfig()
	runtime.TickRate = settings.FPS
	runtime.Seed = settings.Seed
	game.Reset(runtime)

	logger.Debug("simulation started", "game", game.ID(), "seed", runtime.Seed, "ticks", flagSimTicks)
	wave := 1
	ticks := invaders.NewAutopilot(flagSimShootEvery).Play(game, flagSimTicks, func(tick int, res core.StepResult) {
		if res.LifeLost {
			logger.Debug("life lost", "tick", tick, "lives", res.State.Lives, "score", res.State.Score)
		}
		if res.State.Wave != wave {
			wave = res.State.Wave
			logger.Debug("wave cleared", "tick", tick, "wave", wave, "score", res.State.Score)
		}
	})

	state := game.State()
	stats := game.Stats()
	snap := game.Snapshot()
	aliens := game.Field().Aliens()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "game:        %s\n", game.ID())
	fmt.Fprintf(out, "seed:        %d\n", runtime.Seed)
	fmt.Fprintf(out, "ticks:       %d (engine %d)\n", ticks, game.Field().Tick())
	fmt.Fprintf(out, "result:      %s\n", simResult(state))
	fmt.Fprintf(out, "score:       %d\n", game.Field().Score())
	fmt.Fprintf(out, "lives:       %d\n", state.Lives)
	fmt.Fprintf(out, "wave:        %d\n", state.Wave)
	fmt.Fprintf(out, "aliens left: %d\n", aliens.Alive())
	fmt.Fprintf(out, "shots:       %d (accuracy %d%%)\n", stats.Shots, int(stats.Accuracy()*100))
	fmt.Fprintf(out, "hash:        %016x\n", snap.Hash())

	if !flagSimSave {
		return nil
	}

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	rs := game.RunStats()
	run, err := store.SaveRun(storage.Run{
		GameID: game.ID(),
		Player: "sim",
		Score:  state.Score,
		Wave:   state.Wave,
		Shots:  rs.Shots,
		Hits:   rs.Hits,
	})
	if err != nil {
		return err
	}
	logger.Info("run saved", "run_id", run.RunID)

	stored, err := store.RunByID(run.RunID)
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("run %s missing after save", run.RunID)
	}
	fmt.Fprintf(out, "saved:       %s (score %d, wave %d, %s)\n",
		stored.RunID, stored.Score, stored.Wave, stored.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func simResult(s core.GameState) string {
	switch {
	case s.Won:
		return "won"
	case s.GameOver:
		return "lost"
	default:
		return "running"
	}
}
