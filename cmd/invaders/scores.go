package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Without a game, show totals for every game. With a game, display its top
high scores followed by totals over every recorded run.

Examples:
  invaders scores
  invaders scores invaders_endless --limit 25
  invaders scores invaders --all
  invaders scores invaders --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded run instead of the top scores")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		if flagScoresClear {
			return fmt.Errorf("--clear needs a game, e.g. 'invaders scores invaders --clear'")
		}
		return runScoresSummary(cmd)
	}
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'invaders list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", game.Title())
		return nil
	}

	var scores []storage.Run
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", game.Title())
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'invaders play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-4s  %-4s  %-12s  %s\n", "Rank", "Score", "Wave", "Acc", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-4s  %-4s  %-12s  %s\n", "----", "-----", "----", "---", "------", "----")

	for i, run := range scores {
		player := run.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-8d  %-4d  %3d%%  %-12s  %s\n",
			i+1, run.Score, run.Wave, int(run.Accuracy()*100), player,
			run.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Games: %d  Average: %.0f  Best wave: %d  Accuracy: %d%%\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestWave, int(stats.Accuracy()*100))
	return nil
}

// runScoresSummary prints one line of totals per registered game.
func runScoresSummary(cmd *cobra.Command) error {
	store, err := storage.Open(settings.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Totals")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-18s  %-5s  %-8s  %-8s  %-4s  %-4s  %s\n", "Game", "Games", "Best", "Average", "Wave", "Acc", "Last played")
	fmt.Fprintf(out, "  %-18s  %-5s  %-8s  %-8s  %-4s  %-4s  %s\n", "----", "-----", "----", "-------", "----", "---", "-----------")

	for _, info := range registry.List() {
		stats, ok := all[info.ID]
		if !ok {
			fmt.Fprintf(out, "  %-18s  %-5d  %-8s  %-8s  %-4s  %-4s  %s\n", info.ID, 0, "-", "-", "-", "-", "never")
			continue
		}
		fmt.Fprintf(out, "  %-18s  %-5d  %-8d  %-8.0f  %-4d  %3d%%  %s\n",
			info.ID, stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestWave,
			int(stats.Accuracy()*100), stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'invaders scores <game>' for the high score table.")
	return nil
}
