package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default game config",
	Long: `Print the built-in YAML config for a game, "invaders" if none is given.
Save it to ~/.arcade/configs/invaders.yaml and edit it to change the
defaults, or pass the file to 'play --config'.

Examples:
  invaders config
  invaders config > ~/.arcade/configs/invaders.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := "invaders"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'invaders list' to see available games", gameID)
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("game %q has no config file", gameID)
	}

	_, err := cmd.OutOrStdout().Write(data)
	return err
}
