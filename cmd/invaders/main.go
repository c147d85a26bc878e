// invaders is a terminal Space Invaders built on a deterministic engine.
//
// Usage:
//
//	invaders list              - List available games
//	invaders play [game]       - Play a game (default: invaders)
//	invaders menu              - Start menu to pick games interactively
//	invaders serve             - Start SSH server for remote play
//	invaders scores [game]     - Show high scores for a game
//	invaders sim               - Run a headless scripted game
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/invaders.db)
//	--log-level <level>  - debug, info, warn or error
//	--settings <path>    - Settings file (default: ~/.arcade/invaders.yaml)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	flagSettings string

	// Loaded before every command runs.
	settings config.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `Defend the planet from a formation of 55 aliens, right in your terminal.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a scripted game without a terminal

Settings are read from ~/.arcade/invaders.yaml and INVADERS_* environment
variables; flags take precedence.

Examples:
  invaders play
  invaders play invaders_endless --difficulty hard
  invaders menu
  invaders serve --ssh :2222
  invaders sim --seed 42 --ticks 2000`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagSettings, "settings", "", "Path to settings YAML (default ~/.arcade/invaders.yaml)")
	flags.Int("fps", 30, "Tick rate (frames per second)")
	flags.Int64("seed", 0, "RNG seed (0 = random based on time)")
	flags.String("db", "~/.arcade/invaders.db", "Path to scores database")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-file", "~/.arcade/invaders.log", "Log file used while a game owns the terminal")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings merges the settings file, environment and flags.
func loadSettings(cmd *cobra.Command, _ []string) error {
	v := config.NewViper(flagSettings)
	for _, key := range config.SettingsKeys {
		flag := cmd.Flags().Lookup(strings.ReplaceAll(key, "_", "-"))
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}

	s, err := config.LoadSettings(v)
	if err != nil {
		return err
	}
	settings = s
	return nil
}

// newLogger builds a logger at the configured level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(settings.LogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", settings.LogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fileLogger logs to the configured log file so the game screen stays
// clean. It falls back to discarding output if the file cannot be opened.
// The returned function closes the file.
func fileLogger() (*log.Logger, func()) {
	path := expandHome(settings.LogFile)
	if path == "" {
		return newLogger(io.Discard, "invaders"), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newLogger(io.Discard, "invaders"), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard, "invaders"), func() {}
	}
	return newLogger(f, "invaders"), func() { f.Close() }
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
