package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Settings are the command-line wide options. They come, in increasing
// precedence, from defaults, ~/.arcade/invaders.yaml, INVADERS_*
// environment variables and flags.
type Settings struct {
	FPS      int    `mapstructure:"fps"`
	Seed     int64  `mapstructure:"seed"`
	DBPath   string `mapstructure:"db"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

// SettingsKeys lists every settings key, for flag binding.
var SettingsKeys = []string{"fps", "seed", "db", "log_level", "log_file"}

// NewViper returns a viper instance with the settings defaults, the
// INVADERS_ environment prefix and the settings file search path.
// An explicit file overrides the search path.
func NewViper(file string) *viper.Viper {
	v := viper.New()

	v.SetDefault("fps", core.DefaultTickRate)
	v.SetDefault("seed", 0)
	v.SetDefault("db", "~/.arcade/invaders.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "~/.arcade/invaders.log")

	v.SetEnvPrefix("INVADERS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		return v
	}

	v.SetConfigName("invaders")
	v.SetConfigType("yaml")
	if dir, err := arcadeDir(); err == nil {
		v.AddConfigPath(dir)
	}
	return v
}

// LoadSettings reads the settings file, if any, and decodes v.
// A missing file in the search path is not an error; a missing
// explicit file is.
func LoadSettings(v *viper.Viper) (Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("config: cannot read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: cannot decode settings: %w", err)
	}
	if s.FPS <= 0 {
		return Settings{}, fmt.Errorf("config: fps must be positive, got %d", s.FPS)
	}
	return s, nil
}
