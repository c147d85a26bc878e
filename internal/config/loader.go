package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadInvaders loads Space Invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml ->
// ./configs/invaders.yaml -> embedded default -> DefaultInvadersConfig.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	cfg, err := load(customPath, "invaders.yaml", defaultInvadersYAML, DefaultInvadersConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load walks the search order for filename. Only an explicit customPath
// surfaces read or parse errors; the implicit locations fall through.
// Decoding starts from the hardcoded defaults so partial files only
// override the keys they set.
func load[T any](customPath, filename string, embedded []byte, defaults func() T) (T, error) {
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// arcadeDir returns ~/.arcade, where user configs, scores and logs live.
func arcadeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".arcade"), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir, err := arcadeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}
