package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const battleFile = "battle.yaml"

// LoadBattle loads the tank battle configuration.
// Search order: customPath -> ~/.arcade/configs/battle.yaml -> ./configs/battle.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
// An explicit file that fails Validate is an error; a search-path file that
// fails to parse or validate is skipped.
func LoadBattle(customPath string) (BattleConfig, error) {
	cfg := DefaultBattleConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultBattleConfig(), fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(battleFile), filepath.Join("configs", battleFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultBattleConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBattleYAML, &cfg); err != nil {
		return DefaultBattleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyBattlePreset modifies the config based on a difficulty preset.
func ApplyBattlePreset(cfg *BattleConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Enemy.MaxActive = 3
		cfg.Enemy.FireChance = 0.03
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Enemy.MaxActive = 6
		cfg.Enemy.FireChance = 0.08
	}
}
