package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSquish loads the engine configuration.
// Search order: customPath -> ~/.squish/config.yaml -> ./configs/squish.yaml
// -> embedded default.
func LoadSquish(customPath string) (SquishConfig, error) {
	var cfg SquishConfig

	// A custom path must load or the command fails loudly.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return fillDefaults(cfg), nil
	}

	// Try user config directory.
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return fillDefaults(cfg), nil
			}
		}
	}

	// Try local configs directory.
	if data, err := os.ReadFile("configs/squish.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return fillDefaults(cfg), nil
		}
	}

	// Use embedded default YAML.
	if err := yaml.Unmarshal(defaultSquishYAML, &cfg); err != nil {
		return DefaultSquishConfig(), nil
	}
	return fillDefaults(cfg), nil
}

// userConfigPath returns the path of a config file under ~/.squish, or ""
// when the home directory cannot be resolved.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".squish", name)
}

// fillDefaults replaces zero values with the embedded defaults so a partial
// user config still produces a playable engine.
func fillDefaults(cfg SquishConfig) SquishConfig {
	def := DefaultSquishConfig()

	if cfg.Engine.EnemyEveryTicks <= 0 {
		cfg.Engine.EnemyEveryTicks = def.Engine.EnemyEveryTicks
	}
	if cfg.Engine.EggHatchTicks <= 0 {
		cfg.Engine.EggHatchTicks = def.Engine.EggHatchTicks
	}
	if cfg.Rewards.Regular <= 0 {
		cfg.Rewards.Regular = def.Rewards.Regular
	}
	if cfg.Rewards.Egg <= 0 {
		cfg.Rewards.Egg = def.Rewards.Egg
	}
	if cfg.Rewards.Pusher <= 0 {
		cfg.Rewards.Pusher = def.Rewards.Pusher
	}
	if cfg.Endless.Width < 8 {
		cfg.Endless.Width = def.Endless.Width
	}
	if cfg.Endless.Height < 8 {
		cfg.Endless.Height = def.Endless.Height
	}
	if cfg.Endless.BlockCoverage <= 0 || cfg.Endless.BlockCoverage >= 0.8 {
		cfg.Endless.BlockCoverage = def.Endless.BlockCoverage
	}
	if cfg.Endless.InitialEnemies <= 0 {
		cfg.Endless.InitialEnemies = def.Endless.InitialEnemies
	}
	if cfg.Difficulty.Progression.MaxAt <= 0 {
		cfg.Difficulty.Progression.MaxAt = def.Difficulty.Progression.MaxAt
	}
	return cfg
}
