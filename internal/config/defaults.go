package config

import (
	_ "embed"
)

//go:embed defaults/squish.yaml
var defaultSquishYAML []byte

// DefaultSquishConfig returns the default engine configuration.
// Kept in sync with defaults/squish.yaml; used as the hardcoded fallback
// if the embedded file fails to parse.
func DefaultSquishConfig() SquishConfig {
	return SquishConfig{
		Engine: EngineConfig{
			EnemyEveryTicks: 8,
			EggHatchTicks:   12,
		},
		Rewards: RewardsConfig{
			Regular: 100,
			Egg:     50,
			Pusher:  250,
		},
		Endless: EndlessConfig{
			Width:          32,
			Height:         20,
			BlockCoverage:  0.35,
			InitialEnemies: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				CadenceReduction: 5,
				ExtraEnemies:     4,
			},
		},
	}
}
