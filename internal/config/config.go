// Package config provides YAML-based engine configuration loading and
// difficulty management for the squish platform.
package config

// SquishConfig contains all tunable parameters for the squish engine.
type SquishConfig struct {
	Engine     EngineConfig     `yaml:"engine"`
	Rewards    RewardsConfig    `yaml:"rewards"`
	Endless    EndlessConfig    `yaml:"endless"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// EngineConfig defines tick-level simulation parameters.
type EngineConfig struct {
	// EnemyEveryTicks is how many engine ticks pass between enemy turns.
	EnemyEveryTicks int `yaml:"enemy_every_ticks"`
	// EggHatchTicks is the default hatch countdown, in enemy turns.
	EggHatchTicks int `yaml:"egg_hatch_ticks"`
}

// RewardsConfig defines the fixed score reward per squished enemy kind.
type RewardsConfig struct {
	Regular int `yaml:"regular"`
	Egg     int `yaml:"egg"`
	Pusher  int `yaml:"pusher"`
}

// EndlessConfig defines random field generation for endless mode.
type EndlessConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	BlockCoverage  float64 `yaml:"block_coverage"`
	InitialEnemies int     `yaml:"initial_enemies"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	// CadenceReduction is how many ticks come off the enemy cadence at
	// max difficulty (faster enemies).
	CadenceReduction int `yaml:"cadence_reduction"`
	// ExtraEnemies is how many enemies are added at max difficulty.
	ExtraEnemies int `yaml:"extra_enemies"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
