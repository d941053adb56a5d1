package config

import "math"

// DifficultyManager derives per-level engine parameters from the
// progression curve: deeper levels get faster and more numerous enemies.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty (0.0 to 1.0) for a 0-indexed game
// level.
func (d *DifficultyManager) Level(gameLevel int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	progress := clampF(float64(gameLevel)/maxAt, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Cadence returns the enemy move cadence in ticks for a game level.
// Cadence shrinks as difficulty rises, never below 2.
func (d *DifficultyManager) Cadence(base int, gameLevel int) int {
	level := d.Level(gameLevel)
	result := base - int(level*float64(d.cfg.Scaling.CadenceReduction))
	if result < 2 {
		result = 2
	}
	return result
}

// Enemies returns the enemy count for a game level in endless mode:
// one more per level plus the difficulty bonus.
func (d *DifficultyManager) Enemies(base int, gameLevel int) int {
	level := d.Level(gameLevel)
	return base + gameLevel + int(level*float64(d.cfg.Scaling.ExtraEnemies))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
