package config

import "github.com/vovakirdan/tui-tetris/internal/core"

// GravityManager converts the current level into a fall interval.
type GravityManager struct {
	gravity TetrisGravity
	diff    DifficultyConfig
}

// NewGravityManager creates a gravity manager for the given config.
func NewGravityManager(cfg TetrisConfig) *GravityManager {
	return &GravityManager{
		gravity: cfg.Gravity,
		diff:    cfg.Difficulty,
	}
}

// IsEnabled returns whether gravity speeds up with the level.
func (g *GravityManager) IsEnabled() bool {
	return g.diff.Enabled
}

// FallEvery returns the number of simulation ticks per gravity step at the
// given level. The initial difficulty moves the starting interval toward the
// minimum; each level past the first shaves SpeedupPerLevel ticks when
// progression is enabled.
func (g *GravityManager) FallEvery(level int) int {
	base := g.gravity.FallEveryTicks
	floor := g.gravity.MinFallEveryTicks

	// Interpolate the starting interval from base toward floor
	start := base - int(g.diff.InitialLevel*float64(base-floor))

	if !g.diff.Enabled || level <= 1 {
		return core.Clamp(start, floor, base)
	}
	return core.Clamp(start-(level-1)*g.gravity.SpeedupPerLevel, floor, base)
}
