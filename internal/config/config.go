// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// minBoardWidth is the narrowest board a horizontal I piece fits on.
const minBoardWidth = 4

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Board      TetrisBoard      `yaml:"board"`
	Gravity    TetrisGravity    `yaml:"gravity"`
	Scoring    TetrisScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisBoard defines the playfield size in cells.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisGravity defines how fast pieces fall, in simulation ticks per row.
type TetrisGravity struct {
	FallEveryTicks    int `yaml:"fall_every_ticks"`     // Ticks per row at level 1
	MinFallEveryTicks int `yaml:"min_fall_every_ticks"` // Fastest allowed gravity
	SpeedupPerLevel   int `yaml:"speedup_per_level"`    // Ticks removed per level
}

// TetrisScoring defines level progression.
type TetrisScoring struct {
	RowsPerLevel int `yaml:"rows_per_level"` // 0 keeps the level at 1
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`       // Whether gravity speeds up with level
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
}

// Validate checks that the configuration can drive a game.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < minBoardWidth || c.Board.Height <= 0 {
		return fmt.Errorf("%w: board %dx%d (need width >= %d and height > 0)",
			ErrInvalidConfig, c.Board.Width, c.Board.Height, minBoardWidth)
	}
	if c.Gravity.FallEveryTicks <= 0 {
		return fmt.Errorf("%w: fall_every_ticks must be positive, got %d",
			ErrInvalidConfig, c.Gravity.FallEveryTicks)
	}
	if c.Gravity.MinFallEveryTicks <= 0 || c.Gravity.MinFallEveryTicks > c.Gravity.FallEveryTicks {
		return fmt.Errorf("%w: min_fall_every_ticks must be in [1, %d], got %d",
			ErrInvalidConfig, c.Gravity.FallEveryTicks, c.Gravity.MinFallEveryTicks)
	}
	if c.Gravity.SpeedupPerLevel < 0 {
		return fmt.Errorf("%w: speedup_per_level must not be negative, got %d",
			ErrInvalidConfig, c.Gravity.SpeedupPerLevel)
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		return fmt.Errorf("%w: initial_level must be in [0, 1], got %g",
			ErrInvalidConfig, c.Difficulty.InitialLevel)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

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
