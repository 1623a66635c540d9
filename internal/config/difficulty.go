package config

import (
	"fmt"
	"math"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// minInterval keeps hard presets on very fast configs playable.
const minInterval = 20 * time.Millisecond

// ParseDifficulty converts a flag value into a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// IntervalScale returns the base interval multiplier for a preset.
func IntervalScale(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.7
	default:
		return 1.0
	}
}

// ApplySnakePreset scales the base tick interval for a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	scaled := time.Duration(math.Round(float64(cfg.Timing.BaseInterval) * IntervalScale(preset)))
	cfg.Timing.BaseInterval = max(scaled, minInterval)
}
