// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Timing  TimingConfig  `yaml:"timing"`
	Snake   StartConfig   `yaml:"snake"`
	Food    FoodConfig    `yaml:"food"`
	Effects EffectsConfig `yaml:"effects"`
	Rules   RulesConfig   `yaml:"rules"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the tick cadence.
type TimingConfig struct {
	BaseInterval time.Duration `yaml:"base_interval"`
}

// StartConfig defines the snake at the start of a session.
type StartConfig struct {
	Start     [][2]int `yaml:"start"`     // Head first
	Direction string   `yaml:"direction"` // up, down, left or right
}

// FoodConfig defines food placement and kind odds.
type FoodConfig struct {
	Lifetime         time.Duration `yaml:"lifetime"` // Special food disappears after this long
	MaxSpawnAttempts int           `yaml:"max_spawn_attempts"`
	Weights          WeightsConfig `yaml:"weights"`
}

// WeightsConfig holds the relative odds of each food kind.
type WeightsConfig struct {
	Normal int `yaml:"normal"`
	Double int `yaml:"double"`
	Speed  int `yaml:"speed"`
	Phase  int `yaml:"phase"`
	Triple int `yaml:"triple"`
	Slow   int `yaml:"slow"`
}

// Sum returns the total weight.
func (w WeightsConfig) Sum() int {
	return w.Normal + w.Double + w.Speed + w.Phase + w.Triple + w.Slow
}

// EffectsConfig defines what each special food does.
type EffectsConfig struct {
	Double BonusConfig `yaml:"double"`
	Triple BonusConfig `yaml:"triple"`
	Speed  TimedConfig `yaml:"speed"`
	Slow   TimedConfig `yaml:"slow"`
	Phase  TimedConfig `yaml:"phase"`
}

// BonusConfig is an instant score bonus.
type BonusConfig struct {
	Bonus int `yaml:"bonus"`
}

// TimedConfig is a lasting change to the tick interval.
type TimedConfig struct {
	Multiplier float64       `yaml:"multiplier"`
	Duration   time.Duration `yaml:"duration"`
}

// RulesConfig holds rule toggles that are not tied to a variant.
type RulesConfig struct {
	AutoStartOnTurn bool `yaml:"auto_start_on_turn"` // A turn while idle starts the session
}

var validDirections = map[string]bool{"up": true, "down": true, "left": true, "right": true}

// Validate reports the first problem that would make the config unplayable.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("config: grid must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Timing.BaseInterval <= 0 {
		return errors.New("config: timing.base_interval must be positive")
	}
	if len(c.Snake.Start) == 0 {
		return errors.New("config: snake.start must list at least one cell")
	}
	for _, p := range c.Snake.Start {
		if p[0] < 0 || p[0] >= c.Grid.Width || p[1] < 0 || p[1] >= c.Grid.Height {
			return fmt.Errorf("config: snake.start cell (%d, %d) is off the grid", p[0], p[1])
		}
	}
	if !validDirections[c.Snake.Direction] {
		return fmt.Errorf("config: unknown snake.direction %q", c.Snake.Direction)
	}
	if sum := c.Food.Weights.Sum(); sum != 100 {
		return fmt.Errorf("config: food.weights must sum to 100, got %d", sum)
	}
	if c.Food.Lifetime < 0 {
		return errors.New("config: food.lifetime must not be negative")
	}
	timed := map[string]TimedConfig{
		"speed": c.Effects.Speed,
		"slow":  c.Effects.Slow,
		"phase": c.Effects.Phase,
	}
	for name, t := range timed {
		if t.Multiplier <= 0 {
			return fmt.Errorf("config: effects.%s.multiplier must be positive", name)
		}
		if t.Duration <= 0 {
			return fmt.Errorf("config: effects.%s.duration must be positive", name)
		}
	}
	return nil
}
