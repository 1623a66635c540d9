package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  20,
			Height: 20,
		},
		Timing: TimingConfig{
			BaseInterval: 100 * time.Millisecond,
		},
		Snake: StartConfig{
			Start:     [][2]int{{5, 10}, {4, 10}, {3, 10}},
			Direction: "right",
		},
		Food: FoodConfig{
			Lifetime:         10 * time.Second,
			MaxSpawnAttempts: 400,
			Weights: WeightsConfig{
				Normal: 60,
				Double: 15,
				Speed:  10,
				Phase:  5,
				Triple: 3,
				Slow:   7,
			},
		},
		Effects: EffectsConfig{
			Double: BonusConfig{Bonus: 10},
			Triple: BonusConfig{Bonus: 20},
			Speed:  TimedConfig{Multiplier: 0.7, Duration: 10 * time.Second},
			Slow:   TimedConfig{Multiplier: 1.2, Duration: 12 * time.Second},
			Phase:  TimedConfig{Multiplier: 1.0, Duration: 8 * time.Second},
		},
		Rules: RulesConfig{
			AutoStartOnTurn: true,
		},
	}
}
