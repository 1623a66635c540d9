package snake

import "github.com/vovakirdan/tui-snake/internal/registry"

func init() {
	registry.Register(registry.Variant{
		ID:          "classic",
		Title:       "Snake",
		Description: "Plain food only, walls are fatal",
		Rules:       registry.Rules{},
	})
	registry.Register(registry.Variant{
		ID:          "effects",
		Title:       "Snake (Effects)",
		Description: "Special food with speed, slow, phase and bonus effects",
		Rules:       registry.Rules{Effects: true, WallPass: true},
	})
}
