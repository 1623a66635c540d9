package snake

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// BasePoints is awarded for every food item before kind bonuses.
const BasePoints = 10

// EffectSpec describes what consuming a food kind does.
// Timed kinds have a positive Duration; instant kinds only carry a Bonus.
type EffectSpec struct {
	Multiplier float64       // Tick interval multiplier while active
	Duration   time.Duration // Zero for instant kinds
	WallPass   bool          // Head wraps around edges while active
	Bonus      int           // Extra points on top of BasePoints
}

// Timed reports whether the kind installs a lasting effect.
func (s EffectSpec) Timed() bool {
	return s.Duration > 0
}

// Catalog maps each food kind to its effect.
type Catalog map[FoodKind]EffectSpec

// DefaultCatalog returns the stock effect table.
func DefaultCatalog() Catalog {
	return Catalog{
		FoodDouble: {Bonus: 10},
		FoodTriple: {Bonus: 20},
		FoodSpeed:  {Multiplier: 0.7, Duration: 10 * time.Second},
		FoodSlow:   {Multiplier: 1.2, Duration: 12 * time.Second},
		FoodPhase:  {Multiplier: 1.0, Duration: 8 * time.Second, WallPass: true},
	}
}

// Options parameterizes one engine instance. The classic and effects
// variants are both expressed as Options.
type Options struct {
	Grid             core.Grid
	BaseInterval     time.Duration
	InitialSnake     []core.Cell
	InitialDirection core.Direction

	EffectsEnabled  bool // Special food kinds can spawn
	WallPass        bool // Phase food is part of the catalog
	AutoStartOnTurn bool // A turn while idle starts the session

	Weights          KindWeights
	Catalog          Catalog
	FoodLifetime     time.Duration
	MaxSpawnAttempts int

	Seed int64
}

// DefaultOptions mirrors the browser game: a 20x20 board, 100ms ticks and a
// three-cell snake heading right from (5,10).
func DefaultOptions() Options {
	return Options{
		Grid:         core.NewGrid(20, 20),
		BaseInterval: 100 * time.Millisecond,
		InitialSnake: []core.Cell{
			{X: 5, Y: 10},
			{X: 4, Y: 10},
			{X: 3, Y: 10},
		},
		InitialDirection: core.DirRight,
		EffectsEnabled:   true,
		WallPass:         true,
		AutoStartOnTurn:  true,
		Weights:          DefaultWeights(),
		Catalog:          DefaultCatalog(),
		FoodLifetime:     10 * time.Second,
		MaxSpawnAttempts: 400,
	}
}

// OptionsFromConfig builds engine options from a loaded config and the rules
// of the chosen variant.
func OptionsFromConfig(cfg config.SnakeConfig, rules registry.Rules, seed int64) Options {
	opts := DefaultOptions()
	opts.Grid = core.NewGrid(cfg.Grid.Width, cfg.Grid.Height)
	opts.BaseInterval = cfg.Timing.BaseInterval

	if len(cfg.Snake.Start) > 0 {
		opts.InitialSnake = make([]core.Cell, 0, len(cfg.Snake.Start))
		for _, p := range cfg.Snake.Start {
			opts.InitialSnake = append(opts.InitialSnake, core.Cell{X: p[0], Y: p[1]})
		}
	}
	if d, ok := parseDirection(cfg.Snake.Direction); ok {
		opts.InitialDirection = d
	}

	opts.EffectsEnabled = rules.Effects
	opts.WallPass = rules.WallPass
	opts.AutoStartOnTurn = cfg.Rules.AutoStartOnTurn

	w := cfg.Food.Weights
	opts.Weights = KindWeights{
		FoodNormal: w.Normal,
		FoodDouble: w.Double,
		FoodSpeed:  w.Speed,
		FoodPhase:  w.Phase,
		FoodTriple: w.Triple,
		FoodSlow:   w.Slow,
	}
	opts.FoodLifetime = cfg.Food.Lifetime
	if cfg.Food.MaxSpawnAttempts > 0 {
		opts.MaxSpawnAttempts = cfg.Food.MaxSpawnAttempts
	}

	e := cfg.Effects
	opts.Catalog = Catalog{
		FoodDouble: {Bonus: e.Double.Bonus},
		FoodTriple: {Bonus: e.Triple.Bonus},
		FoodSpeed:  {Multiplier: e.Speed.Multiplier, Duration: e.Speed.Duration},
		FoodSlow:   {Multiplier: e.Slow.Multiplier, Duration: e.Slow.Duration},
		FoodPhase:  {Multiplier: e.Phase.Multiplier, Duration: e.Phase.Duration, WallPass: true},
	}

	opts.Seed = seed
	return opts
}

func parseDirection(s string) (core.Direction, bool) {
	switch s {
	case "up":
		return core.DirUp, true
	case "down":
		return core.DirDown, true
	case "left":
		return core.DirLeft, true
	case "right":
		return core.DirRight, true
	}
	return core.DirRight, false
}

// Validate checks that the options describe a playable board.
func (o Options) Validate() error {
	if o.Grid.W <= 0 || o.Grid.H <= 0 {
		return fmt.Errorf("snake: invalid grid %dx%d", o.Grid.W, o.Grid.H)
	}
	if o.BaseInterval <= 0 {
		return errors.New("snake: base interval must be positive")
	}
	if len(o.InitialSnake) == 0 {
		return errors.New("snake: initial snake must have at least one cell")
	}
	for _, c := range o.InitialSnake {
		if o.Grid.OutOfBounds(c) {
			return fmt.Errorf("snake: initial cell (%d, %d) is off the grid", c.X, c.Y)
		}
	}
	if len(o.InitialSnake) >= o.Grid.Area() {
		return errors.New("snake: initial snake leaves no room for food")
	}
	if o.EffectsEnabled && o.Weights.Total() <= 0 {
		return errors.New("snake: food weights must sum to a positive value")
	}
	for kind, spec := range o.Catalog {
		if spec.Timed() && spec.Multiplier <= 0 {
			return fmt.Errorf("snake: %s multiplier must be positive", kind)
		}
	}
	return nil
}

// effectiveWeights folds kinds the variant does not allow into Normal.
func (o Options) effectiveWeights() KindWeights {
	if !o.EffectsEnabled {
		return KindWeights{FoodNormal: 1}
	}
	w := o.Weights
	if !o.WallPass {
		w[FoodNormal] += w[FoodPhase]
		w[FoodPhase] = 0
	}
	return w
}
