package snake

import (
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrGridFull is returned when no free cell is left for food.
var ErrGridFull = errors.New("snake: no free cell for food")

// FoodKind selects what eating an item does.
type FoodKind int

const (
	FoodNormal FoodKind = iota
	FoodDouble
	FoodSpeed
	FoodPhase
	FoodTriple
	FoodSlow
	foodKindCount
)

func (k FoodKind) String() string {
	switch k {
	case FoodNormal:
		return "normal"
	case FoodDouble:
		return "double"
	case FoodSpeed:
		return "speed"
	case FoodPhase:
		return "phase"
	case FoodTriple:
		return "triple"
	case FoodSlow:
		return "slow"
	default:
		return "unknown"
	}
}

// Special reports whether the kind expires when left uneaten.
func (k FoodKind) Special() bool {
	return k != FoodNormal
}

// KindWeights holds the relative odds of each kind, indexed by FoodKind.
type KindWeights [foodKindCount]int

// DefaultWeights are percentages: 60/15/10/5/3/7.
func DefaultWeights() KindWeights {
	return KindWeights{
		FoodNormal: 60,
		FoodDouble: 15,
		FoodSpeed:  10,
		FoodPhase:  5,
		FoodTriple: 3,
		FoodSlow:   7,
	}
}

// Total returns the sum of all weights.
func (w KindWeights) Total() int {
	total := 0
	for _, v := range w {
		total += v
	}
	return total
}

// pick maps a roll in [0, Total) onto a kind using cumulative thresholds in
// declaration order.
func (w KindWeights) pick(roll int) FoodKind {
	cumulative := 0
	for kind, weight := range w {
		cumulative += weight
		if roll < cumulative {
			return FoodKind(kind)
		}
	}
	return FoodNormal
}

// Food is one item on the board.
type Food struct {
	Cell      core.Cell
	Kind      FoodKind
	ExpiresAt time.Duration // Engine clock deadline; zero when Expires is false
	Expires   bool
}

// FoodManager places food, rolls its kind and respawns expired specials.
type FoodManager struct {
	grid        core.Grid
	body        *Body
	rng         *rand.Rand
	sched       *Scheduler
	logger      *log.Logger
	weights     KindWeights
	lifetime    time.Duration
	maxAttempts int

	current Food
	present bool
	expiry  EventID
}

// NewFoodManager creates a manager that places food around body.
func NewFoodManager(opts Options, body *Body, rng *rand.Rand, sched *Scheduler, logger *log.Logger) *FoodManager {
	return &FoodManager{
		grid:        opts.Grid,
		body:        body,
		rng:         rng,
		sched:       sched,
		logger:      logger,
		weights:     opts.effectiveWeights(),
		lifetime:    opts.FoodLifetime,
		maxAttempts: opts.MaxSpawnAttempts,
	}
}

// Spawn places a new item on a free cell and, for special kinds, schedules
// its expiry. Any previous item and its expiry are discarded.
func (fm *FoodManager) Spawn(now time.Duration) error {
	fm.Clear()

	cell, err := fm.freeCell()
	if err != nil {
		return err
	}

	fm.current = Food{Cell: cell, Kind: fm.RollKind()}
	fm.present = true

	if fm.current.Kind.Special() && fm.lifetime > 0 {
		fm.current.Expires = true
		fm.current.ExpiresAt = now + fm.lifetime
		fm.expiry = fm.sched.After(now, fm.lifetime, fm.expire)
	}

	fm.logger.Debug("food spawned",
		"x", cell.X, "y", cell.Y,
		"kind", fm.current.Kind,
	)
	return nil
}

// expire replaces an uneaten special item with a fresh one.
func (fm *FoodManager) expire(now time.Duration) {
	old := fm.current
	fm.expiry = 0
	if err := fm.Spawn(now); err != nil {
		// The expired cell itself is free, so this only happens on a
		// degenerate board; keep the old item without a deadline.
		fm.current = Food{Cell: old.Cell, Kind: old.Kind}
		fm.present = true
		return
	}
	fm.logger.Debug("food expired", "kind", old.Kind, "x", old.Cell.X, "y", old.Cell.Y)
}

// freeCell samples uniformly until it finds a cell off the snake. After
// maxAttempts misses it scans for the remaining free cells instead.
func (fm *FoodManager) freeCell() (core.Cell, error) {
	for attempt := 0; attempt < fm.maxAttempts; attempt++ {
		c := core.Cell{X: fm.rng.Intn(fm.grid.W), Y: fm.rng.Intn(fm.grid.H)}
		if !fm.body.Occupies(c) {
			return c, nil
		}
	}

	var free []core.Cell
	for y := 0; y < fm.grid.H; y++ {
		for x := 0; x < fm.grid.W; x++ {
			c := core.Cell{X: x, Y: y}
			if !fm.body.Occupies(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return core.Cell{}, ErrGridFull
	}
	return free[fm.rng.Intn(len(free))], nil
}

// RollKind draws a kind from the configured weights.
func (fm *FoodManager) RollKind() FoodKind {
	total := fm.weights.Total()
	if total <= 0 {
		return FoodNormal
	}
	return fm.weights.pick(fm.rng.Intn(total))
}

// Consumed reports whether a head on cell eats the current item.
func (fm *FoodManager) Consumed(head core.Cell) bool {
	return fm.present && fm.current.Cell == head
}

// Take removes the current item and cancels its expiry.
func (fm *FoodManager) Take() Food {
	f := fm.current
	fm.Clear()
	return f
}

// Clear removes the item and cancels any pending expiry.
func (fm *FoodManager) Clear() {
	if fm.expiry != 0 {
		fm.sched.Cancel(fm.expiry)
		fm.expiry = 0
	}
	fm.current = Food{}
	fm.present = false
}

// Freeze cancels the pending expiry but leaves the item on the board.
func (fm *FoodManager) Freeze() {
	if fm.expiry != 0 {
		fm.sched.Cancel(fm.expiry)
		fm.expiry = 0
	}
}

// Current returns the item on the board, if any.
func (fm *FoodManager) Current() (Food, bool) {
	return fm.current, fm.present
}

// Remaining returns the time left before the current item expires.
func (fm *FoodManager) Remaining(now time.Duration) time.Duration {
	if !fm.present || !fm.current.Expires {
		return 0
	}
	return max(0, fm.current.ExpiresAt-now)
}
