package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// FoodView is the food item as seen by renderers.
type FoodView struct {
	Present   bool          `msgpack:"present"`
	Cell      core.Cell     `msgpack:"cell"`
	Kind      FoodKind      `msgpack:"kind"`
	Remaining time.Duration `msgpack:"remaining"` // Zero for items that never expire
}

// EffectView is the active timed effect as seen by renderers.
type EffectView struct {
	Active    bool          `msgpack:"active"`
	Kind      FoodKind      `msgpack:"kind"`
	Remaining time.Duration `msgpack:"remaining"`
}

// Snapshot is an immutable view of the engine after a tick. Renderers and
// spectators read it; it shares no memory with the engine.
type Snapshot struct {
	Tick      uint64         `msgpack:"tick"`
	Clock     time.Duration  `msgpack:"clock"`
	State     State          `msgpack:"state"`
	Reason    EndReason      `msgpack:"reason"`
	GridW     int            `msgpack:"grid_w"`
	GridH     int            `msgpack:"grid_h"`
	Snake     []core.Cell    `msgpack:"snake"`
	Direction core.Direction `msgpack:"dir"`
	Food      FoodView       `msgpack:"food"`
	Effect    EffectView     `msgpack:"effect"`
	Score     int            `msgpack:"score"`
	Best      int            `msgpack:"best"`
	Eaten     int            `msgpack:"eaten"`
	Interval  time.Duration  `msgpack:"interval"`
	WallPass  bool           `msgpack:"wall_pass"`
	Crash     *core.Cell     `msgpack:"crash,omitempty"` // Set once the session is over
}

// Head returns the head cell.
func (s Snapshot) Head() core.Cell {
	if len(s.Snake) == 0 {
		return core.Cell{}
	}
	return s.Snake[0]
}

// Length returns the number of snake segments.
func (s Snapshot) Length() int {
	return len(s.Snake)
}

// Snapshot builds the current view.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      e.tick,
		Clock:     e.clock,
		State:     e.state,
		Reason:    e.reason,
		GridW:     e.opts.Grid.W,
		GridH:     e.opts.Grid.H,
		Snake:     e.body.Cells(),
		Direction: e.dir,
		Score:     e.score.Score(),
		Best:      e.score.Best(),
		Eaten:     e.eaten,
		Interval:  e.effects.Interval(),
		WallPass:  e.effects.WallPass(),
	}

	if f, ok := e.food.Current(); ok {
		snap.Food = FoodView{
			Present:   true,
			Cell:      f.Cell,
			Kind:      f.Kind,
			Remaining: e.food.Remaining(e.clock),
		}
	}
	if eff, ok := e.effects.Active(); ok {
		snap.Effect = EffectView{
			Active:    true,
			Kind:      eff.Kind,
			Remaining: e.effects.Remaining(e.clock),
		}
	}
	if e.state == StateOver {
		crash := e.crash
		snap.Crash = &crash
	}
	return snap
}
