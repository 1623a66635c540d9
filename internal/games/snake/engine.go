// Package snake implements the snake game engine: a tick-driven simulation
// with timed food effects, owned by a single goroutine.
package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the session state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// EndReason says why a session ended.
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonWall
	ReasonSelf
	ReasonFilled // No free cell left for food
)

func (r EndReason) String() string {
	switch r {
	case ReasonWall:
		return "wall"
	case ReasonSelf:
		return "self"
	case ReasonFilled:
		return "filled"
	default:
		return "none"
	}
}

// TickSource is the periodic trigger that drives Tick. The engine starts it
// when a session runs, resets it when the effective interval changes and
// stops it when the session ends.
type TickSource interface {
	Start(interval time.Duration)
	Reset(interval time.Duration)
	Stop()
}

type nopTicker struct{}

func (nopTicker) Start(time.Duration) {}
func (nopTicker) Reset(time.Duration) {}
func (nopTicker) Stop()               {}

// Engine owns the whole game state. It is not safe for concurrent use; the
// caller serializes Request* and Tick calls.
type Engine struct {
	opts   Options
	logger *log.Logger
	ticker TickSource

	rng     *rand.Rand
	sched   *Scheduler
	input   InputChannel
	body    *Body
	food    *FoodManager
	effects *EffectManager
	score   *ScoreTracker

	state   State
	reason  EndReason
	dir     core.Direction
	tick    uint64
	clock   time.Duration
	eaten   int
	crash   core.Cell
	ticking bool
}

// New creates an engine in the Idle state. A nil store keeps the best score
// in memory, a nil ticker disables tick scheduling and a nil logger discards
// output.
func New(opts Options, store BestScoreStore, ticker TickSource, logger *log.Logger) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if store == nil {
		store = &MemoryStore{}
	}
	if ticker == nil {
		ticker = nopTicker{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		opts:   opts,
		logger: logger,
		ticker: ticker,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		sched:  NewScheduler(),
	}
	e.effects = NewEffectManager(opts.BaseInterval, opts.Catalog, e.sched, logger, e.intervalChanged)
	e.score = NewScoreTracker(store, logger)

	if err := e.reset(); err != nil {
		return nil, fmt.Errorf("snake: initial food: %w", err)
	}
	return e, nil
}

// RequestDirection buffers a turn for the next tick. A turn straight back
// onto the committed heading is dropped. While Idle a turn may also start
// the session.
func (e *Engine) RequestDirection(d core.Direction) {
	if e.state == StateOver {
		return
	}
	if !d.IsOpposite(e.dir) {
		e.input.PushDirection(d)
	}
	if e.state == StateIdle && e.opts.AutoStartOnTurn {
		e.start()
	}
}

// RequestStart starts an idle session.
func (e *Engine) RequestStart() {
	if e.ticking {
		e.input.PushStart()
		return
	}
	if e.state == StateIdle {
		e.start()
	}
}

// RequestPause toggles between Running and Paused at the next tick.
func (e *Engine) RequestPause() {
	if e.ticking {
		e.input.PushPause()
	}
}

// RequestReset returns to Idle with a fresh board. With no live tick source
// the reset happens at once.
func (e *Engine) RequestReset() {
	if e.ticking {
		e.input.PushReset()
		return
	}
	e.doReset()
}

// Tick advances the simulation by one step and returns the resulting view.
func (e *Engine) Tick() Snapshot {
	e.drainIntents()
	if e.state != StateRunning {
		return e.Snapshot()
	}

	e.tick++
	e.clock += e.effects.Interval()
	e.sched.Advance(e.clock)
	e.step()

	return e.Snapshot()
}

func (e *Engine) drainIntents() {
	in := e.input.TakeIntents()
	if in.Reset {
		e.doReset()
		return
	}
	if in.Start && e.state == StateIdle {
		e.start()
	}
	if in.Pause {
		switch e.state {
		case StateRunning:
			e.state = StatePaused
			e.logger.Debug("paused", "tick", e.tick)
		case StatePaused:
			e.state = StateRunning
			e.logger.Debug("resumed", "tick", e.tick)
		}
	}
}

// step moves the snake one cell and resolves what it ran into.
func (e *Engine) step() {
	if d, ok := e.input.TakeDirection(); ok && !d.IsOpposite(e.dir) {
		e.dir = d
	}

	next := e.body.Ahead(e.dir)
	if e.opts.Grid.OutOfBounds(next) {
		if !e.effects.WallPass() {
			e.end(ReasonWall, next)
			return
		}
		next = e.opts.Grid.Wrap(next)
	}

	eaten := e.food.Consumed(next)
	e.body.Move(next, eaten)

	if SelfCollision(e.body.cells) {
		e.end(ReasonSelf, next)
		return
	}
	if eaten {
		e.consume()
	}
}

func (e *Engine) consume() {
	f := e.food.Take()
	bonus := e.effects.Apply(f.Kind, e.clock)
	gained, newBest := e.score.OnFoodConsumed(bonus)
	e.eaten++

	e.logger.Debug("food eaten",
		"kind", f.Kind,
		"gained", gained,
		"score", e.score.Score(),
		"length", e.body.Len(),
	)
	if newBest {
		e.logger.Info("new best score", "best", e.score.Best())
	}

	if err := e.food.Spawn(e.clock); err != nil {
		if errors.Is(err, ErrGridFull) {
			e.end(ReasonFilled, e.body.Head())
			return
		}
		e.logger.Error("spawn food failed", "err", err)
	}
}

func (e *Engine) start() {
	e.state = StateRunning
	e.ticking = true
	e.ticker.Start(e.effects.Interval())
	e.logger.Info("session started", "interval", e.effects.Interval())
}

// end moves to Over and tears down every timer. The last food item stays on
// the board for display.
func (e *Engine) end(reason EndReason, at core.Cell) {
	e.state = StateOver
	e.reason = reason
	e.crash = at
	e.stopTicker()
	e.food.Freeze()
	e.effects.Clear()
	e.sched.Clear()
	e.input.Clear()

	e.logger.Info("game over",
		"reason", reason,
		"score", e.score.Score(),
		"length", e.body.Len(),
		"tick", e.tick,
	)
}

func (e *Engine) doReset() {
	if err := e.reset(); err != nil {
		// Validate guarantees room for one item on a fresh board.
		e.logger.Error("reset failed", "err", err)
	}
}

func (e *Engine) reset() error {
	e.stopTicker()
	e.sched.Clear()
	e.effects.Clear()
	e.input.Clear()
	e.score.Reset()

	e.body = NewBody(e.opts.InitialSnake)
	e.food = NewFoodManager(e.opts, e.body, e.rng, e.sched, e.logger)
	e.dir = e.opts.InitialDirection
	e.state = StateIdle
	e.reason = ReasonNone
	e.crash = core.Cell{}
	e.tick = 0
	e.clock = 0
	e.eaten = 0

	return e.food.Spawn(e.clock)
}

func (e *Engine) stopTicker() {
	if e.ticking {
		e.ticker.Stop()
		e.ticking = false
	}
}

func (e *Engine) intervalChanged(d time.Duration) {
	if e.ticking {
		e.ticker.Reset(d)
	}
	e.logger.Debug("interval changed", "interval", d)
}

// State returns the session state.
func (e *Engine) State() State { return e.state }

// Reason returns why the last session ended.
func (e *Engine) Reason() EndReason { return e.reason }

// Direction returns the committed heading.
func (e *Engine) Direction() core.Direction { return e.dir }

// Score returns the current score.
func (e *Engine) Score() int { return e.score.Score() }

// Best returns the best score.
func (e *Engine) Best() int { return e.score.Best() }

// Interval returns the effective tick interval.
func (e *Engine) Interval() time.Duration { return e.effects.Interval() }

// Clock returns the engine time accumulated over running ticks.
func (e *Engine) Clock() time.Duration { return e.clock }

// Options returns the options the engine was built with.
func (e *Engine) Options() Options { return e.opts }
