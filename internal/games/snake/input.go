package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// InputChannel buffers intents between ticks. The direction is a single slot:
// a later request overwrites an earlier one that has not been committed.
type InputChannel struct {
	dir    core.Direction
	hasDir bool
	start  bool
	pause  bool
	reset  bool
}

// PushDirection stores d as the pending direction.
func (in *InputChannel) PushDirection(d core.Direction) {
	in.dir = d
	in.hasDir = true
}

// PushStart records a start request.
func (in *InputChannel) PushStart() { in.start = true }

// PushPause records a pause toggle. Two toggles before a tick cancel out.
func (in *InputChannel) PushPause() { in.pause = !in.pause }

// PushReset records a reset request. It supersedes everything else pending.
func (in *InputChannel) PushReset() {
	*in = InputChannel{reset: true}
}

// PendingDirection returns the buffered direction, if any.
func (in *InputChannel) PendingDirection() (core.Direction, bool) {
	return in.dir, in.hasDir
}

// TakeDirection returns and clears the buffered direction.
func (in *InputChannel) TakeDirection() (core.Direction, bool) {
	d, ok := in.dir, in.hasDir
	in.hasDir = false
	return d, ok
}

// Intents is the set of transition requests drained at a tick.
type Intents struct {
	Start bool
	Pause bool
	Reset bool
}

// TakeIntents returns and clears the transition requests. The direction slot
// is left alone.
func (in *InputChannel) TakeIntents() Intents {
	out := Intents{Start: in.start, Pause: in.pause, Reset: in.reset}
	in.start, in.pause, in.reset = false, false, false
	return out
}

// Clear drops everything pending.
func (in *InputChannel) Clear() {
	*in = InputChannel{}
}
