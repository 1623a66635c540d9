// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and engine orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger an engine tick. Gen ties the message to the
// ticker configuration that scheduled it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// Ticker drives the engine from Bubble Tea's timer. It implements the engine's
// tick source: Start, Reset and Stop bump the generation so ticks scheduled
// under an older interval are dropped when they arrive.
type Ticker struct {
	gen      uint64
	interval time.Duration
	running  bool
	inFlight bool
}

// Start begins ticking at interval.
func (t *Ticker) Start(interval time.Duration) {
	t.gen++
	t.interval = interval
	t.running = true
	t.inFlight = false
}

// Reset changes the interval of a running ticker.
func (t *Ticker) Reset(interval time.Duration) {
	if !t.running {
		return
	}
	t.gen++
	t.interval = interval
	t.inFlight = false
}

// Stop halts ticking. A tick already in flight is ignored on arrival.
func (t *Ticker) Stop() {
	t.gen++
	t.running = false
	t.inFlight = false
}

// Running reports whether ticks are being produced.
func (t *Ticker) Running() bool {
	return t.running
}

// Interval returns the current tick interval.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Cmd schedules the next tick. It returns nil when stopped or when a tick
// for the current generation is already pending.
func (t *Ticker) Cmd() tea.Cmd {
	if !t.running || t.inFlight {
		return nil
	}
	t.inFlight = true
	gen, interval := t.gen, t.interval
	return tea.Tick(interval, func(now time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: now}
	})
}

// Accept reports whether msg belongs to the live generation. An accepted
// tick frees the slot for the next Cmd.
func (t *Ticker) Accept(msg TickMsg) bool {
	if !t.running || msg.Gen != t.gen {
		return false
	}
	t.inFlight = false
	return true
}
