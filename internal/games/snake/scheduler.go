package snake

import (
	"sort"
	"time"
)

// EventID identifies a scheduled callback. IDs are never reused, so a stale
// ID held after Clear can never cancel a newer event.
type EventID uint64

// scheduled is one deferred callback on the engine clock.
type scheduled struct {
	id EventID
	at time.Duration
	fn func(now time.Duration)
}

// Scheduler holds deferred callbacks keyed by monotonic IDs. It has no
// goroutines of its own: events fire only from Advance, which the engine calls
// inside its tick, so callbacks are serialized with tick processing.
type Scheduler struct {
	lastID EventID
	events []scheduled // Sorted by (at, id)
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run once the clock reaches now+d.
func (s *Scheduler) After(now, d time.Duration, fn func(now time.Duration)) EventID {
	s.lastID++
	ev := scheduled{id: s.lastID, at: now + d, fn: fn}

	i := sort.Search(len(s.events), func(i int) bool {
		return s.events[i].at > ev.at
	})
	s.events = append(s.events, scheduled{})
	copy(s.events[i+1:], s.events[i:])
	s.events[i] = ev

	return ev.id
}

// Cancel removes a pending event. Returns false if it already fired, was
// cancelled, or never existed.
func (s *Scheduler) Cancel(id EventID) bool {
	for i, ev := range s.events {
		if ev.id == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return true
		}
	}
	return false
}

// Pending reports whether id is still waiting to fire.
func (s *Scheduler) Pending(id EventID) bool {
	for _, ev := range s.events {
		if ev.id == id {
			return true
		}
	}
	return false
}

// Deadline returns the clock time at which id fires.
func (s *Scheduler) Deadline(id EventID) (time.Duration, bool) {
	for _, ev := range s.events {
		if ev.id == id {
			return ev.at, true
		}
	}
	return 0, false
}

// Advance fires every event due at or before now, earliest first.
// Callbacks may schedule or cancel other events; anything they schedule that
// is already due fires in the same call. Returns the number of events fired.
func (s *Scheduler) Advance(now time.Duration) int {
	fired := 0
	for len(s.events) > 0 && s.events[0].at <= now {
		ev := s.events[0]
		s.events = s.events[1:]
		ev.fn(now)
		fired++
	}
	return fired
}

// Clear drops every pending event without firing it.
func (s *Scheduler) Clear() {
	s.events = nil
}

// Len returns the number of pending events.
func (s *Scheduler) Len() int {
	return len(s.events)
}
