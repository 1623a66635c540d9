package snake

import (
	"reflect"
	"testing"
	"time"
)

func TestSchedulerFiresInOrder(t *testing.T) {
	s := NewScheduler()
	var got []string
	record := func(name string) func(time.Duration) {
		return func(time.Duration) { got = append(got, name) }
	}

	s.After(0, 3*time.Second, record("c"))
	s.After(0, 1*time.Second, record("a"))
	s.After(0, 2*time.Second, record("b1"))
	s.After(0, 2*time.Second, record("b2"))

	if n := s.Advance(500 * time.Millisecond); n != 0 {
		t.Fatalf("fired %d events early", n)
	}
	if n := s.Advance(2 * time.Second); n != 3 {
		t.Fatalf("fired %d, want 3", n)
	}
	s.Advance(10 * time.Second)

	want := []string{"a", "b1", "b2", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after draining", s.Len())
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.After(0, time.Second, func(time.Duration) { fired = true })

	if !s.Pending(id) {
		t.Fatal("event should be pending")
	}
	if at, ok := s.Deadline(id); !ok || at != time.Second {
		t.Errorf("Deadline = %v/%v", at, ok)
	}
	if !s.Cancel(id) {
		t.Fatal("Cancel returned false")
	}
	if s.Cancel(id) {
		t.Error("second Cancel returned true")
	}

	s.Advance(time.Hour)
	if fired {
		t.Error("cancelled event fired")
	}
}

func TestSchedulerIDsNeverReused(t *testing.T) {
	s := NewScheduler()
	old := s.After(0, time.Second, func(time.Duration) {})
	s.Clear()

	fired := false
	fresh := s.After(0, time.Second, func(time.Duration) { fired = true })
	if fresh == old {
		t.Fatal("ID reused after Clear")
	}
	if s.Cancel(old) {
		t.Error("stale ID cancelled a newer event")
	}
	s.Advance(time.Second)
	if !fired {
		t.Error("fresh event did not fire")
	}
}

func TestSchedulerChainedEvents(t *testing.T) {
	s := NewScheduler()
	count := 0
	var chain func(now time.Duration)
	chain = func(now time.Duration) {
		count++
		if count < 3 {
			s.After(now, 0, chain)
		}
	}
	s.After(0, time.Second, chain)

	if n := s.Advance(time.Second); n != 3 {
		t.Errorf("fired %d, want 3", n)
	}
}
