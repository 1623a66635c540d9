package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastPolicy(attempts int) Policy {
	return Policy{Attempts: attempts, Initial: time.Millisecond, Max: 2 * time.Millisecond}
}

func TestDoSucceedsFirstTry(t *testing.T) {
	calls := 0
	err := Do(context.Background(), DefaultPolicy(), func() error {
		calls++
		return nil
	})
	if err != nil || calls != 1 {
		t.Errorf("err=%v calls=%d", err, calls)
	}
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	calls := 0
	var waits []int
	p := fastPolicy(4)
	p.OnRetry = func(attempt int, _ error, _ time.Duration) { waits = append(waits, attempt) }

	err := Do(context.Background(), p, func() error {
		calls++
		if calls < 3 {
			return errors.New("busy")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if len(waits) != 2 || waits[0] != 1 || waits[1] != 2 {
		t.Errorf("OnRetry attempts = %v, want [1 2]", waits)
	}
}

func TestDoStopsOnPermanentError(t *testing.T) {
	permanent := errors.New("constraint failed")
	calls := 0
	p := fastPolicy(5)
	p.Retryable = func(err error) bool { return !errors.Is(err, permanent) }

	err := Do(context.Background(), p, func() error {
		calls++
		return permanent
	})
	if !errors.Is(err, permanent) || errors.Is(err, ErrExhausted) {
		t.Errorf("err = %v, want the permanent error as-is", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDoExhausted(t *testing.T) {
	busy := errors.New("database is locked")
	calls := 0
	err := Do(context.Background(), fastPolicy(3), func() error {
		calls++
		return busy
	})
	if !errors.Is(err, ErrExhausted) || !errors.Is(err, busy) {
		t.Errorf("err = %v, want exhausted joined with last error", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestDoContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Do(ctx, Policy{Attempts: 5, Initial: time.Hour, Max: time.Hour}, func() error {
		calls++
		return errors.New("busy")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestBackoff(t *testing.T) {
	initial, max := 100*time.Millisecond, 5*time.Second

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 100 * time.Millisecond},
		{1, 200 * time.Millisecond},
		{3, 800 * time.Millisecond},
		{10, max},
	}
	for _, tt := range tests {
		if got := Backoff(tt.attempt, initial, max, 2); got != tt.want {
			t.Errorf("Backoff(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}
