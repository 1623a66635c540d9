package spectate

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func testSnapshot(tick uint64) snake.Snapshot {
	crash := core.Cell{X: 20, Y: 4}
	return snake.Snapshot{
		Tick:      tick,
		State:     snake.StateOver,
		Reason:    snake.ReasonWall,
		GridW:     20,
		GridH:     20,
		Snake:     []core.Cell{{X: 19, Y: 4}, {X: 18, Y: 4}, {X: 17, Y: 4}},
		Direction: core.DirRight,
		Food:      snake.FoodView{Present: true, Cell: core.Cell{X: 3, Y: 3}, Kind: snake.FoodSpeed, Remaining: 4 * time.Second},
		Effect:    snake.EffectView{Active: true, Kind: snake.FoodPhase, Remaining: time.Second},
		Score:     40,
		Best:      90,
		Eaten:     4,
		Interval:  100 * time.Millisecond,
		WallPass:  true,
		Crash:     &crash,
	}
}

func dialHub(t *testing.T, h *Hub) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	c, err := Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws")
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func waitViewers(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.Viewers() != n {
		if time.Now().After(deadline) {
			t.Fatalf("Viewers() = %d, want %d", h.Viewers(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubSendsLastSnapshotOnConnect(t *testing.T) {
	h := NewHub(nil)
	defer h.Close()

	want := testSnapshot(7)
	h.Publish(want)

	c := dialHub(t, h)
	got, err := c.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}

	if got.Tick != want.Tick || got.Score != want.Score || got.Best != want.Best {
		t.Errorf("got tick=%d score=%d best=%d, want tick=%d score=%d best=%d",
			got.Tick, got.Score, got.Best, want.Tick, want.Score, want.Best)
	}
	if got.State != snake.StateOver || got.Reason != snake.ReasonWall {
		t.Errorf("state = %v/%v, want over/wall", got.State, got.Reason)
	}
	if len(got.Snake) != 3 || got.Head() != (core.Cell{X: 19, Y: 4}) {
		t.Errorf("snake = %v", got.Snake)
	}
	if got.Food.Kind != snake.FoodSpeed || got.Food.Remaining != 4*time.Second {
		t.Errorf("food = %+v", got.Food)
	}
	if got.Crash == nil || *got.Crash != (core.Cell{X: 20, Y: 4}) {
		t.Errorf("crash = %v", got.Crash)
	}
}

func TestHubBroadcastsToEveryViewer(t *testing.T) {
	h := NewHub(nil)
	defer h.Close()

	a := dialHub(t, h)
	b := dialHub(t, h)
	waitViewers(t, h, 2)

	h.Publish(testSnapshot(1))
	h.Publish(testSnapshot(2))

	for name, c := range map[string]*Client{"a": a, "b": b} {
		for _, want := range []uint64{1, 2} {
			got, err := c.Next()
			if err != nil {
				t.Fatalf("%s: Next: %v", name, err)
			}
			if got.Tick != want {
				t.Errorf("%s: tick = %d, want %d", name, got.Tick, want)
			}
		}
	}
}

func TestHubDropsDisconnectedViewer(t *testing.T) {
	h := NewHub(nil)
	defer h.Close()

	c := dialHub(t, h)
	waitViewers(t, h, 1)

	c.Close()
	waitViewers(t, h, 0)

	// Publishing with nobody listening must not block.
	h.Publish(testSnapshot(3))
}

func TestHubCloseEndsStreams(t *testing.T) {
	h := NewHub(nil)
	c := dialHub(t, h)
	waitViewers(t, h, 1)

	h.Close()
	if _, err := c.Next(); err == nil {
		t.Fatal("Next after Close: want error")
	}
	h.Publish(testSnapshot(4))
	if h.Viewers() != 0 {
		t.Errorf("Viewers() = %d after Close", h.Viewers())
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"localhost:8080", "ws://localhost:8080/ws"},
		{"ws://host:1", "ws://host:1/ws"},
		{"ws://host:1/custom", "ws://host:1/custom"},
		{"wss://example.com/ws", "wss://example.com/ws"},
	}
	for _, tt := range tests {
		if got := normalizeURL(tt.in); got != tt.want {
			t.Errorf("normalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
