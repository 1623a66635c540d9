// Package spectate streams game snapshots to remote viewers over WebSocket.
// Snapshots are msgpack-encoded and sent as binary frames.
package spectate

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const (
	sendBuffer   = 16
	writeTimeout = 2 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

type viewer struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans snapshots out to connected viewers. Publish never blocks: a viewer
// whose buffer is full misses frames until it catches up.
type Hub struct {
	logger *log.Logger

	mu      sync.Mutex
	viewers map[*viewer]struct{}
	last    []byte
	closed  bool
}

// NewHub creates an empty hub.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		logger:  logger.WithPrefix("spectate"),
		viewers: make(map[*viewer]struct{}),
	}
}

// Publish encodes snap and queues it for every viewer.
func (h *Hub) Publish(snap snake.Snapshot) {
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		h.logger.Error("encode snapshot", "err", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.last = data
	for v := range h.viewers {
		select {
		case v.send <- data:
		default:
			h.logger.Debug("viewer lagging, frame dropped", "remote", v.conn.RemoteAddr().String())
		}
	}
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// ServeHTTP upgrades the request and streams snapshots until the viewer
// disconnects or the hub closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	v := &viewer{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.viewers[v] = struct{}{}
	if h.last != nil {
		v.send <- h.last
	}
	h.mu.Unlock()

	h.logger.Info("viewer connected", "remote", r.RemoteAddr)

	// Viewers never send anything; reading only detects the close.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.remove(v)
				return
			}
		}
	}()

	for data := range v.send {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout)) //nolint:errcheck // surfaced by the write
		if err := conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
			h.logger.Debug("write failed", "remote", r.RemoteAddr, "err", err)
			h.remove(v)
			break
		}
	}

	conn.Close()
	h.logger.Info("viewer disconnected", "remote", r.RemoteAddr)
}

// remove drops v and closes its queue. Safe to call more than once.
func (h *Hub) remove(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.viewers[v]; !ok {
		return
	}
	delete(h.viewers, v)
	close(v.send)
}

// Close disconnects every viewer. Later Publish calls are ignored.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for v := range h.viewers {
		delete(h.viewers, v)
		close(v.send)
	}
}

// Serve listens on addr and serves the hub at /ws until ctx is done.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		h.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	h.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
