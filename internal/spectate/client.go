package spectate

import (
	"context"
	"fmt"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Client reads snapshots from a hub.
type Client struct {
	conn *websocket.Conn
}

// Dial connects to a hub. A bare host:port is expanded to ws://host:port/ws.
func Dial(ctx context.Context, target string) (*Client, error) {
	url := normalizeURL(target)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("spectate: dial %s: %w", url, err)
	}
	return &Client{conn: conn}, nil
}

func normalizeURL(target string) string {
	if !strings.Contains(target, "://") {
		target = "ws://" + target
	}
	rest := target[strings.Index(target, "://")+3:]
	if !strings.Contains(rest, "/") {
		target += "/ws"
	}
	return target
}

// Next blocks until the next snapshot arrives.
func (c *Client) Next() (snake.Snapshot, error) {
	var snap snake.Snapshot
	for {
		kind, data, err := c.conn.ReadMessage()
		if err != nil {
			return snap, err
		}
		if kind != websocket.BinaryMessage {
			continue
		}
		if err := msgpack.Unmarshal(data, &snap); err != nil {
			return snap, fmt.Errorf("spectate: decode snapshot: %w", err)
		}
		return snap, nil
	}
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
