package client

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
)

// Listen connects to the realtime channel and refetches a collection
// whenever an event names it. It blocks until the context is cancelled or
// the connection drops; reconnecting is the caller's policy.
func (c *Client) Listen(ctx context.Context) error {
	wsURL, err := c.websocketURL()
	if err != nil {
		return err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Unblock ReadMessage when the context is cancelled.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	for {
		var ev struct {
			Event   string          `json:"event"`
			Payload json.RawMessage `json:"payload"`
		}
		if err := conn.ReadJSON(&ev); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		kind, ok := kindForEvent(ev.Event)
		if !ok {
			log.Printf("client: ignoring unknown event %q", ev.Event)
			continue
		}
		// Invalidate-and-reload: the payload is ignored in favor of the
		// full collection.
		if err := c.Refresh(ctx, kind); err != nil {
			log.Printf("client: refresh %s after %s failed: %v", kind, ev.Event, err)
		}
	}
}

func (c *Client) websocketURL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	q := u.Query()
	q.Set("token", c.token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
