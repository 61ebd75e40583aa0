package realtime

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func startHubServer(t *testing.T) (*Hub, string) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	hub := NewHub()
	go hub.Run()

	r := gin.New()
	r.GET("/ws", hub.Handler())

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var ev Event
	if err := json.Unmarshal(msg, &ev); err != nil {
		t.Fatalf("unmarshal %s: %v", msg, err)
	}
	return ev
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub, url := startHubServer(t)

	first := dial(t, url)
	second := dial(t, url)

	// Registration goes through the hub's run loop.
	time.Sleep(50 * time.Millisecond)

	hub.Broadcast("task:created", map[string]any{"id": "t1", "title": "Ship"})

	for _, conn := range []*websocket.Conn{first, second} {
		ev := readEvent(t, conn)
		if ev.Event != "task:created" {
			t.Fatalf("event = %q", ev.Event)
		}
		payload, ok := ev.Payload.(map[string]any)
		if !ok || payload["id"] != "t1" {
			t.Fatalf("payload = %#v", ev.Payload)
		}
	}
}

func TestHub_DisconnectedClientMissesEvents(t *testing.T) {
	hub, url := startHubServer(t)

	gone := dial(t, url)
	stays := dial(t, url)
	time.Sleep(50 * time.Millisecond)

	gone.Close()
	time.Sleep(50 * time.Millisecond)

	// Emission towards the closed connection is fire-and-forget: no error
	// surfaces and the surviving client still gets the event.
	hub.Broadcast("project:updated", map[string]any{"id": "p1"})

	ev := readEvent(t, stays)
	if ev.Event != "project:updated" {
		t.Fatalf("event = %q", ev.Event)
	}
}

func TestHub_EventsArriveInEmissionOrder(t *testing.T) {
	hub, url := startHubServer(t)

	conn := dial(t, url)
	time.Sleep(50 * time.Millisecond)

	for i, name := range []string{"task:created", "task:updated", "task:deleted"} {
		hub.Broadcast(name, map[string]any{"seq": i})
	}
	for _, want := range []string{"task:created", "task:updated", "task:deleted"} {
		if ev := readEvent(t, conn); ev.Event != want {
			t.Fatalf("event = %q, want %q", ev.Event, want)
		}
	}
}
