package ws

import (
	"context"
	"errors"
	dto "fruit_slots/internal/api/dto/slot"
	"fruit_slots/internal/model"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

func staticSnapshot(v model.View) func(func(model.View)) error {
	return func(deliver func(model.View)) error {
		deliver(v)
		return nil
	}
}

func dial(t *testing.T, hub *Hub, sessionID string, initial model.View) *websocket.Conn {
	t.Helper()
	return dialWith(t, hub, sessionID, staticSnapshot(initial))
}

func dialWith(t *testing.T, hub *Hub, sessionID string, snapshot func(func(model.View)) error) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.HandleConnection(w, r, sessionID, snapshot)
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readView(t *testing.T, conn *websocket.Conn) dto.ViewResponse {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var v dto.ViewResponse
	if err := conn.ReadJSON(&v); err != nil {
		t.Fatalf("read: %v", err)
	}
	return v
}

func waitSubscribers(t *testing.T, hub *Hub, sessionID string, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Subscribers(sessionID) != want {
		if time.Now().After(deadline) {
			t.Fatalf("subscribers = %d, want %d", hub.Subscribers(sessionID), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubSendsInitialAndRenderedFrames(t *testing.T) {
	hub := NewHub(zap.NewNop())

	conn := dial(t, hub, "s1", model.View{SessionID: "s1", Balance: 1000, State: model.StateIdle})
	if v := readView(t, conn); v.Balance != 1000 || v.State != "idle" {
		t.Fatalf("initial frame = %+v", v)
	}

	waitSubscribers(t, hub, "s1", 1)

	hub.Render(context.Background(), model.View{SessionID: "s1", Balance: 990, State: model.StateSpinning})
	if v := readView(t, conn); v.Balance != 990 || v.State != "spinning" {
		t.Fatalf("rendered frame = %+v", v)
	}
}

func TestHubIsolatesSessions(t *testing.T) {
	hub := NewHub(zap.NewNop())

	conn := dial(t, hub, "s1", model.View{SessionID: "s1"})
	readView(t, conn)
	waitSubscribers(t, hub, "s1", 1)

	hub.Render(context.Background(), model.View{SessionID: "other", Balance: 1})
	hub.Render(context.Background(), model.View{SessionID: "s1", Balance: 2})

	if v := readView(t, conn); v.Balance != 2 {
		t.Fatalf("got frame for balance %d, want only own session frames", v.Balance)
	}
}

func TestHubUnsubscribesOnClose(t *testing.T) {
	hub := NewHub(zap.NewNop())

	conn := dial(t, hub, "s1", model.View{SessionID: "s1"})
	readView(t, conn)
	waitSubscribers(t, hub, "s1", 1)

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = conn.Close()

	waitSubscribers(t, hub, "s1", 0)
}

func TestRenderWithoutSubscribersDoesNotBlock(t *testing.T) {
	hub := NewHub(zap.NewNop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			hub.Render(context.Background(), model.View{SessionID: "nobody"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("render blocked")
	}
}

func TestHubKeepsFramesRenderedBeforeSnapshot(t *testing.T) {
	hub := NewHub(zap.NewNop())

	// Кадр спина приходит между подпиской и снимком состояния
	conn := dialWith(t, hub, "s1", func(deliver func(model.View)) error {
		hub.Render(context.Background(), model.View{SessionID: "s1", Balance: 990, State: model.StateSpinning})
		deliver(model.View{SessionID: "s1", Balance: 990, State: model.StateSpinning, Message: "snapshot"})
		return nil
	})

	if v := readView(t, conn); v.State != "spinning" || v.Message != "" {
		t.Fatalf("first frame = %+v, want the rendered spin frame", v)
	}
	if v := readView(t, conn); v.Message != "snapshot" {
		t.Fatalf("second frame = %+v, want the snapshot", v)
	}
}

func TestHubClosesWhenSnapshotFails(t *testing.T) {
	hub := NewHub(zap.NewNop())

	conn := dialWith(t, hub, "gone", func(func(model.View)) error {
		return errors.New("session not found")
	})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatal("expected connection to be closed")
	}
	waitSubscribers(t, hub, "gone", 0)
}
