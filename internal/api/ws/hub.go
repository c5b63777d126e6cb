package ws

import (
	"context"
	"fruit_slots/internal/converter"
	"fruit_slots/internal/model"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

const (
	sendBuffer = 64
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub рассылает кадры сессии всем ее подписчикам по websocket
type Hub struct {
	log      *zap.Logger
	mutex    sync.RWMutex
	channels map[string]map[*client]struct{}
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		log:      log.With(zap.String("component", "ws/hub")),
		channels: make(map[string]map[*client]struct{}),
	}
}

// Render отправляет кадр подписчикам сессии. Медленный клиент теряет кадры, спин его не ждет
func (hub *Hub) Render(_ context.Context, view model.View) {
	hub.mutex.RLock()
	receivers := hub.channels[view.SessionID]
	if len(receivers) == 0 {
		hub.mutex.RUnlock()
		return
	}

	data, err := json.Marshal(converter.ToViewResponse(view))
	if err != nil {
		hub.mutex.RUnlock()
		hub.log.Error("failed to marshal view", zap.Error(err))
		return
	}

	for c := range receivers {
		hub.enqueue(c, data, view.SessionID)
	}
	hub.mutex.RUnlock()
}

// deliver отправляет кадр одному клиенту
func (hub *Hub) deliver(c *client, view model.View) {
	data, err := json.Marshal(converter.ToViewResponse(view))
	if err != nil {
		hub.log.Error("failed to marshal view", zap.Error(err))
		return
	}
	hub.enqueue(c, data, view.SessionID)
}

func (hub *Hub) enqueue(c *client, data []byte, sessionID string) {
	select {
	case c.send <- data:
	default:
		hub.log.Debug("dropping frame for slow subscriber", zap.String("session_id", sessionID))
	}
}

// Subscribers количество подписчиков сессии
func (hub *Hub) Subscribers(sessionID string) int {
	hub.mutex.RLock()
	defer hub.mutex.RUnlock()
	return len(hub.channels[sessionID])
}

// HandleConnection поднимает websocket и держит его, пока клиент не отключится.
// Клиент подписывается до снимка состояния, поэтому кадры во время спина не теряются.
func (hub *Hub) HandleConnection(w http.ResponseWriter, r *http.Request, sessionID string, snapshot func(deliver func(model.View)) error) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.log.Error("failed to upgrade connection", zap.Error(err))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	hub.subscribe(sessionID, c)
	defer hub.unsubscribe(sessionID, c)

	if err := snapshot(func(v model.View) { hub.deliver(c, v) }); err != nil {
		hub.log.Warn("failed to take session snapshot", zap.String("session_id", sessionID), zap.Error(err))
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"), time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}

	done := make(chan struct{})
	go hub.writePump(c, done)
	hub.readPump(c)
	close(done)
}

func (hub *Hub) subscribe(sessionID string, c *client) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	if hub.channels[sessionID] == nil {
		hub.channels[sessionID] = make(map[*client]struct{})
	}
	hub.channels[sessionID][c] = struct{}{}
	hub.log.Debug("subscribed", zap.String("session_id", sessionID))
}

func (hub *Hub) unsubscribe(sessionID string, c *client) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	delete(hub.channels[sessionID], c)
	if len(hub.channels[sessionID]) == 0 {
		delete(hub.channels, sessionID)
	}
	hub.log.Debug("unsubscribed", zap.String("session_id", sessionID))
}

// readPump читает только служебные сообщения, ввод игрока идет через HTTP
func (hub *Hub) readPump(c *client) {
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				hub.log.Warn("failed to read message", zap.Error(err))
			}
			return
		}
	}
}

func (hub *Hub) writePump(c *client, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.conn.Close(); err != nil {
			hub.log.Debug("failed to close connection", zap.Error(err))
		}
	}()

	for {
		select {
		case <-done:
			_ = c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				hub.log.Warn("failed to write message", zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
