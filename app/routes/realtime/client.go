package realtime

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 50 * time.Second
)

// clientMessage is what a connected client sends: subscribe or
// unsubscribe to a record store path inside its own tenant partition.
type clientMessage struct {
	Action string `json:"action"`
	Path   string `json:"path"`
}

// serverMessage carries a full snapshot (never a diff) or an error.
type serverMessage struct {
	Type    string                     `json:"type"`
	Path    string                     `json:"path,omitempty"`
	Exists  bool                       `json:"exists,omitempty"`
	Records map[string]json.RawMessage `json:"records,omitempty"`
	Error   string                     `json:"error,omitempty"`
}

type client struct {
	records *store.Store
	ownerID string
	conn    *websocket.Conn
	send    chan []byte
	done    chan struct{}

	mu       sync.Mutex
	releases map[string]func()
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		if cookie, err := r.Cookie("jwt_token"); err == nil {
			tokenString = cookie.Value
		}
	}
	claims, err := auth.ValidateJWT(tokenString)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	c := &client{
		records:  s.records,
		ownerID:  claims.UserID,
		conn:     conn,
		send:     make(chan []byte, 256),
		done:     make(chan struct{}),
		releases: map[string]func(){},
	}

	go c.writePump()
	c.readPump()
}

func (c *client) readPump() {
	// A hub delivery may still be in flight when the connection goes
	// away, so the send channel is never closed; writePump is stopped
	// through done instead.
	defer func() {
		c.releaseAll()
		close(c.done)
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			return
		}
		c.handleMessage(message)
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

func (c *client) handleMessage(message []byte) {
	var msg clientMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		c.sendError("", "Malformed message")
		return
	}

	switch msg.Action {
	case "subscribe":
		c.subscribe(msg.Path)
	case "unsubscribe":
		c.unsubscribe(msg.Path)
	default:
		c.sendError(msg.Path, "Unknown action")
	}
}

func (c *client) subscribe(path string) {
	if !store.ValidPath(path) {
		c.sendError(path, "Invalid path")
		return
	}
	if !store.OwnedBy(path, c.ownerID) {
		c.sendError(path, "Path outside your club")
		return
	}

	c.mu.Lock()
	if _, ok := c.releases[path]; ok {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	release, err := c.records.Subscribe(path, func(snap store.Snapshot) {
		c.deliver(path, snap)
	})
	if err != nil {
		c.sendError(path, "Subscription failed")
		return
	}

	c.mu.Lock()
	c.releases[path] = release
	c.mu.Unlock()
}

func (c *client) unsubscribe(path string) {
	c.mu.Lock()
	release, ok := c.releases[path]
	delete(c.releases, path)
	c.mu.Unlock()
	if ok {
		release()
	}
}

func (c *client) releaseAll() {
	c.mu.Lock()
	releases := c.releases
	c.releases = map[string]func(){}
	c.mu.Unlock()
	for _, release := range releases {
		release()
	}
}

func (c *client) deliver(path string, snap store.Snapshot) {
	data, err := json.Marshal(serverMessage{
		Type:    "snapshot",
		Path:    path,
		Exists:  snap.Exists,
		Records: snap.Records,
	})
	if err != nil {
		log.Printf("Failed to marshal snapshot: %v", err)
		return
	}
	select {
	case c.send <- data:
	default:
		// Slow consumer: drop this snapshot, the next mutation
		// delivers a fresh full one anyway.
	}
}

func (c *client) sendError(path, reason string) {
	data, _ := json.Marshal(serverMessage{Type: "error", Path: path, Error: reason})
	select {
	case c.send <- data:
	default:
	}
}
