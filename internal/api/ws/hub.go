package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"gomoku/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	sendBuffer   = 32
	maxFrameSize = 4096
)

type Hub struct {
	mu           sync.RWMutex
	rooms        map[string]map[*client]struct{}
	sessions     SessionService
	pingInterval time.Duration
}

type client struct {
	code string
	send chan []byte
}

type message struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data,omitempty"`
}

type movePayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewHub(sessions SessionService, pingInterval time.Duration) *Hub {
	if pingInterval <= 0 {
		pingInterval = 30 * time.Second
	}
	return &Hub{
		rooms:        make(map[string]map[*client]struct{}),
		sessions:     sessions,
		pingInterval: pingInterval,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code", "kind": "bad_request"})
		return
	}
	view, err := h.sessions.View(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "kind": session.ErrorKind(err)})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	conn.SetReadLimit(maxFrameSize)
	log.Printf("WebSocket connection established for session: %s", code)

	cl := &client{code: code, send: make(chan []byte, sendBuffer)}
	h.register(cl)
	defer func() {
		h.unregister(cl)
		_ = conn.Close()
	}()

	go func() {
		if err := h.writeLoop(conn, cl.send); err != nil {
			log.Printf("WebSocket write failed for session %s: %v", code, err)
			_ = conn.Close()
		}
	}()
	cl.sendJSON("state", view)

	for {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("Error reading WebSocket message: %v", err)
			}
			return
		}
		h.handle(cl, msg)
	}
}

// handle runs one client action. State changes reach every client through
// the session manager's broadcasts; only rejections and explicit state
// requests are answered to the sender alone.
func (h *Hub) handle(cl *client, msg message) {
	switch msg.Action {
	case "move":
		var mv movePayload
		if err := json.Unmarshal(msg.Data, &mv); err != nil {
			cl.sendJSON("error", gin.H{"error": "invalid move payload", "kind": "bad_request"})
			return
		}
		if _, err := h.sessions.Move(cl.code, mv.Row, mv.Col); err != nil {
			cl.sendError(err)
		}
	case "reset":
		if _, err := h.sessions.Reset(cl.code); err != nil {
			cl.sendError(err)
		}
	case "state":
		view, err := h.sessions.View(cl.code)
		if err != nil {
			cl.sendError(err)
			return
		}
		cl.sendJSON("state", view)
	default:
		log.Printf("Unknown action: %s", msg.Action)
		cl.sendJSON("error", gin.H{"error": "unknown action " + msg.Action, "kind": "bad_request"})
	}
}

func (h *Hub) Broadcast(code string, action string, data interface{}) {
	if h == nil {
		return
	}
	payload, err := encode(action, data)
	if err != nil {
		log.Printf("Failed to encode %s broadcast: %v", action, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for cl := range h.rooms[code] {
		cl.push(payload)
	}
}

// Clients returns how many connections are attached to a session.
func (h *Hub) Clients(code string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[code])
}

func (h *Hub) register(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[cl.code]; !ok {
		h.rooms[cl.code] = make(map[*client]struct{})
	}
	h.rooms[cl.code][cl] = struct{}{}
}

func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.rooms[cl.code]
	if !ok {
		return
	}
	if _, ok := clients[cl]; ok {
		delete(clients, cl)
		close(cl.send)
	}
	if len(clients) == 0 {
		delete(h.rooms, cl.code)
	}
}

func (h *Hub) writeLoop(conn *websocket.Conn, send <-chan []byte) error {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()
	lastWrite := time.Now()
	ping, _ := encode("ping", nil)

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < h.pingInterval {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, ping); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}

func encode(action string, data interface{}) ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"action": action,
		"data":   data,
	})
}

// push drops the message when the client is too slow to drain its buffer.
func (cl *client) push(payload []byte) {
	select {
	case cl.send <- payload:
	default:
		log.Printf("Dropping message for slow client in session %s", cl.code)
	}
}

func (cl *client) sendJSON(action string, data interface{}) {
	payload, err := encode(action, data)
	if err != nil {
		log.Printf("Failed to encode %s message: %v", action, err)
		return
	}
	cl.push(payload)
}

func (cl *client) sendError(err error) {
	cl.sendJSON("error", gin.H{"error": err.Error(), "kind": session.ErrorKind(err)})
}
