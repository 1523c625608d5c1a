package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"gridplay/internal/room"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Manager is the slice of the room manager the hub dispatches into.
type Manager interface {
	Join(kind room.Kind, roomID, connID, name string) error
	OthelloMove(roomID, connID string, row, col int)
	PuzzleMove(roomID, connID string, slot, row, col int)
	Leave(roomID, connID string)
}

// client is one websocket participant. The connection id is stable for the
// connection's lifetime and is what the manager knows seats by.
type client struct {
	id     string
	conn   *websocket.Conn
	wmu    sync.Mutex // gorilla allows a single concurrent writer
	roomID string
}

func (c *client) send(event string, data interface{}) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	return c.conn.WriteJSON(map[string]interface{}{
		"event": event,
		"data":  data,
	})
}

// Hub owns the connection registry and relays events between clients and the
// room manager. It implements the manager's Broadcaster interface.
type Hub struct {
	mu      sync.RWMutex
	conns   map[string]*client            // connID -> client
	rooms   map[string]map[string]*client // roomID -> connID -> client
	manager Manager
	logger  *zap.Logger
}

func NewHub(manager Manager, logger *zap.Logger) *Hub {
	return &Hub{
		conns:   make(map[string]*client),
		rooms:   make(map[string]map[string]*client),
		manager: manager,
		logger:  logger,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWS upgrades the connection and runs its read loop until it drops.
// A read error is the disconnect signal: the seat is vacated via Leave.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	cl := &client{id: uuid.NewString(), conn: conn}
	h.mu.Lock()
	h.conns[cl.id] = cl
	h.mu.Unlock()
	h.logger.Info("connection opened", zap.String("conn", cl.id))

	defer func() {
		h.drop(cl)
		_ = conn.Close()
	}()

	for {
		var msg envelope
		if err := conn.ReadJSON(&msg); err != nil {
			h.logger.Info("connection closed", zap.String("conn", cl.id), zap.Error(err))
			return
		}
		h.dispatch(cl, msg)
	}
}

func (h *Hub) dispatch(cl *client, msg envelope) {
	switch msg.Event {
	case "joinOthelloRoom":
		h.handleJoin(cl, room.KindOthello, msg.Data)
	case "joinPuzzleRoom":
		h.handleJoin(cl, room.KindPuzzle, msg.Data)
	case "othelloMove":
		var p othelloMovePayload
		if err := json.Unmarshal(msg.Data, &p); err != nil || p.RoomID != cl.roomID {
			return
		}
		h.manager.OthelloMove(p.RoomID, cl.id, p.Row, p.Col)
	case "puzzleMove":
		var p puzzleMovePayload
		if err := json.Unmarshal(msg.Data, &p); err != nil || p.RoomID != cl.roomID {
			return
		}
		h.manager.PuzzleMove(p.RoomID, cl.id, p.HandSlotIndex, p.Row, p.Col)
	default:
		h.logger.Debug("unknown event", zap.String("event", msg.Event))
	}
}

func (h *Hub) handleJoin(cl *client, kind room.Kind, data json.RawMessage) {
	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil || p.RoomID == "" {
		return
	}
	if cl.roomID != "" {
		// one seat per connection
		return
	}
	// Register with the room before Join runs so the start snapshot
	// broadcast reaches this connection too.
	h.mu.Lock()
	if _, ok := h.rooms[p.RoomID]; !ok {
		h.rooms[p.RoomID] = make(map[string]*client)
	}
	h.rooms[p.RoomID][cl.id] = cl
	h.mu.Unlock()

	if err := h.manager.Join(kind, p.RoomID, cl.id, p.DisplayName); err != nil {
		h.mu.Lock()
		delete(h.rooms[p.RoomID], cl.id)
		h.mu.Unlock()
		return
	}
	cl.roomID = p.RoomID
}

func (h *Hub) drop(cl *client) {
	h.mu.Lock()
	delete(h.conns, cl.id)
	if cl.roomID != "" {
		if members, ok := h.rooms[cl.roomID]; ok {
			delete(members, cl.id)
			if len(members) == 0 {
				delete(h.rooms, cl.roomID)
			}
		}
	}
	h.mu.Unlock()
	if cl.roomID != "" {
		h.manager.Leave(cl.roomID, cl.id)
	}
}

// Broadcast fans an event out to every connection currently associated with
// the room.
func (h *Hub) Broadcast(roomID string, event string, data interface{}) {
	h.mu.RLock()
	members := make([]*client, 0, len(h.rooms[roomID]))
	for _, cl := range h.rooms[roomID] {
		members = append(members, cl)
	}
	h.mu.RUnlock()
	for _, cl := range members {
		if err := cl.send(event, data); err != nil {
			h.logger.Warn("broadcast write failed",
				zap.String("conn", cl.id),
				zap.String("event", event),
				zap.Error(err),
			)
		}
	}
}

// Send delivers an event to a single connection.
func (h *Hub) Send(connID string, event string, data interface{}) {
	h.mu.RLock()
	cl, ok := h.conns[connID]
	h.mu.RUnlock()
	if !ok {
		return
	}
	if err := cl.send(event, data); err != nil {
		h.logger.Warn("send failed",
			zap.String("conn", connID),
			zap.String("event", event),
			zap.Error(err),
		)
	}
}
