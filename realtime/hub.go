package realtime

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

// Conn is the subset of *websocket.Conn the hub writes to. Kept narrow so
// tests can plug in fakes.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Event is the wire envelope delivered to subscribers and, when Redis is
// configured, carried over the pub/sub channel.
type Event struct {
	Room  Room            `json:"room"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

const pubsubChannel = "restaurant:events"

// globalRoom addresses every connected subscriber regardless of membership.
const globalRoom Room = "*"

// Hub tracks which live connections belong to which role-room or table-room
// and fans lifecycle events out to them. It is constructed explicitly in
// main and injected where publishing is needed; membership exists only after
// an explicit join.
//
// Delivery is best-effort and at-most-once per subscriber per emit: a failed
// writer is evicted, a disconnected subscriber simply misses the event.
type Hub struct {
	mu    sync.Mutex
	rooms map[Room]map[Conn]bool
	conns map[Conn]map[Room]bool

	rdb    *redis.Client
	ctx    context.Context
	cancel context.CancelFunc
}

// NewHub builds a hub. With a Redis client, emits round-trip through a
// pub/sub channel so every process sharing the channel dispatches them; with
// nil, events are dispatched in-process directly.
func NewHub(rdb *redis.Client) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		rooms:  make(map[Room]map[Conn]bool),
		conns:  make(map[Conn]map[Room]bool),
		rdb:    rdb,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Run consumes the Redis pub/sub channel until Stop. No-op without Redis.
func (h *Hub) Run() {
	if h.rdb == nil {
		return
	}

	pubsub := h.rdb.Subscribe(h.ctx, pubsubChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var ev Event
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			log.Printf("realtime: bad event payload: %v", err)
			continue
		}
		h.dispatch(ev)
	}
}

func (h *Hub) Stop() {
	h.cancel()
}

// Join adds a connection to a room. A connection belongs to no room until
// it joins one.
func (h *Hub) Join(room Room, c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[Conn]bool)
	}
	h.rooms[room][c] = true
	if h.conns[c] == nil {
		h.conns[c] = make(map[Room]bool)
	}
	h.conns[c][room] = true
}

func (h *Hub) Leave(room Room, c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms[room], c)
	if len(h.rooms[room]) == 0 {
		delete(h.rooms, room)
	}
	delete(h.conns[c], room)
	if len(h.conns[c]) == 0 {
		delete(h.conns, c)
	}
}

// Drop removes a connection from every room. Called on disconnect.
func (h *Hub) Drop(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for room := range h.conns[c] {
		delete(h.rooms[room], c)
		if len(h.rooms[room]) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(h.conns, c)
}

func (h *Hub) BroadcastToRole(role, event string, data any) {
	h.emit(RoleRoom(role), event, data)
}

func (h *Hub) BroadcastToTable(tableId uint, event string, data any) {
	h.emit(TableRoom(tableId), event, data)
}

// BroadcastGlobal reaches every joined connection exactly once.
func (h *Hub) BroadcastGlobal(event string, data any) {
	h.emit(globalRoom, event, data)
}

func (h *Hub) emit(room Room, event string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("realtime: marshal %s: %v", event, err)
		return
	}
	ev := Event{Room: room, Event: event, Data: raw}

	if h.rdb != nil {
		payload, err := json.Marshal(ev)
		if err != nil {
			log.Printf("realtime: marshal envelope %s: %v", event, err)
			return
		}
		if err := h.rdb.Publish(h.ctx, pubsubChannel, payload).Err(); err != nil {
			log.Printf("realtime: publish %s: %v", event, err)
		}
		return
	}

	h.dispatch(ev)
}

func (h *Hub) dispatch(ev Event) {
	payload, err := json.Marshal(struct {
		Event string          `json:"event"`
		Data  json.RawMessage `json:"data"`
	}{Event: ev.Event, Data: ev.Data})
	if err != nil {
		log.Printf("realtime: marshal frame %s: %v", ev.Event, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var targets map[Conn]bool
	if ev.Room == globalRoom {
		targets = make(map[Conn]bool, len(h.conns))
		for c := range h.conns {
			targets[c] = true
		}
	} else {
		targets = h.rooms[ev.Room]
	}

	for conn := range targets {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			h.dropLocked(conn)
		}
	}
}

func (h *Hub) dropLocked(c Conn) {
	for room := range h.conns[c] {
		delete(h.rooms[room], c)
		if len(h.rooms[room]) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(h.conns, c)
}
