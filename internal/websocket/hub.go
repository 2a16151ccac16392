// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package websocket

import (
	"context"
	"sort"
	"sync"

	"github.com/goccy/go-json"

	"github.com/chavp/c4engineering/internal/logging"
	"github.com/chavp/c4engineering/internal/metrics"
)

// ShutdownReason identifies why the hub is shutting down.
type ShutdownReason string

const (
	// ShutdownReasonContextCanceled indicates the parent context was canceled.
	// This is the normal graceful shutdown path (e.g., SIGTERM).
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"

	// ShutdownReasonContextDeadline indicates the context deadline was exceeded.
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

// Message types for WebSocket communication. Anything that is not a ping is
// relayed verbatim to the other members of the sender's room.
const (
	MessageTypePing = "ping"
	MessageTypePong = "pong"
)

// Message is the wire shape of every relayed frame.
type Message struct {
	Type string `json:"type"`
	Room string `json:"room"`
	Data any    `json:"data"`
}

// roomMessage is an internal broadcast envelope. Sender is the originating
// connection ID, excluded from delivery; empty means a server-side event.
type roomMessage struct {
	room    string
	sender  string
	payload []byte
}

// Hub maintains room membership and relays messages between room members.
// Rooms are keyed by diagram ID; a room exists while it has at least one
// member. The hub owns no entity state, only transport state.
type Hub struct {
	clients    map[*Client]bool
	rooms      map[string]map[*Client]bool
	broadcast  chan roomMessage
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan roomMessage, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
	}
}

// Run starts the hub (blocks forever, no context support).
//
// Deprecated: Use RunWithContext for supervised operation.
func (h *Hub) Run() {
	// Priority 1: client lifecycle events, so membership is consistent
	// before any message is delivered. Go's select picks randomly between
	// ready channels; the extra non-blocking select imposes an order.
	for {
		select {
		case client := <-h.Register:
			h.addClient(client)
			continue
		case client := <-h.Unregister:
			h.removeClient(client)
			continue
		default:
		}

		select {
		case client := <-h.Register:
			h.addClient(client)
		case client := <-h.Unregister:
			h.removeClient(client)
		case message := <-h.broadcast:
			h.deliver(message)
		}
	}
}

// RunWithContext starts the hub with context support for graceful shutdown.
// Designed for use under suture supervision: when the context is canceled
// every connected client is closed and ctx.Err() is returned, so the
// supervisor can restart the hub without orphaned connections.
func (h *Hub) RunWithContext(ctx context.Context) error {
	for {
		// Priority 1: shutdown.
		select {
		case <-ctx.Done():
			h.logGracefulShutdown(ctx)
			return ctx.Err()
		default:
		}

		// Priority 2: client lifecycle events.
		select {
		case client := <-h.Register:
			h.addClient(client)
			continue
		case client := <-h.Unregister:
			h.removeClient(client)
			continue
		default:
		}

		// Priority 3: message delivery, or block until anything arrives.
		select {
		case <-ctx.Done():
			h.logGracefulShutdown(ctx)
			return ctx.Err()
		case client := <-h.Register:
			h.addClient(client)
		case client := <-h.Unregister:
			h.removeClient(client)
		case message := <-h.broadcast:
			h.deliver(message)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	members, ok := h.rooms[client.room]
	if !ok {
		members = make(map[*Client]bool)
		h.rooms[client.room] = members
	}
	members[client] = true
	totalClients := len(h.clients)
	totalRooms := len(h.rooms)
	h.mu.Unlock()

	metrics.WSConnectedClients.Set(float64(totalClients))
	metrics.WSActiveRooms.Set(float64(totalRooms))
	logging.Info().
		Str("client_id", client.ID()).
		Str("room", client.room).
		Int("total_clients", totalClients).
		Msg("websocket client connected")
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	close(client.send)
	if members, ok := h.rooms[client.room]; ok {
		delete(members, client)
		if len(members) == 0 {
			delete(h.rooms, client.room)
		}
	}
	totalClients := len(h.clients)
	totalRooms := len(h.rooms)
	h.mu.Unlock()

	metrics.WSConnectedClients.Set(float64(totalClients))
	metrics.WSActiveRooms.Set(float64(totalRooms))
	logging.Info().
		Str("client_id", client.ID()).
		Str("room", client.room).
		Int("total_clients", totalClients).
		Msg("websocket client disconnected")
}

// deliver sends the payload to every member of the room except the sender,
// in client-ID order. Sorting prevents non-deterministic delivery order
// between members whose send buffers are contended.
func (h *Hub) deliver(message roomMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members := h.rooms[message.room]
	if len(members) == 0 {
		return
	}

	clients := make([]*Client, 0, len(members))
	for client := range members {
		if client.ID() == message.sender {
			continue
		}
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})

	var toRemove []*Client
	for _, client := range clients {
		select {
		case client.send <- message.payload:
		default:
			// Slow consumer; drop the connection rather than block the hub.
			toRemove = append(toRemove, client)
		}
	}

	for _, client := range toRemove {
		close(client.send)
		delete(h.clients, client)
		delete(members, client)
		metrics.WSDroppedMessages.Inc()
	}
	if len(members) == 0 {
		delete(h.rooms, message.room)
	}
}

// BroadcastToRoom queues the payload for delivery to every member of the
// room except the sender. Sender may be empty for server-originated events.
// The payload is dropped with a warning when the broadcast queue is full.
func (h *Hub) BroadcastToRoom(room, sender string, payload []byte) {
	select {
	case h.broadcast <- roomMessage{room: room, sender: sender, payload: payload}:
	default:
		metrics.WSDroppedMessages.Inc()
		logging.Warn().Str("room", room).Msg("broadcast channel full, dropping room message")
	}
}

// BroadcastJSON marshals a Message and queues it for the room named in the
// message. Marshal failures are logged and dropped.
func (h *Hub) BroadcastJSON(messageType, room string, data any) {
	payload, err := json.Marshal(Message{Type: messageType, Room: room, Data: data})
	if err != nil {
		logging.Warn().Err(err).Str("message_type", messageType).Msg("failed to marshal broadcast message")
		return
	}
	metrics.RecordBroadcast(messageType)
	h.BroadcastToRoom(room, "", payload)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// RoomCount returns the number of rooms with at least one member.
func (h *Hub) RoomCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms)
}

// RoomSize returns the number of members in one room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

func (h *Hub) logGracefulShutdown(ctx context.Context) {
	clientCount := h.ClientCount()
	h.closeAllClients()

	// ctx.Err() is deliberately not logged as an error: cancellation is the
	// expected shutdown path.
	logging.Info().
		Str("component", "websocket-hub").
		Str("reason", string(getShutdownReason(ctx))).
		Int("clients_closed", clientCount).
		Msg("websocket hub stopped")
}

func getShutdownReason(ctx context.Context) ShutdownReason {
	switch ctx.Err() {
	case context.Canceled:
		return ShutdownReasonContextCanceled
	case context.DeadlineExceeded:
		return ShutdownReasonContextDeadline
	default:
		return ShutdownReasonContextCanceled
	}
}

// closeAllClients closes every connected client in ID order.
func (h *Hub) closeAllClients() {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})

	for _, client := range clients {
		close(client.send)
		delete(h.clients, client)
	}
	h.rooms = make(map[string]map[*Client]bool)
	metrics.WSConnectedClients.Set(0)
	metrics.WSActiveRooms.Set(0)
	logging.Info().Msg("closed all websocket clients during shutdown")
}
