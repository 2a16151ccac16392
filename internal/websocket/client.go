// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package websocket

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/chavp/c4engineering/internal/logging"
	"github.com/chavp/c4engineering/internal/metrics"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512 * 1024 // 512 KB
)

// clientIDCounter generates unique, monotonically increasing IDs for
// clients. IDs give broadcasts a stable delivery order.
var clientIDCounter atomic.Uint64

// Client is a middleman between one websocket connection and the hub. Every
// client belongs to exactly one room for the lifetime of the connection.
type Client struct {
	id   uint64
	room string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewClient creates a new Client bound to the given room.
func NewClient(hub *Hub, conn *websocket.Conn, room string) *Client {
	return &Client{
		id:   clientIDCounter.Add(1),
		room: room,
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
}

// ID returns the client's connection identifier.
func (c *Client) ID() string {
	return "conn-" + strconv.FormatUint(c.id, 10)
}

// Room returns the room this client joined.
func (c *Client) Room() string {
	return c.room
}

// readPump pumps messages from the websocket connection to the hub. Pings
// are answered directly; every other frame is re-stamped with the client's
// room and relayed to the other room members.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister <- c
		_ = c.conn.Close() // best-effort cleanup
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logging.Error().Err(err).Msg("failed to set read deadline")
		return
	}

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Message
		err := c.conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Error().Err(err).Msg("unexpected websocket close error")
			}
			break
		}

		if msg.Type == MessageTypePing {
			pong, _ := json.Marshal(Message{Type: MessageTypePong, Room: c.room})
			select {
			case c.send <- pong:
			default:
			}
			continue
		}

		// The joined room always wins over whatever the frame claims.
		msg.Room = c.room
		payload, err := json.Marshal(msg)
		if err != nil {
			logging.Warn().Err(err).Str("client_id", c.ID()).Msg("failed to re-encode relayed message")
			continue
		}
		metrics.RecordBroadcast(msg.Type)
		c.hub.BroadcastToRoom(c.room, c.ID(), payload)
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close() // best-effort cleanup
	}()

	for {
		select {
		case payload, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logging.Error().Err(err).Msg("failed to set write deadline")
				return
			}

			if !ok {
				// The hub closed the channel
				if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logging.Error().Err(err).Msg("failed to write close message")
				}
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logging.Error().Err(err).Msg("failed to write message")
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logging.Error().Err(err).Msg("failed to set write deadline for ping")
				return
			}

			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Start begins reading and writing for the client.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}
