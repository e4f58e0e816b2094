package realtime

import (
	"github.com/google/uuid"

	"vecino-activo/dto"
)

// Conn is the subset of the websocket connection the hub writes to.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

// Client is one realtime connection. Its room membership is owned by the hub
// run loop and is ephemeral: nothing about it survives a disconnect.
type Client struct {
	ID   string
	conn Conn
	send chan dto.OutboundEvent
	done chan struct{}

	// touched only by the hub goroutine
	rooms map[string]bool
}

func NewClient(conn Conn) *Client {
	return &Client{
		ID:    uuid.New().String(),
		conn:  conn,
		send:  make(chan dto.OutboundEvent, 16),
		done:  make(chan struct{}),
		rooms: make(map[string]bool),
	}
}

// WritePump drains the send channel onto the connection. It returns when the
// hub drops the client or a write fails. send is never closed; done is the
// shutdown signal, so the read goroutine can keep sending through Reject
// without racing the hub.
func (c *Client) WritePump() {
	defer c.conn.Close()
	for {
		select {
		case evt := <-c.send:
			if err := c.conn.WriteJSON(evt); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

// Reject pushes a message_rejected event to this connection only. Safe to
// call from the read goroutine even after the hub has dropped the client.
func (c *Client) Reject(reason string) {
	evt := dto.OutboundEvent{
		Event: dto.EventMessageRejected,
		Data:  dto.MessageRejectedPayload{Reason: reason},
	}
	select {
	case <-c.done:
	case c.send <- evt:
	default:
	}
}
