package realtime

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"vecino-activo/dto"
)

// redisChannel carries room broadcasts between backend instances.
const redisChannel = "vecino:rooms"

type subscription struct {
	client *Client
	roomID string
}

type roomEvent struct {
	roomID string
	event  dto.OutboundEvent
}

// Hub routes room broadcasts to subscribed connections. All membership state
// lives in the run loop's goroutine, so no lock guards the maps. When a redis
// client is configured, every publish goes through redis pub/sub and comes
// back through the subscription, so multiple backend instances fan out the
// same stream in the same order.
type Hub struct {
	log *logrus.Logger
	rdb *redis.Client

	register   chan *Client
	unregister chan *Client
	join       chan subscription
	leave      chan subscription
	broadcast  chan roomEvent
	done       chan struct{}

	clients map[string]*Client
	rooms   map[string]map[string]*Client
}

func NewHub(log *logrus.Logger, rdb *redis.Client) *Hub {
	return &Hub{
		log:        log,
		rdb:        rdb,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		join:       make(chan subscription),
		leave:      make(chan subscription),
		broadcast:  make(chan roomEvent, 64),
		done:       make(chan struct{}),
		clients:    make(map[string]*Client),
		rooms:      make(map[string]map[string]*Client),
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeLoop()
	}

	for {
		select {
		case client := <-h.register:
			h.clients[client.ID] = client

		case client := <-h.unregister:
			h.drop(client)

		case sub := <-h.join:
			if _, ok := h.clients[sub.client.ID]; !ok {
				continue
			}
			if h.rooms[sub.roomID] == nil {
				h.rooms[sub.roomID] = make(map[string]*Client)
			}
			h.rooms[sub.roomID][sub.client.ID] = sub.client
			sub.client.rooms[sub.roomID] = true

		case sub := <-h.leave:
			h.removeFromRoom(sub.client, sub.roomID)

		case msg := <-h.broadcast:
			for _, client := range h.rooms[msg.roomID] {
				select {
				case client.send <- msg.event:
				default:
					// slow consumer, cut it loose
					h.drop(client)
				}
			}

		case <-h.done:
			for _, client := range h.clients {
				h.drop(client)
			}
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

func (h *Hub) Register(c *Client)   { h.register <- c }
func (h *Hub) Unregister(c *Client) { h.unregister <- c }

func (h *Hub) Join(c *Client, roomID string)  { h.join <- subscription{client: c, roomID: roomID} }
func (h *Hub) Leave(c *Client, roomID string) { h.leave <- subscription{client: c, roomID: roomID} }

// Publish fans an event out to every current subscriber of the room. With a
// redis bridge the event travels through pub/sub first; otherwise it goes
// straight to the local broadcast queue.
func (h *Hub) Publish(roomID string, event string, data any) {
	if h.rdb == nil {
		h.broadcast <- roomEvent{roomID: roomID, event: dto.OutboundEvent{Event: event, Data: data}}
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		h.log.WithError(err).Error("failed to encode broadcast payload")
		return
	}
	frame, err := json.Marshal(wireMessage{RoomID: roomID, Event: event, Data: payload})
	if err != nil {
		h.log.WithError(err).Error("failed to encode broadcast frame")
		return
	}
	if err := h.rdb.Publish(context.Background(), redisChannel, frame).Err(); err != nil {
		h.log.WithError(err).Error("failed to publish broadcast to redis")
	}
}

type wireMessage struct {
	RoomID string          `json:"room_id"`
	Event  string          `json:"event"`
	Data   json.RawMessage `json:"data"`
}

func (h *Hub) subscribeLoop() {
	pubsub := h.rdb.Subscribe(context.Background(), redisChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var frame wireMessage
			if err := json.Unmarshal([]byte(msg.Payload), &frame); err != nil {
				h.log.WithError(err).Warn("dropping malformed broadcast frame")
				continue
			}
			h.broadcast <- roomEvent{
				roomID: frame.RoomID,
				event:  dto.OutboundEvent{Event: frame.Event, Data: frame.Data},
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) drop(client *Client) {
	if _, ok := h.clients[client.ID]; !ok {
		return
	}
	for roomID := range client.rooms {
		h.removeFromRoom(client, roomID)
	}
	delete(h.clients, client.ID)
	close(client.done)
}

func (h *Hub) removeFromRoom(client *Client, roomID string) {
	delete(client.rooms, roomID)
	if members, ok := h.rooms[roomID]; ok {
		delete(members, client.ID)
		if len(members) == 0 {
			delete(h.rooms, roomID)
		}
	}
}
