package dto

import "encoding/json"

// Realtime channel events.
const (
	EventJoinRoom        = "join_room"
	EventLeaveRoom       = "leave_room"
	EventSendMessage     = "send_message"
	EventNewMessage      = "new_message"
	EventMessageRejected = "message_rejected"
	EventAlertRaised     = "alert_raised"
)

// SecurityChannel is the well-known room id SOS alerts are broadcast to.
// Clients subscribe to it with a regular join_room.
const SecurityChannel = "security"

// Envelope is the wire frame for client-to-server events. Data stays raw
// until the event name selects a payload type.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// OutboundEvent is the server-to-client frame.
type OutboundEvent struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type JoinRoomPayload struct {
	RoomID string `json:"roomId"`
}

type SendMessagePayload struct {
	RoomID  string `json:"roomId"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

type MessageRejectedPayload struct {
	Reason string `json:"reason"`
}
