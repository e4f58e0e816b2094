package handler

import (
	"context"
	"encoding/json"

	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"

	"vecino-activo/dto"
	"vecino-activo/realtime"
	"vecino-activo/security"
	"vecino-activo/usecase"
)

// WebSocketHandler bridges websocket connections onto the hub. The connection
// is anonymous until it sends a message; only send_message carries a token,
// so joining rooms costs nothing and rejected senders stay connected.
type WebSocketHandler struct {
	*logrus.Logger
	hub         *realtime.Hub
	jwt         *security.JWT
	chatUsecase usecase.ChatUsecase
}

func NewWebSocketHandler(hub *realtime.Hub, jwt *security.JWT, chatUsecase usecase.ChatUsecase, logger *logrus.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		Logger:      logger,
		hub:         hub,
		jwt:         jwt,
		chatUsecase: chatUsecase,
	}
}

func (handler *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	client := realtime.NewClient(c)
	handler.hub.Register(client)
	go client.WritePump()
	defer handler.hub.Unregister(client)

	handler.Logger.Infof("Websocket client connected: %s", client.ID)

	for {
		var envelope dto.Envelope
		if err := c.ReadJSON(&envelope); err != nil {
			handler.Logger.Infof("Websocket client disconnected: %s", client.ID)
			return
		}

		switch envelope.Event {
		case dto.EventJoinRoom:
			var payload dto.JoinRoomPayload
			if err := json.Unmarshal(envelope.Data, &payload); err != nil || payload.RoomID == "" {
				continue
			}
			handler.hub.Join(client, payload.RoomID)

		case dto.EventLeaveRoom:
			var payload dto.JoinRoomPayload
			if err := json.Unmarshal(envelope.Data, &payload); err != nil || payload.RoomID == "" {
				continue
			}
			handler.hub.Leave(client, payload.RoomID)

		case dto.EventSendMessage:
			handler.handleSendMessage(client, envelope.Data)

		default:
			handler.Logger.Warnf("Unknown websocket event %q from %s", envelope.Event, client.ID)
		}
	}
}

func (handler *WebSocketHandler) handleSendMessage(client *realtime.Client, data json.RawMessage) {
	var payload dto.SendMessagePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		client.Reject("malformed payload")
		return
	}

	claims, err := handler.jwt.VerifyToken(payload.Token)
	if err != nil {
		handler.Logger.WithError(err).Warnf("Rejected message from %s: bad token", client.ID)
		client.Reject("invalid token")
		return
	}

	if _, err := handler.chatUsecase.PostMessage(context.Background(), claims, payload.RoomID, payload.Message); err != nil {
		handler.Logger.WithError(err).Warnf("Rejected message from %s", client.ID)
		client.Reject(err.Error())
	}
}
