package usecase

import (
	"context"

	"vecino-activo/dto/req"
	"vecino-activo/entity"
	"vecino-activo/security"
)

type ChatUsecase interface {
	ListRooms(ctx context.Context) ([]entity.ChatRoom, error)
	CreateRoom(ctx context.Context, request *req.CreateRoomRequest) (*entity.ChatRoom, error)
	ListMessages(ctx context.Context, roomID string, limit int) ([]entity.ChatMessage, error)
	// PostMessage persists the message and pushes it to realtime subscribers.
	// Both the REST facade and the websocket path go through it.
	PostMessage(ctx context.Context, claims *security.Claims, roomID, message string) (*entity.ChatMessage, error)
}

type ChatRepository interface {
	Save(ctx context.Context, room *entity.ChatRoom) error
	FindAllRooms(ctx context.Context) ([]entity.ChatRoom, error)
	FindMessages(ctx context.Context, roomID string, limit int) ([]entity.ChatMessage, error)
	SaveMessage(ctx context.Context, message *entity.ChatMessage) error
}

// Broadcaster is the realtime fan-out surface usecases publish to.
type Broadcaster interface {
	Publish(roomID string, event string, data any)
}
