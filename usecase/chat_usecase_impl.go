package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"vecino-activo/apperr"
	"vecino-activo/dto"
	"vecino-activo/dto/req"
	"vecino-activo/entity"
	"vecino-activo/security"
)

const (
	defaultRoomAvatar    = "💬"
	defaultSenderAvatar  = "👤"
	defaultMessagesLimit = 50
)

type ChatUsecaseImpl struct {
	ChatRepository
	Broadcaster
	*validator.Validate
	*logrus.Logger
}

func NewChatUsecase(chatRepository ChatRepository, broadcaster Broadcaster, validate *validator.Validate, logger *logrus.Logger) ChatUsecase {
	return &ChatUsecaseImpl{ChatRepository: chatRepository, Broadcaster: broadcaster, Validate: validate, Logger: logger}
}

func (uc *ChatUsecaseImpl) ListRooms(ctx context.Context) ([]entity.ChatRoom, error) {
	return uc.ChatRepository.FindAllRooms(ctx)
}

func (uc *ChatUsecaseImpl) CreateRoom(ctx context.Context, request *req.CreateRoomRequest) (*entity.ChatRoom, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return nil, fmt.Errorf("%w: room name is required", apperr.ErrInvalidInput)
	}
	if strings.TrimSpace(request.Name) == "" {
		return nil, fmt.Errorf("%w: room name is required", apperr.ErrInvalidInput)
	}

	avatar := request.Avatar
	if avatar == "" {
		avatar = defaultRoomAvatar
	}

	room := &entity.ChatRoom{
		Name:   request.Name,
		Avatar: avatar,
	}
	if err := uc.ChatRepository.Save(ctx, room); err != nil {
		uc.Logger.WithError(err).Error("failed to create room")
		return nil, err
	}
	return room, nil
}

func (uc *ChatUsecaseImpl) ListMessages(ctx context.Context, roomID string, limit int) ([]entity.ChatMessage, error) {
	// absent, zero and negative limits all mean the default page
	if limit <= 0 {
		limit = defaultMessagesLimit
	}
	return uc.ChatRepository.FindMessages(ctx, roomID, limit)
}

func (uc *ChatUsecaseImpl) PostMessage(ctx context.Context, claims *security.Claims, roomID, message string) (*entity.ChatMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message cannot be empty", apperr.ErrInvalidInput)
	}

	msg := &entity.ChatMessage{
		RoomID:     roomID,
		UserID:     claims.UserID,
		UserName:   claims.Name,
		UserAvatar: defaultSenderAvatar,
		Message:    message,
	}
	if err := uc.ChatRepository.SaveMessage(ctx, msg); err != nil {
		uc.Logger.WithError(err).Error("failed to save message")
		return nil, err
	}

	uc.Broadcaster.Publish(roomID, dto.EventNewMessage, msg)
	return msg, nil
}
