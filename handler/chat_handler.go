package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"vecino-activo/apperr"
	"vecino-activo/dto/req"
	"vecino-activo/usecase"
)

type ChatHandler struct {
	usecase.ChatUsecase
	*logrus.Logger
}

func NewChatHandler(chatUsecase usecase.ChatUsecase, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{ChatUsecase: chatUsecase, Logger: logger}
}

func (handler *ChatHandler) ListRooms(ctx *fiber.Ctx) error {
	rooms, err := handler.ChatUsecase.ListRooms(ctx.Context())
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to list rooms")
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(rooms)
}

func (handler *ChatHandler) CreateRoom(ctx *fiber.Ctx) error {
	payload := new(req.CreateRoomRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return writeError(ctx, err)
	}
	room, err := handler.ChatUsecase.CreateRoom(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to create room")
		return writeError(ctx, err)
	}
	handler.Logger.Infof("Created room %s (%s)", room.ID, room.Name)
	return ctx.Status(fiber.StatusOK).JSON(room)
}

func (handler *ChatHandler) ListMessages(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 0)
	messages, err := handler.ChatUsecase.ListMessages(ctx.Context(), ctx.Params("id"), limit)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to list messages")
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(messages)
}

func (handler *ChatHandler) PostMessage(ctx *fiber.Ctx) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return writeError(ctx, apperr.ErrInvalidToken)
	}
	payload := new(req.PostMessageRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return writeError(ctx, err)
	}
	message, err := handler.ChatUsecase.PostMessage(ctx.Context(), claims, ctx.Params("id"), payload.Message)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to post message")
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(message)
}
