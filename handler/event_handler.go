package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"vecino-activo/apperr"
	"vecino-activo/dto/req"
	"vecino-activo/dto/res"
	"vecino-activo/usecase"
)

type EventHandler struct {
	usecase.EventUsecase
	*logrus.Logger
}

func NewEventHandler(eventUsecase usecase.EventUsecase, logger *logrus.Logger) *EventHandler {
	return &EventHandler{EventUsecase: eventUsecase, Logger: logger}
}

func (handler *EventHandler) List(ctx *fiber.Ctx) error {
	events, err := handler.EventUsecase.List(ctx.Context(), ctx.Query("category"))
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to list events")
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(events)
}

func (handler *EventHandler) Get(ctx *fiber.Ctx) error {
	event, err := handler.EventUsecase.Get(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(event)
}

func (handler *EventHandler) Create(ctx *fiber.Ctx) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return writeError(ctx, apperr.ErrInvalidToken)
	}
	payload := new(req.CreateEventRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return writeError(ctx, err)
	}
	event, err := handler.EventUsecase.Create(ctx.Context(), claims, payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to create event")
		return writeError(ctx, err)
	}
	handler.Logger.Infof("Created event %s (%s)", event.ID, event.Title)
	return ctx.Status(fiber.StatusOK).JSON(event)
}

func (handler *EventHandler) Attendees(ctx *fiber.Ctx) error {
	attendees, err := handler.EventUsecase.Attendees(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(attendees)
}

func (handler *EventHandler) Attend(ctx *fiber.Ctx) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return writeError(ctx, apperr.ErrInvalidToken)
	}
	if err := handler.EventUsecase.Attend(ctx.Context(), ctx.Params("id"), claims); err != nil {
		handler.Logger.WithError(err).Warn("Failed to register attendance")
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(res.StatusResponse{Message: "Attendance registered"})
}

func (handler *EventHandler) Unattend(ctx *fiber.Ctx) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return writeError(ctx, apperr.ErrInvalidToken)
	}
	if err := handler.EventUsecase.Unattend(ctx.Context(), ctx.Params("id"), claims.UserID); err != nil {
		handler.Logger.WithError(err).Warn("Failed to cancel attendance")
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(res.StatusResponse{Message: "Attendance cancelled"})
}
