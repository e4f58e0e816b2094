package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"vecino-activo/apperr"
	"vecino-activo/dto/req"
	"vecino-activo/usecase"
)

type AlertHandler struct {
	usecase.AlertUsecase
	*logrus.Logger
}

func NewAlertHandler(alertUsecase usecase.AlertUsecase, logger *logrus.Logger) *AlertHandler {
	return &AlertHandler{AlertUsecase: alertUsecase, Logger: logger}
}

func (handler *AlertHandler) List(ctx *fiber.Ctx) error {
	alerts, err := handler.AlertUsecase.List(ctx.Context())
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to list alerts")
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(alerts)
}

func (handler *AlertHandler) Create(ctx *fiber.Ctx) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return writeError(ctx, apperr.ErrInvalidToken)
	}
	payload := new(req.CreateAlertRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return writeError(ctx, err)
	}
	alert, err := handler.AlertUsecase.Create(ctx.Context(), claims, payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to create alert")
		return writeError(ctx, err)
	}
	handler.Logger.Warnf("Alert %s raised by %s (%s)", alert.ID, claims.UserID, alert.Type)
	return ctx.Status(fiber.StatusOK).JSON(alert)
}

func (handler *AlertHandler) Resolve(ctx *fiber.Ctx) error {
	alert, err := handler.AlertUsecase.Resolve(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(alert)
}
