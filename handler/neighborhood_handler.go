package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"vecino-activo/usecase"
)

type NeighborhoodHandler struct {
	usecase.NeighborhoodUsecase
	*logrus.Logger
}

func NewNeighborhoodHandler(neighborhoodUsecase usecase.NeighborhoodUsecase, logger *logrus.Logger) *NeighborhoodHandler {
	return &NeighborhoodHandler{NeighborhoodUsecase: neighborhoodUsecase, Logger: logger}
}

func (handler *NeighborhoodHandler) List(ctx *fiber.Ctx) error {
	neighborhoods, err := handler.NeighborhoodUsecase.ListInViewport(ctx.Context(), ctx.Query("bbox"))
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to list neighborhoods")
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(neighborhoods)
}

func (handler *NeighborhoodHandler) Get(ctx *fiber.Ctx) error {
	neighborhood, err := handler.NeighborhoodUsecase.Get(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(neighborhood)
}
