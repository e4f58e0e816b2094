package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"vecino-activo/dto/req"
	"vecino-activo/usecase"
)

type ServiceHandler struct {
	usecase.ServiceUsecase
	*logrus.Logger
}

func NewServiceHandler(serviceUsecase usecase.ServiceUsecase, logger *logrus.Logger) *ServiceHandler {
	return &ServiceHandler{ServiceUsecase: serviceUsecase, Logger: logger}
}

func (handler *ServiceHandler) List(ctx *fiber.Ctx) error {
	services, err := handler.ServiceUsecase.List(ctx.Context(), ctx.Query("category"))
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to list services")
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(services)
}

func (handler *ServiceHandler) Get(ctx *fiber.Ctx) error {
	service, err := handler.ServiceUsecase.Get(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(service)
}

func (handler *ServiceHandler) Create(ctx *fiber.Ctx) error {
	payload := new(req.CreateServiceRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return writeError(ctx, err)
	}
	service, err := handler.ServiceUsecase.Create(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to create service")
		return writeError(ctx, err)
	}
	handler.Logger.Infof("Created service %s (%s)", service.ID, service.Name)
	return ctx.Status(fiber.StatusOK).JSON(service)
}
