package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"vecino-activo/dto/req"
	"vecino-activo/usecase"
)

type AuthHandler struct {
	usecase.AuthUsecase
	*logrus.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{AuthUsecase: authUsecase, Logger: logger}
}

func (handler *AuthHandler) Register(ctx *fiber.Ctx) error {
	payload := new(req.RegisterRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return writeError(ctx, err)
	}
	response, err := handler.AuthUsecase.Register(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to register user")
		return writeError(ctx, err)
	}
	handler.Logger.Infof("Registered user %s", response.User.ID)
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *AuthHandler) Login(ctx *fiber.Ctx) error {
	payload := new(req.LoginRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return writeError(ctx, err)
	}
	response, err := handler.AuthUsecase.Login(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Warn("Failed login attempt")
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
