package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"vecino-activo/apperr"
	"vecino-activo/dto/req"
	"vecino-activo/usecase"
)

type PostHandler struct {
	usecase.PostUsecase
	*logrus.Logger
}

func NewPostHandler(postUsecase usecase.PostUsecase, logger *logrus.Logger) *PostHandler {
	return &PostHandler{PostUsecase: postUsecase, Logger: logger}
}

func (handler *PostHandler) List(ctx *fiber.Ctx) error {
	posts, err := handler.PostUsecase.List(ctx.Context(), ctx.Query("category"))
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to list posts")
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(posts)
}

func (handler *PostHandler) Create(ctx *fiber.Ctx) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return writeError(ctx, apperr.ErrInvalidToken)
	}
	payload := new(req.CreatePostRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return writeError(ctx, err)
	}
	post, err := handler.PostUsecase.Create(ctx.Context(), claims, payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to create post")
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(post)
}
