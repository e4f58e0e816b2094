package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"vecino-activo/apperr"
	"vecino-activo/dto/req"
	"vecino-activo/entity"
	"vecino-activo/security"
)

type PostUsecaseImpl struct {
	PostRepository
	*validator.Validate
	*logrus.Logger
}

func NewPostUsecase(postRepository PostRepository, validate *validator.Validate, logger *logrus.Logger) PostUsecase {
	return &PostUsecaseImpl{PostRepository: postRepository, Validate: validate, Logger: logger}
}

func (uc *PostUsecaseImpl) List(ctx context.Context, category string) ([]entity.Post, error) {
	return uc.PostRepository.FindByCategory(ctx, category)
}

func (uc *PostUsecaseImpl) Create(ctx context.Context, claims *security.Claims, request *req.CreatePostRequest) (*entity.Post, error) {
	if err := uc.Validate.Struct(request); err != nil || strings.TrimSpace(request.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", apperr.ErrInvalidInput)
	}

	post := &entity.Post{
		AuthorID:   claims.UserID,
		AuthorName: claims.Name,
		Content:    request.Content,
		Category:   request.Category,
	}
	if err := uc.PostRepository.Save(ctx, post); err != nil {
		uc.Logger.WithError(err).Error("failed to create post")
		return nil, err
	}
	return post, nil
}
