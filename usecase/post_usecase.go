package usecase

import (
	"context"

	"vecino-activo/dto/req"
	"vecino-activo/entity"
	"vecino-activo/security"
)

type PostUsecase interface {
	List(ctx context.Context, category string) ([]entity.Post, error)
	Create(ctx context.Context, claims *security.Claims, request *req.CreatePostRequest) (*entity.Post, error)
}

type PostRepository interface {
	Save(ctx context.Context, post *entity.Post) error
	FindByCategory(ctx context.Context, category string) ([]entity.Post, error)
}
