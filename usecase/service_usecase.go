package usecase

import (
	"context"

	"vecino-activo/dto/req"
	"vecino-activo/entity"
)

type ServiceUsecase interface {
	List(ctx context.Context, category string) ([]entity.Service, error)
	Get(ctx context.Context, id string) (*entity.Service, error)
	Create(ctx context.Context, request *req.CreateServiceRequest) (*entity.Service, error)
}

type ServiceRepository interface {
	Save(ctx context.Context, service *entity.Service) error
	FindByCategory(ctx context.Context, category string) ([]entity.Service, error)
	FindByID(ctx context.Context, id string) (*entity.Service, error)
}
