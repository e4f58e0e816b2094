package usecase

import (
	"context"

	"vecino-activo/dto/req"
	"vecino-activo/entity"
	"vecino-activo/security"
)

type AlertUsecase interface {
	List(ctx context.Context) ([]entity.Alert, error)
	Create(ctx context.Context, claims *security.Claims, request *req.CreateAlertRequest) (*entity.Alert, error)
	Resolve(ctx context.Context, id string) (*entity.Alert, error)
}

type AlertRepository interface {
	Save(ctx context.Context, alert *entity.Alert) error
	Update(ctx context.Context, alert *entity.Alert) error
	FindRecent(ctx context.Context) ([]entity.Alert, error)
	FindByID(ctx context.Context, id string) (*entity.Alert, error)
}
