package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"vecino-activo/apperr"
	"vecino-activo/entity"
	"vecino-activo/geo"
)

type NeighborhoodUsecaseImpl struct {
	NeighborhoodRepository
	*logrus.Logger
}

func NewNeighborhoodUsecase(neighborhoodRepository NeighborhoodRepository, logger *logrus.Logger) NeighborhoodUsecase {
	return &NeighborhoodUsecaseImpl{NeighborhoodRepository: neighborhoodRepository, Logger: logger}
}

func (uc *NeighborhoodUsecaseImpl) ListInViewport(ctx context.Context, bbox string) ([]entity.Neighborhood, error) {
	if bbox == "" {
		return uc.NeighborhoodRepository.FindAllOrdered(ctx)
	}

	bounds, err := geo.ParseBBox(bbox)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperr.ErrInvalidInput, err)
	}
	return uc.NeighborhoodRepository.FindIntersecting(ctx, bounds)
}

func (uc *NeighborhoodUsecaseImpl) Get(ctx context.Context, id string) (*entity.Neighborhood, error) {
	return uc.NeighborhoodRepository.FindByID(ctx, id)
}
