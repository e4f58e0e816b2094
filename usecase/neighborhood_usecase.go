package usecase

import (
	"context"

	"vecino-activo/entity"
	"vecino-activo/geo"
)

type NeighborhoodUsecase interface {
	// ListInViewport returns units overlapping the bbox query value
	// ("minLon,minLat,maxLon,maxLat"). An empty bbox returns everything.
	ListInViewport(ctx context.Context, bbox string) ([]entity.Neighborhood, error)
	Get(ctx context.Context, id string) (*entity.Neighborhood, error)
}

type NeighborhoodRepository interface {
	FindAllOrdered(ctx context.Context) ([]entity.Neighborhood, error)
	FindIntersecting(ctx context.Context, bounds geo.Bounds) ([]entity.Neighborhood, error)
	FindByID(ctx context.Context, id string) (*entity.Neighborhood, error)
}
