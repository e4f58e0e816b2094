package repository

import (
	"context"

	"gorm.io/gorm"

	"vecino-activo/entity"
	"vecino-activo/geo"
)

type NeighborhoodRepository struct {
	Repository[entity.Neighborhood]
}

func NewNeighborhoodRepository(db *gorm.DB) *NeighborhoodRepository {
	return &NeighborhoodRepository{Repository[entity.Neighborhood]{DB: db}}
}

// FindIntersecting returns the units whose stored bounding box overlaps the
// viewport. The comparison runs on the denormalized bounds columns.
func (repo *NeighborhoodRepository) FindIntersecting(ctx context.Context, b geo.Bounds) ([]entity.Neighborhood, error) {
	var units []entity.Neighborhood
	err := repo.DB.WithContext(ctx).
		Where("max_lon >= ? AND min_lon <= ? AND max_lat >= ? AND min_lat <= ?",
			b.MinLon, b.MaxLon, b.MinLat, b.MaxLat).
		Order("code ASC").
		Find(&units).Error
	return units, translate(err)
}

func (repo *NeighborhoodRepository) FindByID(ctx context.Context, id string) (*entity.Neighborhood, error) {
	var unit entity.Neighborhood
	err := repo.DB.WithContext(ctx).Where("id = ?", id).Take(&unit).Error
	if err != nil {
		return nil, translate(err)
	}
	return &unit, nil
}

func (repo *NeighborhoodRepository) FindAllOrdered(ctx context.Context) ([]entity.Neighborhood, error) {
	var units []entity.Neighborhood
	err := repo.DB.WithContext(ctx).Order("code ASC").Find(&units).Error
	return units, translate(err)
}
