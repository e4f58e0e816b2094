package repository

import (
	"context"

	"gorm.io/gorm"

	"vecino-activo/entity"
)

type ServiceRepository struct {
	Repository[entity.Service]
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{Repository[entity.Service]{DB: db}}
}

func (repo *ServiceRepository) FindByCategory(ctx context.Context, category string) ([]entity.Service, error) {
	q := repo.DB.WithContext(ctx).Order("rating DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var services []entity.Service
	err := q.Find(&services).Error
	return services, translate(err)
}

func (repo *ServiceRepository) FindByID(ctx context.Context, id string) (*entity.Service, error) {
	var service entity.Service
	err := repo.DB.WithContext(ctx).Where("id = ?", id).Take(&service).Error
	if err != nil {
		return nil, translate(err)
	}
	return &service, nil
}
