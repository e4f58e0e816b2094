package repository

import (
	"context"

	"gorm.io/gorm"

	"vecino-activo/entity"
)

type AlertRepository struct {
	Repository[entity.Alert]
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{Repository[entity.Alert]{DB: db}}
}

func (repo *AlertRepository) FindRecent(ctx context.Context) ([]entity.Alert, error) {
	var alerts []entity.Alert
	err := repo.DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&alerts).Error
	return alerts, translate(err)
}

func (repo *AlertRepository) FindByID(ctx context.Context, id string) (*entity.Alert, error) {
	var alert entity.Alert
	err := repo.DB.WithContext(ctx).Where("id = ?", id).Take(&alert).Error
	if err != nil {
		return nil, translate(err)
	}
	return &alert, nil
}
