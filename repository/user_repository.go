package repository

import (
	"context"

	"gorm.io/gorm"

	"vecino-activo/entity"
)

type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Repository[entity.User]{DB: db}}
}

func (repo *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := repo.DB.WithContext(ctx).Where("email = ?", email).Take(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
