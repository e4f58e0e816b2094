package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vecino-activo/apperr"
)

// Repository is the generic CRUD base every per-domain repository embeds.
type Repository[T any] struct {
	DB *gorm.DB
}

func (repo Repository[T]) Save(ctx context.Context, entity *T) error {
	return translate(repo.DB.WithContext(ctx).Create(entity).Error)
}

func (repo Repository[T]) Update(ctx context.Context, entity *T) error {
	return translate(repo.DB.WithContext(ctx).Save(entity).Error)
}

func (repo Repository[T]) Delete(ctx context.Context, entity *T) error {
	return translate(repo.DB.WithContext(ctx).Delete(entity).Error)
}

func (repo Repository[T]) FindById(ctx context.Context, entity *T, id string) error {
	return translate(repo.DB.WithContext(ctx).Where("id = ?", id).Take(entity).Error)
}

func (repo Repository[T]) FindAll(ctx context.Context, entities *[]T) error {
	return translate(repo.DB.WithContext(ctx).Find(entities).Error)
}

// translate maps gorm's sentinel errors onto the application taxonomy so
// usecases never import gorm.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.ErrAlreadyExists
	default:
		return err
	}
}
