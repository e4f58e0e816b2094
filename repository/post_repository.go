package repository

import (
	"context"

	"gorm.io/gorm"

	"vecino-activo/entity"
)

type PostRepository struct {
	Repository[entity.Post]
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{Repository[entity.Post]{DB: db}}
}

func (repo *PostRepository) FindByCategory(ctx context.Context, category string) ([]entity.Post, error) {
	q := repo.DB.WithContext(ctx).Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var posts []entity.Post
	err := q.Find(&posts).Error
	return posts, translate(err)
}
