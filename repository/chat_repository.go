package repository

import (
	"context"

	"gorm.io/gorm"

	"vecino-activo/entity"
)

type ChatRepository struct {
	Repository[entity.ChatRoom]
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{Repository[entity.ChatRoom]{DB: db}}
}

// FindAllRooms returns every room in creation order, oldest first.
func (repo *ChatRepository) FindAllRooms(ctx context.Context) ([]entity.ChatRoom, error) {
	var rooms []entity.ChatRoom
	err := repo.DB.WithContext(ctx).
		Order("created_at ASC").
		Find(&rooms).Error
	return rooms, translate(err)
}

// FindMessages returns the first limit messages of a room in ascending
// creation order. The usecase normalizes limit to a positive value before
// calling; a non-positive limit falls through uncapped.
func (repo *ChatRepository) FindMessages(ctx context.Context, roomID string, limit int) ([]entity.ChatMessage, error) {
	q := repo.DB.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var messages []entity.ChatMessage
	err := q.Find(&messages).Error
	return messages, translate(err)
}

func (repo *ChatRepository) SaveMessage(ctx context.Context, message *entity.ChatMessage) error {
	return translate(repo.DB.WithContext(ctx).Create(message).Error)
}
