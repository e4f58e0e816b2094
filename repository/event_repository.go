package repository

import (
	"context"

	"gorm.io/gorm"

	"vecino-activo/apperr"
	"vecino-activo/entity"
)

type EventRepository struct {
	Repository[entity.Event]
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{Repository[entity.Event]{DB: db}}
}

func (repo *EventRepository) FindActive(ctx context.Context, category string) ([]entity.Event, error) {
	q := repo.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("date ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var events []entity.Event
	err := q.Find(&events).Error
	return events, translate(err)
}

func (repo *EventRepository) FindByID(ctx context.Context, id string) (*entity.Event, error) {
	var event entity.Event
	err := repo.DB.WithContext(ctx).Where("id = ?", id).Take(&event).Error
	if err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

func (repo *EventRepository) FindAttendees(ctx context.Context, eventID string) ([]entity.EventAttendee, error) {
	var attendees []entity.EventAttendee
	err := repo.DB.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&attendees).Error
	return attendees, translate(err)
}

// RegisterAttendee inserts the attendee row and bumps the denormalized counter
// in one transaction. The increment is conditional on remaining capacity, so
// the counter can never pass max_attendees even under concurrent registrations
// across backend instances.
func (repo *EventRepository) RegisterAttendee(ctx context.Context, attendee *entity.EventAttendee) error {
	return repo.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attendee).Error; err != nil {
			return translate(err)
		}

		res := tx.Model(&entity.Event{}).
			Where("id = ? AND (max_attendees IS NULL OR current_attendees < max_attendees)", attendee.EventID).
			UpdateColumn("current_attendees", gorm.Expr("current_attendees + 1"))
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			// rolls back the attendee insert
			return apperr.ErrEventFull
		}
		return nil
	})
}

// RemoveAttendee deletes the attendee row and decrements the counter, floored
// at zero, in one transaction.
func (repo *EventRepository) RemoveAttendee(ctx context.Context, eventID, userID string) error {
	return repo.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Unscoped().
			Where("event_id = ? AND user_id = ?", eventID, userID).
			Delete(&entity.EventAttendee{})
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.ErrNotRegistered
		}

		return translate(tx.Model(&entity.Event{}).
			Where("id = ?", eventID).
			UpdateColumn("current_attendees", gorm.Expr("GREATEST(current_attendees - 1, 0)")).Error)
	})
}
