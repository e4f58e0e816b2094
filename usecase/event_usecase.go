package usecase

import (
	"context"

	"vecino-activo/dto/req"
	"vecino-activo/entity"
	"vecino-activo/security"
)

type EventUsecase interface {
	List(ctx context.Context, category string) ([]entity.Event, error)
	Get(ctx context.Context, id string) (*entity.Event, error)
	Create(ctx context.Context, claims *security.Claims, request *req.CreateEventRequest) (*entity.Event, error)
	Attendees(ctx context.Context, eventID string) ([]entity.EventAttendee, error)
	Attend(ctx context.Context, eventID string, claims *security.Claims) error
	Unattend(ctx context.Context, eventID, userID string) error
}

type EventRepository interface {
	Save(ctx context.Context, event *entity.Event) error
	FindActive(ctx context.Context, category string) ([]entity.Event, error)
	FindByID(ctx context.Context, id string) (*entity.Event, error)
	FindAttendees(ctx context.Context, eventID string) ([]entity.EventAttendee, error)
	RegisterAttendee(ctx context.Context, attendee *entity.EventAttendee) error
	RemoveAttendee(ctx context.Context, eventID, userID string) error
}
