package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"vecino-activo/apperr"
	"vecino-activo/dto/req"
	"vecino-activo/entity"
	"vecino-activo/security"
)

type EventUsecaseImpl struct {
	EventRepository
	*validator.Validate
	*logrus.Logger
}

func NewEventUsecase(eventRepository EventRepository, validate *validator.Validate, logger *logrus.Logger) EventUsecase {
	return &EventUsecaseImpl{EventRepository: eventRepository, Validate: validate, Logger: logger}
}

func (uc *EventUsecaseImpl) List(ctx context.Context, category string) ([]entity.Event, error) {
	return uc.EventRepository.FindActive(ctx, category)
}

func (uc *EventUsecaseImpl) Get(ctx context.Context, id string) (*entity.Event, error) {
	return uc.EventRepository.FindByID(ctx, id)
}

func (uc *EventUsecaseImpl) Create(ctx context.Context, claims *security.Claims, request *req.CreateEventRequest) (*entity.Event, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return nil, fmt.Errorf("%w: title, date and category are required", apperr.ErrInvalidInput)
	}

	date, err := parseEventDate(request.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperr.ErrInvalidInput, request.Date)
	}

	event := &entity.Event{
		Title:         request.Title,
		Description:   request.Description,
		Date:          date,
		Location:      request.Location,
		Category:      request.Category,
		OrganizerID:   claims.UserID,
		OrganizerName: claims.Name,
		MaxAttendees:  request.MaxAttendees,
		ImageURL:      request.ImageURL,
		IsActive:      true,
	}
	if err := uc.EventRepository.Save(ctx, event); err != nil {
		uc.Logger.WithError(err).Error("failed to create event")
		return nil, err
	}
	return event, nil
}

func (uc *EventUsecaseImpl) Attendees(ctx context.Context, eventID string) ([]entity.EventAttendee, error) {
	return uc.EventRepository.FindAttendees(ctx, eventID)
}

func (uc *EventUsecaseImpl) Attend(ctx context.Context, eventID string, claims *security.Claims) error {
	event, err := uc.EventRepository.FindByID(ctx, eventID)
	if err != nil {
		return err
	}

	// cheap pre-check; the registration itself re-verifies capacity inside
	// the transaction, so a stale read here cannot oversubscribe the event
	if event.MaxAttendees != nil && event.CurrentAttendees >= *event.MaxAttendees {
		return apperr.ErrEventFull
	}

	attendee := &entity.EventAttendee{
		EventID:   eventID,
		UserID:    claims.UserID,
		UserName:  claims.Name,
		UserEmail: claims.Email,
	}
	if err := uc.EventRepository.RegisterAttendee(ctx, attendee); err != nil {
		return err
	}

	uc.Logger.Infof("user %s attending event %s", claims.UserID, eventID)
	return nil
}

func (uc *EventUsecaseImpl) Unattend(ctx context.Context, eventID, userID string) error {
	if err := uc.EventRepository.RemoveAttendee(ctx, eventID, userID); err != nil {
		return err
	}
	uc.Logger.Infof("user %s left event %s", userID, eventID)
	return nil
}

func parseEventDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format")
}
