package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"vecino-activo/apperr"
	"vecino-activo/dto"
	"vecino-activo/dto/req"
	"vecino-activo/entity"
	"vecino-activo/enum"
	"vecino-activo/security"
)

type AlertUsecaseImpl struct {
	AlertRepository
	Broadcaster
	*validator.Validate
	*logrus.Logger
}

func NewAlertUsecase(alertRepository AlertRepository, broadcaster Broadcaster, validate *validator.Validate, logger *logrus.Logger) AlertUsecase {
	return &AlertUsecaseImpl{AlertRepository: alertRepository, Broadcaster: broadcaster, Validate: validate, Logger: logger}
}

func (uc *AlertUsecaseImpl) List(ctx context.Context) ([]entity.Alert, error) {
	return uc.AlertRepository.FindRecent(ctx)
}

func (uc *AlertUsecaseImpl) Create(ctx context.Context, claims *security.Claims, request *req.CreateAlertRequest) (*entity.Alert, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return nil, fmt.Errorf("%w: type and description are required", apperr.ErrInvalidInput)
	}

	alert := &entity.Alert{
		UserID:      claims.UserID,
		UserName:    claims.Name,
		Type:        enum.AlertType(request.Type),
		Description: request.Description,
		Location:    request.Location,
		Status:      enum.AlertStatusActive,
	}
	if err := uc.AlertRepository.Save(ctx, alert); err != nil {
		uc.Logger.WithError(err).Error("failed to create alert")
		return nil, err
	}

	if alert.Type == enum.AlertTypeSOS {
		uc.Broadcaster.Publish(dto.SecurityChannel, dto.EventAlertRaised, alert)
		uc.Logger.Warnf("SOS alert %s raised by %s", alert.ID, claims.UserID)
	}
	return alert, nil
}

func (uc *AlertUsecaseImpl) Resolve(ctx context.Context, id string) (*entity.Alert, error) {
	alert, err := uc.AlertRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if alert.Status != enum.AlertStatusResolved {
		now := time.Now()
		alert.Status = enum.AlertStatusResolved
		alert.ResolvedAt = &now
		if err := uc.AlertRepository.Update(ctx, alert); err != nil {
			uc.Logger.WithError(err).Error("failed to resolve alert")
			return nil, err
		}
	}
	return alert, nil
}
