package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"vecino-activo/apperr"
	"vecino-activo/dto/req"
	"vecino-activo/entity"
)

type ServiceUsecaseImpl struct {
	ServiceRepository
	*validator.Validate
	*logrus.Logger
}

func NewServiceUsecase(serviceRepository ServiceRepository, validate *validator.Validate, logger *logrus.Logger) ServiceUsecase {
	return &ServiceUsecaseImpl{ServiceRepository: serviceRepository, Validate: validate, Logger: logger}
}

func (uc *ServiceUsecaseImpl) List(ctx context.Context, category string) ([]entity.Service, error) {
	return uc.ServiceRepository.FindByCategory(ctx, category)
}

func (uc *ServiceUsecaseImpl) Get(ctx context.Context, id string) (*entity.Service, error) {
	return uc.ServiceRepository.FindByID(ctx, id)
}

func (uc *ServiceUsecaseImpl) Create(ctx context.Context, request *req.CreateServiceRequest) (*entity.Service, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return nil, fmt.Errorf("%w: name and category are required", apperr.ErrInvalidInput)
	}

	// listings start unverified and unrated
	service := &entity.Service{
		Name:        request.Name,
		Category:    request.Category,
		Description: request.Description,
		Phone:       request.Phone,
		Email:       request.Email,
		Address:     request.Address,
		ImageURL:    request.ImageURL,
		IsVerified:  false,
	}
	if err := uc.ServiceRepository.Save(ctx, service); err != nil {
		uc.Logger.WithError(err).Error("failed to create service listing")
		return nil, err
	}
	return service, nil
}
