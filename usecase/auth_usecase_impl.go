package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"vecino-activo/apperr"
	"vecino-activo/dto/req"
	"vecino-activo/dto/res"
	"vecino-activo/entity"
	"vecino-activo/security"
	"vecino-activo/util"
)

type AuthUsecaseImpl struct {
	UserRepository
	*validator.Validate
	*logrus.Logger
	*security.JWT
}

func NewAuthUsecase(userRepository UserRepository, validate *validator.Validate, logger *logrus.Logger, jwt *security.JWT) AuthUsecase {
	return &AuthUsecaseImpl{UserRepository: userRepository, Validate: validate, Logger: logger, JWT: jwt}
}

func (uc *AuthUsecaseImpl) Register(ctx context.Context, request *req.RegisterRequest) (*res.AuthResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return nil, fmt.Errorf("%w: %s", apperr.ErrInvalidInput, err)
	}

	hash, err := util.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	newUser := &entity.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hash,
	}

	if err := uc.UserRepository.Save(ctx, newUser); err != nil {
		if errors.Is(err, apperr.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: user already exists", apperr.ErrAlreadyExists)
		}
		uc.Logger.WithError(err).Error("failed to create user")
		return nil, err
	}

	return uc.issueToken(newUser)
}

func (uc *AuthUsecaseImpl) Login(ctx context.Context, request *req.LoginRequest) (*res.AuthResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return nil, fmt.Errorf("%w: %s", apperr.ErrInvalidInput, err)
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			// unknown email and bad password answer the same way
			return nil, apperr.ErrInvalidCredential
		}
		uc.Logger.WithError(err).Error("failed to look up user")
		return nil, err
	}

	if !util.ComparePassword(user.PasswordHash, request.Password) {
		return nil, apperr.ErrInvalidCredential
	}

	return uc.issueToken(user)
}

func (uc *AuthUsecaseImpl) issueToken(user *entity.User) (*res.AuthResponse, error) {
	token, err := uc.JWT.GenerateToken(user)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to generate token")
		return nil, err
	}

	return &res.AuthResponse{
		Token: token,
		User: res.UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
	}, nil
}
