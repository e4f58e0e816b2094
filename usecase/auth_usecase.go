package usecase

import (
	"context"

	"vecino-activo/dto/req"
	"vecino-activo/dto/res"
	"vecino-activo/entity"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *req.RegisterRequest) (*res.AuthResponse, error)
	Login(ctx context.Context, request *req.LoginRequest) (*res.AuthResponse, error)
}

// UserRepository is the persistence surface the auth usecase needs.
type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
