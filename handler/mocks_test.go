package handler

import (
	"context"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"vecino-activo/dto/req"
	"vecino-activo/dto/res"
	"vecino-activo/entity"
	"vecino-activo/security"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// withClaims injects an authenticated identity the way the auth middleware
// would, so protected handlers can be exercised without real tokens.
func withClaims(claims *security.Claims) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("claims", claims)
		return c.Next()
	}
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, request *req.RegisterRequest) (*res.AuthResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*res.AuthResponse), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *req.LoginRequest) (*res.AuthResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*res.AuthResponse), args.Error(1)
}

type MockChatUsecase struct {
	mock.Mock
}

func (m *MockChatUsecase) ListRooms(ctx context.Context) ([]entity.ChatRoom, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ChatRoom), args.Error(1)
}

func (m *MockChatUsecase) CreateRoom(ctx context.Context, request *req.CreateRoomRequest) (*entity.ChatRoom, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChatRoom), args.Error(1)
}

func (m *MockChatUsecase) ListMessages(ctx context.Context, roomID string, limit int) ([]entity.ChatMessage, error) {
	args := m.Called(ctx, roomID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ChatMessage), args.Error(1)
}

func (m *MockChatUsecase) PostMessage(ctx context.Context, claims *security.Claims, roomID, message string) (*entity.ChatMessage, error) {
	args := m.Called(ctx, claims, roomID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChatMessage), args.Error(1)
}

type MockEventUsecase struct {
	mock.Mock
}

func (m *MockEventUsecase) List(ctx context.Context, category string) ([]entity.Event, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Event), args.Error(1)
}

func (m *MockEventUsecase) Get(ctx context.Context, id string) (*entity.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Event), args.Error(1)
}

func (m *MockEventUsecase) Create(ctx context.Context, claims *security.Claims, request *req.CreateEventRequest) (*entity.Event, error) {
	args := m.Called(ctx, claims, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Event), args.Error(1)
}

func (m *MockEventUsecase) Attendees(ctx context.Context, eventID string) ([]entity.EventAttendee, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.EventAttendee), args.Error(1)
}

func (m *MockEventUsecase) Attend(ctx context.Context, eventID string, claims *security.Claims) error {
	args := m.Called(ctx, eventID, claims)
	return args.Error(0)
}

func (m *MockEventUsecase) Unattend(ctx context.Context, eventID, userID string) error {
	args := m.Called(ctx, eventID, userID)
	return args.Error(0)
}
