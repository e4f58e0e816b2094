package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vecino-activo/entity"
	"vecino-activo/geo"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) Save(ctx context.Context, room *entity.ChatRoom) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockChatRepository) FindAllRooms(ctx context.Context) ([]entity.ChatRoom, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.ChatRoom), args.Error(1)
}

func (m *MockChatRepository) FindMessages(ctx context.Context, roomID string, limit int) ([]entity.ChatMessage, error) {
	args := m.Called(ctx, roomID, limit)
	return args.Get(0).([]entity.ChatMessage), args.Error(1)
}

func (m *MockChatRepository) SaveMessage(ctx context.Context, message *entity.ChatMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Save(ctx context.Context, event *entity.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindActive(ctx context.Context, category string) ([]entity.Event, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]entity.Event), args.Error(1)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id string) (*entity.Event, error) {
	args := m.Called(ctx, id)
	if event, ok := args.Get(0).(*entity.Event); ok {
		return event, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventRepository) FindAttendees(ctx context.Context, eventID string) ([]entity.EventAttendee, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]entity.EventAttendee), args.Error(1)
}

func (m *MockEventRepository) RegisterAttendee(ctx context.Context, attendee *entity.EventAttendee) error {
	args := m.Called(ctx, attendee)
	return args.Error(0)
}

func (m *MockEventRepository) RemoveAttendee(ctx context.Context, eventID, userID string) error {
	args := m.Called(ctx, eventID, userID)
	return args.Error(0)
}

type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) Save(ctx context.Context, alert *entity.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAlertRepository) Update(ctx context.Context, alert *entity.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAlertRepository) FindRecent(ctx context.Context) ([]entity.Alert, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Alert), args.Error(1)
}

func (m *MockAlertRepository) FindByID(ctx context.Context, id string) (*entity.Alert, error) {
	args := m.Called(ctx, id)
	if alert, ok := args.Get(0).(*entity.Alert); ok {
		return alert, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockNeighborhoodRepository struct {
	mock.Mock
}

func (m *MockNeighborhoodRepository) FindAllOrdered(ctx context.Context) ([]entity.Neighborhood, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Neighborhood), args.Error(1)
}

func (m *MockNeighborhoodRepository) FindIntersecting(ctx context.Context, bounds geo.Bounds) ([]entity.Neighborhood, error) {
	args := m.Called(ctx, bounds)
	return args.Get(0).([]entity.Neighborhood), args.Error(1)
}

func (m *MockNeighborhoodRepository) FindByID(ctx context.Context, id string) (*entity.Neighborhood, error) {
	args := m.Called(ctx, id)
	if unit, ok := args.Get(0).(*entity.Neighborhood); ok {
		return unit, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) Publish(roomID string, event string, data any) {
	m.Called(roomID, event, data)
}
