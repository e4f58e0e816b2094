package handler

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vecino-activo/apperr"
	"vecino-activo/config/common"
	"vecino-activo/dto"
	"vecino-activo/entity"
	"vecino-activo/realtime"
	"vecino-activo/security"
)

type recordingConn struct {
	writes chan dto.OutboundEvent
}

func newRecordingConn() *recordingConn {
	return &recordingConn{writes: make(chan dto.OutboundEvent, 16)}
}

func (c *recordingConn) WriteJSON(v any) error {
	if evt, ok := v.(dto.OutboundEvent); ok {
		c.writes <- evt
	}
	return nil
}

func (c *recordingConn) Close() error { return nil }

func (c *recordingConn) waitForEvent(t *testing.T) dto.OutboundEvent {
	t.Helper()
	select {
	case evt := <-c.writes:
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return dto.OutboundEvent{}
	}
}

func (c *recordingConn) assertNoEvent(t *testing.T) {
	t.Helper()
	select {
	case evt := <-c.writes:
		t.Fatalf("unexpected event delivered: %+v", evt)
	case <-time.After(100 * time.Millisecond):
	}
}

func newWebSocketFixture(chatUsecase *MockChatUsecase) (*WebSocketHandler, *security.JWT, *realtime.Client, *recordingConn) {
	v := viper.New()
	v.Set("JWT_SECRET", "test-secret")
	jwt := security.NewJWT(&common.Config{Viper: v})

	hub := realtime.NewHub(testLogger(), nil)
	h := NewWebSocketHandler(hub, jwt, chatUsecase, testLogger())

	conn := newRecordingConn()
	client := realtime.NewClient(conn)
	go client.WritePump()
	return h, jwt, client, conn
}

func rejection(t *testing.T, evt dto.OutboundEvent) dto.MessageRejectedPayload {
	t.Helper()
	require.Equal(t, dto.EventMessageRejected, evt.Event)
	payload, ok := evt.Data.(dto.MessageRejectedPayload)
	require.True(t, ok)
	return payload
}

func TestSendMessageWithBadTokenIsRejected(t *testing.T) {
	chatUsecase := new(MockChatUsecase)
	h, _, client, conn := newWebSocketFixture(chatUsecase)

	payload, err := json.Marshal(dto.SendMessagePayload{
		RoomID: "room-1", Message: "hola", Token: "not-a-token",
	})
	require.NoError(t, err)
	h.handleSendMessage(client, payload)

	reject := rejection(t, conn.waitForEvent(t))
	assert.Equal(t, "invalid token", reject.Reason)
	chatUsecase.AssertNotCalled(t, "PostMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendMessageWithMalformedPayloadIsRejected(t *testing.T) {
	chatUsecase := new(MockChatUsecase)
	h, _, client, conn := newWebSocketFixture(chatUsecase)

	h.handleSendMessage(client, json.RawMessage(`{"roomId":`))

	reject := rejection(t, conn.waitForEvent(t))
	assert.Equal(t, "malformed payload", reject.Reason)
	chatUsecase.AssertNotCalled(t, "PostMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendMessagePersistenceFailureIsRejected(t *testing.T) {
	chatUsecase := new(MockChatUsecase)
	chatUsecase.On("PostMessage", mock.Anything, mock.Anything, "room-1", "hola").
		Return(nil, apperr.ErrNotFound)
	h, jwt, client, conn := newWebSocketFixture(chatUsecase)

	token, err := jwt.GenerateToken(&entity.User{
		BaseEntity: entity.BaseEntity{ID: "u1"},
		Email:      "maria@uv4.cl",
		Name:       "María",
	})
	require.NoError(t, err)

	payload, err := json.Marshal(dto.SendMessagePayload{
		RoomID: "room-1", Message: "hola", Token: token,
	})
	require.NoError(t, err)
	h.handleSendMessage(client, payload)

	reject := rejection(t, conn.waitForEvent(t))
	assert.Equal(t, apperr.ErrNotFound.Error(), reject.Reason)
}

func TestSendMessageWithValidTokenIsNotRejected(t *testing.T) {
	chatUsecase := new(MockChatUsecase)
	chatUsecase.On("PostMessage", mock.Anything, mock.MatchedBy(func(claims *security.Claims) bool {
		return claims.UserID == "u1" && claims.Name == "María"
	}), "room-1", "hola vecinos").
		Return(&entity.ChatMessage{RoomID: "room-1", UserID: "u1", Message: "hola vecinos"}, nil)
	h, jwt, client, conn := newWebSocketFixture(chatUsecase)

	token, err := jwt.GenerateToken(&entity.User{
		BaseEntity: entity.BaseEntity{ID: "u1"},
		Email:      "maria@uv4.cl",
		Name:       "María",
	})
	require.NoError(t, err)

	payload, err := json.Marshal(dto.SendMessagePayload{
		RoomID: "room-1", Message: "hola vecinos", Token: token,
	})
	require.NoError(t, err)
	h.handleSendMessage(client, payload)

	conn.assertNoEvent(t)
	chatUsecase.AssertExpectations(t)
}
