package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"coursedeck/internal/entity"
	"coursedeck/internal/usecase"
	"coursedeck/pkg/jwt"
	"coursedeck/pkg/logger"
	"coursedeck/pkg/session"
)

// MockNotificationUseCase is a mock implementation of NotificationUseCase
type MockNotificationUseCase struct {
	mock.Mock
}

func (m *MockNotificationUseCase) Push(ctx context.Context, userID, title, message string) error {
	args := m.Called(userID, title, message)
	return args.Error(0)
}

func (m *MockNotificationUseCase) List(ctx context.Context, sess *session.Session) ([]entity.Notification, error) {
	args := m.Called(sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Notification), args.Error(1)
}

func (m *MockNotificationUseCase) UnreadCount(ctx context.Context, sess *session.Session) (int, error) {
	args := m.Called(sess)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationUseCase) MarkRead(ctx context.Context, sess *session.Session, notificationID string) error {
	args := m.Called(sess, notificationID)
	return args.Error(0)
}

var _ usecase.NotificationUseCase = (*MockNotificationUseCase)(nil)

type memSessionStore struct {
	sessions map[string]*session.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*session.Session)}
}

func (m *memSessionStore) Save(ctx context.Context, sess *session.Session) error {
	m.sessions[sess.ID] = sess
	return nil
}

func (m *memSessionStore) Get(ctx context.Context, id string) (*session.Session, error) {
	sess, ok := m.sessions[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return sess, nil
}

func (m *memSessionStore) Delete(ctx context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func TestWebSocket_LoggedOutSessionRejected(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	sessions := newMemSessionStore()
	handler := NewNotificationHandler(new(MockNotificationUseCase), nil, jwtService, sessions, logger.New())

	router := setupTestRouter()
	router.GET("/ws/notifications", handler.HandleWebSocket)

	// The JWT is still valid, but its session record is gone.
	token, err := jwtService.GenerateToken("u-1", string(entity.RoleStudent), "sess-logged-out")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ws/notifications?token="+token, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Session expired", response["error"])
}

func TestWebSocket_DeletedSessionRejectedAfterSave(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	sessions := newMemSessionStore()
	handler := NewNotificationHandler(new(MockNotificationUseCase), nil, jwtService, sessions, logger.New())

	router := setupTestRouter()
	router.GET("/ws/notifications", handler.HandleWebSocket)

	sess := &session.Session{ID: "sess-1", UserID: "u-1", Role: string(entity.RoleStudent), BackendToken: "bt"}
	sessions.Save(context.Background(), sess)
	sessions.Delete(context.Background(), sess.ID)

	token, err := jwtService.GenerateToken("u-1", string(entity.RoleStudent), sess.ID)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ws/notifications?token="+token, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebSocket_MissingTokenRejected(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	handler := NewNotificationHandler(new(MockNotificationUseCase), nil, jwtService, newMemSessionStore(), logger.New())

	router := setupTestRouter()
	router.GET("/ws/notifications", handler.HandleWebSocket)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ws/notifications", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebSocket_InvalidTokenRejected(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	handler := NewNotificationHandler(new(MockNotificationUseCase), nil, jwtService, newMemSessionStore(), logger.New())

	router := setupTestRouter()
	router.GET("/ws/notifications", handler.HandleWebSocket)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ws/notifications?token=not-a-jwt", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
