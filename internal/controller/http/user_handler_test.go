package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"coursedeck/internal/entity"
	"coursedeck/internal/repo/backend"
	"coursedeck/internal/usecase"
	"coursedeck/pkg/logger"
	"coursedeck/pkg/middleware"
	"coursedeck/pkg/session"
)

// MockUserAdminUseCase is a mock implementation of UserAdminUseCase
type MockUserAdminUseCase struct {
	mock.Mock
}

func (m *MockUserAdminUseCase) List(ctx context.Context, sess *session.Session, q usecase.UserQuery) ([]entity.User, bool, error) {
	args := m.Called(sess, q)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]entity.User), args.Bool(1), args.Error(2)
}

func (m *MockUserAdminUseCase) SetActive(ctx context.Context, sess *session.Session, userID string, active bool) error {
	args := m.Called(sess, userID, active)
	return args.Error(0)
}

func (m *MockUserAdminUseCase) Delete(ctx context.Context, sess *session.Session, userID string) error {
	args := m.Called(sess, userID)
	return args.Error(0)
}

func (m *MockUserAdminUseCase) DropSession(sessionID string) {
	m.Called(sessionID)
}

var _ usecase.UserAdminUseCase = (*MockUserAdminUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func testSession() *session.Session {
	return &session.Session{
		ID:           "sess-1",
		UserID:       "admin-1",
		Role:         string(entity.RoleAdmin),
		BackendToken: "backend-token",
	}
}

func withSession(sess *session.Session, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.SessionKey, sess)
		h(c)
	}
}

func TestListUsers_PassesFilters(t *testing.T) {
	mockUseCase := new(MockUserAdminUseCase)
	handler := NewUserHandler(mockUseCase, logger.New())
	sess := testSession()

	router := setupTestRouter()
	router.GET("/users", withSession(sess, handler.List))

	expected := usecase.UserQuery{Search: "bah", Role: "student", ClassLevel: "all", Status: "active"}
	mockUseCase.On("List", sess, expected).Return([]entity.User{
		{ID: "u-1", FirstName: "Bahri", Role: entity.RoleStudent},
	}, false, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users?search=bah&role=student&class_level=all&status=active", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(1), response["count"])
	assert.Equal(t, false, response["stale"])
	mockUseCase.AssertExpectations(t)
}

func TestListUsers_StaleFlagSurfaces(t *testing.T) {
	mockUseCase := new(MockUserAdminUseCase)
	handler := NewUserHandler(mockUseCase, logger.New())
	sess := testSession()

	router := setupTestRouter()
	router.GET("/users", withSession(sess, handler.List))

	mockUseCase.On("List", sess, usecase.UserQuery{}).Return([]entity.User{{ID: "u-1"}}, true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["stale"])
	mockUseCase.AssertExpectations(t)
}

func TestListUsers_ExpiredSessionIs401(t *testing.T) {
	mockUseCase := new(MockUserAdminUseCase)
	handler := NewUserHandler(mockUseCase, logger.New())
	sess := testSession()

	router := setupTestRouter()
	router.GET("/users", withSession(sess, handler.List))

	mockUseCase.On("List", sess, usecase.UserQuery{}).Return(nil, false, backend.ErrUnauthorized)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Session expired", response["error"])
}

func TestListUsers_UpstreamFailureIs502(t *testing.T) {
	mockUseCase := new(MockUserAdminUseCase)
	handler := NewUserHandler(mockUseCase, logger.New())
	sess := testSession()

	router := setupTestRouter()
	router.GET("/users", withSession(sess, handler.List))

	mockUseCase.On("List", sess, usecase.UserQuery{}).
		Return(nil, false, &backend.APIError{Status: 500, Message: "boom"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Upstream request failed", response["error"])
}

func TestSetActive_Success(t *testing.T) {
	mockUseCase := new(MockUserAdminUseCase)
	handler := NewUserHandler(mockUseCase, logger.New())
	sess := testSession()

	router := setupTestRouter()
	router.PUT("/users/:id/active", withSession(sess, handler.SetActive))

	mockUseCase.On("SetActive", sess, "u-2", false).Return(nil)

	body := `{"is_active":false}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/u-2/active", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestSetActive_MissingBodyIs400(t *testing.T) {
	mockUseCase := new(MockUserAdminUseCase)
	handler := NewUserHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/users/:id/active", withSession(testSession(), handler.SetActive))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/u-2/active", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "SetActive")
}

func TestDeleteUser_Success(t *testing.T) {
	mockUseCase := new(MockUserAdminUseCase)
	handler := NewUserHandler(mockUseCase, logger.New())
	sess := testSession()

	router := setupTestRouter()
	router.DELETE("/users/:id", withSession(sess, handler.Delete))

	mockUseCase.On("Delete", sess, "u-2").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/users/u-2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}
