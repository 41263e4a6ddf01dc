package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/config"
	"github.com/proxis-hn/proxis/internal/middleware"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/proxis-hn/proxis/internal/modules/serializer"
	"github.com/proxis-hn/proxis/internal/modules/service"
	"github.com/proxis-hn/proxis/internal/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockMaterialRequestService struct {
	mock.Mock
}

func (m *MockMaterialRequestService) Create(ctx context.Context, in service.CreateMaterialRequestInput) (*model.MaterialRequest, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaterialRequest), args.Error(1)
}

func (m *MockMaterialRequestService) List(ctx context.Context, projectID *uuid.UUID) ([]model.MaterialRequest, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MaterialRequest), args.Error(1)
}

func materialRequestTestConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{
			CookieName: "proxis_session",
			Secret:     "test-secret",
		},
	}
}

func TestMaterialRequestHandler_Create_RequiresSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	serializer.SetLogger(zap.NewNop())
	cfg := materialRequestTestConfig()

	mockService := &MockMaterialRequestService{}
	h := NewMaterialRequestHandler(mockService)

	r := gin.New()
	r.POST("/material-requests", middleware.Session(cfg), h.Create)

	body, _ := sonic.Marshal(map[string]any{"projectId": uuid.New()})
	req := httptest.NewRequest("POST", "/material-requests", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMaterialRequestHandler_Create_AttributesSessionUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	serializer.SetLogger(zap.NewNop())
	cfg := materialRequestTestConfig()

	userID := uuid.New()
	projectID := uuid.New()
	materialID := uuid.New()

	token, err := session.Sign(cfg.Session.Secret, session.User{
		ID:    userID,
		Email: "bodeguero@proxis.hn",
		Role:  model.RoleManager,
	}, time.Hour)
	require.NoError(t, err)

	mockService := &MockMaterialRequestService{}
	mockService.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateMaterialRequestInput) bool {
		return in.RequestedByID == userID && in.ProjectID == projectID && len(in.Items) == 1
	})).Return(&model.MaterialRequest{ID: uuid.New(), ProjectID: projectID, RequestedByID: userID}, nil)

	h := NewMaterialRequestHandler(mockService)
	r := gin.New()
	r.POST("/material-requests", middleware.Session(cfg), h.Create)

	body, _ := sonic.Marshal(map[string]any{
		"projectId": projectID,
		"items": []map[string]any{
			{"materialId": materialID, "quantity": "3"},
		},
	})
	req := httptest.NewRequest("POST", "/material-requests", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "proxis_session", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}
