package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/atriumstudio/atrium/internal/modules/model"
	"github.com/atriumstudio/atrium/internal/modules/serializer"
	"github.com/atriumstudio/atrium/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, in service.SubmitContactInput) (*model.ContactSubmission, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactSubmission), args.Error(1)
}

func (m *MockContactService) List(ctx context.Context) ([]model.ContactSubmission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContactSubmission), args.Error(1)
}

func (m *MockContactService) UpdateStatus(ctx context.Context, id, status string) (*model.ContactSubmission, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactSubmission), args.Error(1)
}

func (m *MockContactService) SetPriority(ctx context.Context, id string, high bool) (*model.ContactSubmission, error) {
	args := m.Called(ctx, id, high)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactSubmission), args.Error(1)
}

func setupContactRouter(svc *MockContactService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	serializer.SetLogger(zap.NewNop())

	h := NewContactHandler(svc)
	r := gin.New()
	r.POST("/contact", h.SubmitContact)
	r.GET("/admin/submissions", h.ListSubmissions)
	r.PATCH("/admin/submissions/:id/status", h.UpdateSubmissionStatus)
	r.PATCH("/admin/submissions/:id/priority", h.SetSubmissionPriority)
	return r
}

func TestContactHandler_SubmitContact(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockContactService)
		expectedStatus int
	}{
		{
			name: "valid payload",
			body: `{"first_name":"Maya","last_name":"Lindqvist","email":"maya@example.com","project_type":"residential","message":"hello"}`,
			setup: func(svc *MockContactService) {
				svc.On("Submit", mock.Anything, mock.MatchedBy(func(in service.SubmitContactInput) bool {
					return in.FirstName == "Maya" && in.Email == "maya@example.com"
				})).Return(&model.ContactSubmission{ID: "s1", Status: model.StatusNew}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing required field fails binding",
			body:           `{"first_name":"Maya"}`,
			setup:          func(svc *MockContactService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing project type fails binding",
			body:           `{"first_name":"Maya","last_name":"L","email":"e@example.com","message":"m"}`,
			setup:          func(svc *MockContactService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service validation error",
			body: `{"first_name":" ","last_name":"L","email":"e@example.com","project_type":"residential","message":"m"}`,
			setup: func(svc *MockContactService) {
				svc.On("Submit", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: first_name is required", service.ErrValidation))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store unavailable",
			body: `{"first_name":"Maya","last_name":"L","email":"e@example.com","project_type":"residential","message":"m"}`,
			setup: func(svc *MockContactService) {
				svc.On("Submit", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: dial tcp", service.ErrStore))
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockContactService{}
			tt.setup(svc)
			r := setupContactRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestContactHandler_ListSubmissions(t *testing.T) {
	svc := &MockContactService{}
	svc.On("List", mock.Anything).Return([]model.ContactSubmission{
		{ID: "s2", FirstName: "Later"},
		{ID: "s1", FirstName: "Earlier"},
	}, nil)
	r := setupContactRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/admin/submissions", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp serializer.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	items, ok := resp.Data.([]interface{})
	assert.True(t, ok)
	assert.Len(t, items, 2)
	svc.AssertExpectations(t)
}

func TestContactHandler_UpdateSubmissionStatus(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockContactService)
		expectedStatus int
	}{
		{
			name: "forward transition",
			body: `{"status":"in_progress"}`,
			setup: func(svc *MockContactService) {
				svc.On("UpdateStatus", mock.Anything, "s1", model.StatusInProgress).
					Return(&model.ContactSubmission{ID: "s1", Status: model.StatusInProgress}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "backward transition rejected",
			body: `{"status":"new"}`,
			setup: func(svc *MockContactService) {
				svc.On("UpdateStatus", mock.Anything, "s1", model.StatusNew).
					Return(nil, fmt.Errorf("%w: cannot move status", service.ErrValidation))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown submission",
			body: `{"status":"completed"}`,
			setup: func(svc *MockContactService) {
				svc.On("UpdateStatus", mock.Anything, "s1", model.StatusCompleted).
					Return(nil, service.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing status fails binding",
			body:           `{}`,
			setup:          func(svc *MockContactService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockContactService{}
			tt.setup(svc)
			r := setupContactRouter(svc)

			req := httptest.NewRequest(http.MethodPatch, "/admin/submissions/s1/status", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestContactHandler_SetSubmissionPriority(t *testing.T) {
	svc := &MockContactService{}
	svc.On("SetPriority", mock.Anything, "s1", false).
		Return(&model.ContactSubmission{ID: "s1", HighPriority: false}, nil)
	r := setupContactRouter(svc)

	// Explicit false must bind; a pointer keeps "required" from eating it.
	req := httptest.NewRequest(http.MethodPatch, "/admin/submissions/s1/priority",
		strings.NewReader(`{"high_priority":false}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}
