package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/atriumstudio/atrium/internal/modules/model"
	"github.com/atriumstudio/atrium/internal/modules/serializer"
	"github.com/atriumstudio/atrium/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context, category string) ([]model.Project, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectService) Get(ctx context.Context, id string) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Create(ctx context.Context, draft model.ProjectDraft) (*model.Project, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, id string, draft model.ProjectDraft) (*model.Project, error) {
	args := m.Called(ctx, id, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectService) RecordView(ctx context.Context, id string) {
	m.Called(ctx, id)
}

func setupProjectRouter(svc *MockProjectService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	serializer.SetLogger(zap.NewNop())

	h := NewProjectHandler(svc)
	r := gin.New()
	r.GET("/projects", h.ListProjects)
	r.GET("/projects/:id", h.GetProject)
	r.DELETE("/admin/projects/:id", h.DeleteProject)
	return r
}

func TestProjectHandler_ListProjects(t *testing.T) {
	svc := &MockProjectService{}
	svc.On("List", mock.Anything, model.CategoryResidential).
		Return([]model.Project{{ID: "p1", Title: "Hillside"}}, nil)
	r := setupProjectRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/projects?category=Residential", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp serializer.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	items, ok := resp.Data.([]interface{})
	assert.True(t, ok)
	assert.Len(t, items, 1)
	svc.AssertExpectations(t)
}

func TestProjectHandler_GetProject_BumpsViewsWithoutBlocking(t *testing.T) {
	viewed := make(chan struct{})

	svc := &MockProjectService{}
	svc.On("Get", mock.Anything, "p1").
		Return(&model.Project{ID: "p1", Title: "Hillside"}, nil)
	svc.On("RecordView", mock.Anything, "p1").
		Run(func(mock.Arguments) { close(viewed) }).Return()
	r := setupProjectRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/projects/p1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	// The response never waits on the counter bump.
	assert.Equal(t, http.StatusOK, rec.Code)

	select {
	case <-viewed:
	case <-time.After(time.Second):
		t.Fatal("view was never recorded")
	}
	svc.AssertExpectations(t)
}

func TestProjectHandler_GetProject_NotFoundSkipsViewBump(t *testing.T) {
	svc := &MockProjectService{}
	svc.On("Get", mock.Anything, "missing").Return(nil, service.ErrNotFound)
	r := setupProjectRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/projects/missing", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertNotCalled(t, "RecordView", mock.Anything, mock.Anything)
}

func TestProjectHandler_DeleteProject(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(*MockProjectService)
		expectedStatus int
	}{
		{
			name: "existing project",
			setup: func(svc *MockProjectService) {
				svc.On("Delete", mock.Anything, "p1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing project",
			setup: func(svc *MockProjectService) {
				svc.On("Delete", mock.Anything, "p1").Return(service.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockProjectService{}
			tt.setup(svc)
			r := setupProjectRouter(svc)

			req := httptest.NewRequest(http.MethodDelete, "/admin/projects/p1", nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
