package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/atriumstudio/atrium/internal/config"
	"github.com/atriumstudio/atrium/internal/modules/model"
	"github.com/atriumstudio/atrium/internal/modules/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepo) ListByCategory(ctx context.Context, category string) ([]model.Project, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepo) Get(ctx context.Context, id string) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) Update(ctx context.Context, id string, p *model.Project) (*model.Project, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepo) IncrementViews(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepo) Stats(ctx context.Context) (*repo.ProjectStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repo.ProjectStats), args.Error(1)
}

func newTestProjectService(r repo.ProjectRepo) ProjectService {
	return NewProjectService(r, nil, &config.Config{}, zap.NewNop())
}

func validTestDraft() model.ProjectDraft {
	return model.ProjectDraft{
		Title:    "Hillside Residence",
		Category: model.CategoryResidential,
		Image:    "https://example.com/hero.jpg",
	}
}

func TestProjectService_List(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		setup       func(*MockProjectRepo)
		expectErr   bool
		errIs       error
		expectCount int
	}{
		{
			name:     "no filter returns everything",
			category: "",
			setup: func(r *MockProjectRepo) {
				r.On("List", mock.Anything).Return([]model.Project{{Title: "a"}, {Title: "b"}}, nil)
			},
			expectCount: 2,
		},
		{
			name:     "All filter is a passthrough",
			category: model.CategoryAll,
			setup: func(r *MockProjectRepo) {
				r.On("List", mock.Anything).Return([]model.Project{{Title: "a"}}, nil)
			},
			expectCount: 1,
		},
		{
			name:     "known category filters",
			category: model.CategoryCommercial,
			setup: func(r *MockProjectRepo) {
				r.On("ListByCategory", mock.Anything, model.CategoryCommercial).
					Return([]model.Project{{Title: "office"}}, nil)
			},
			expectCount: 1,
		},
		{
			name:      "unknown category is a validation error",
			category:  "Industrial",
			setup:     func(r *MockProjectRepo) {},
			expectErr: true,
			errIs:     ErrValidation,
		},
		{
			name:     "store failure wraps ErrStore",
			category: "",
			setup: func(r *MockProjectRepo) {
				r.On("List", mock.Anything).Return(nil, fmt.Errorf("connection refused"))
			},
			expectErr: true,
			errIs:     ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockProjectRepo{}
			tt.setup(mockRepo)
			svc := newTestProjectService(mockRepo)

			items, err := svc.List(context.Background(), tt.category)

			if tt.expectErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.errIs)
			} else {
				assert.NoError(t, err)
				assert.Len(t, items, tt.expectCount)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProjectService_Create(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*model.ProjectDraft)
		setup     func(*MockProjectRepo)
		expectErr bool
	}{
		{
			name:   "valid draft persists with published set",
			mutate: func(d *model.ProjectDraft) {},
			setup: func(r *MockProjectRepo) {
				r.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Project) bool {
					return p.Published && p.Title == "Hillside Residence"
				})).Return(nil)
			},
		},
		{
			name:      "missing title rejected",
			mutate:    func(d *model.ProjectDraft) { d.Title = "  " },
			setup:     func(r *MockProjectRepo) {},
			expectErr: true,
		},
		{
			name:      "missing category rejected",
			mutate:    func(d *model.ProjectDraft) { d.Category = "" },
			setup:     func(r *MockProjectRepo) {},
			expectErr: true,
		},
		{
			name:      "unknown category rejected",
			mutate:    func(d *model.ProjectDraft) { d.Category = "Skyscrapers" },
			setup:     func(r *MockProjectRepo) {},
			expectErr: true,
		},
		{
			name:      "missing image rejected",
			mutate:    func(d *model.ProjectDraft) { d.Image = "" },
			setup:     func(r *MockProjectRepo) {},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockProjectRepo{}
			tt.setup(mockRepo)
			svc := newTestProjectService(mockRepo)

			draft := validTestDraft()
			tt.mutate(&draft)

			p, err := svc.Create(context.Background(), draft)

			if tt.expectErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Nil(t, p)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, p)
				assert.True(t, p.Published)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProjectService_Get_NotFound(t *testing.T) {
	mockRepo := &MockProjectRepo{}
	mockRepo.On("Get", mock.Anything, "missing").Return(nil, repo.ErrNotFound)
	svc := newTestProjectService(mockRepo)

	p, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, p)
	mockRepo.AssertExpectations(t)
}

func TestProjectService_RecordView_FallsBackToDirectBump(t *testing.T) {
	mockRepo := &MockProjectRepo{}
	mockRepo.On("IncrementViews", mock.Anything, "p1").Return(nil)

	// No publisher configured: the bump goes straight to the store.
	svc := newTestProjectService(mockRepo)
	svc.RecordView(context.Background(), "p1")

	mockRepo.AssertExpectations(t)
}

func TestProjectService_RecordView_SwallowsStoreErrors(t *testing.T) {
	mockRepo := &MockProjectRepo{}
	mockRepo.On("IncrementViews", mock.Anything, "p1").Return(fmt.Errorf("down"))

	svc := newTestProjectService(mockRepo)
	// Must not panic or surface the error.
	svc.RecordView(context.Background(), "p1")

	mockRepo.AssertExpectations(t)
}
