package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/atriumstudio/atrium/internal/config"
	mq "github.com/atriumstudio/atrium/internal/infra/queue"
	"github.com/atriumstudio/atrium/internal/modules/model"
	"github.com/atriumstudio/atrium/internal/modules/repo"
	"go.uber.org/zap"
)

type ProjectService interface {
	List(ctx context.Context, category string) ([]model.Project, error)
	Get(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, draft model.ProjectDraft) (*model.Project, error)
	Update(ctx context.Context, id string, draft model.ProjectDraft) (*model.Project, error)
	Delete(ctx context.Context, id string) error
	// RecordView fires a view-counter bump without blocking the caller on the
	// store. Failures are logged, never returned.
	RecordView(ctx context.Context, id string)
}

type projectService struct {
	r         repo.ProjectRepo
	publisher *mq.Publisher
	cfg       *config.Config
	log       *zap.Logger
}

func NewProjectService(r repo.ProjectRepo, publisher *mq.Publisher, cfg *config.Config, log *zap.Logger) ProjectService {
	return &projectService{
		r:         r,
		publisher: publisher,
		cfg:       cfg,
		log:       log,
	}
}

func (s *projectService) List(ctx context.Context, category string) ([]model.Project, error) {
	if category == "" || category == model.CategoryAll {
		items, err := s.r.List(ctx)
		if err != nil {
			return nil, storeErr(err)
		}
		return items, nil
	}
	if !model.ValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}
	items, err := s.r.ListByCategory(ctx, category)
	if err != nil {
		return nil, storeErr(err)
	}
	return items, nil
}

func (s *projectService) Get(ctx context.Context, id string) (*model.Project, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: project id is empty", ErrValidation)
	}
	p, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return p, nil
}

// validateDraft rejects a draft missing any of the three mandatory fields or
// carrying a category outside the closed set.
func validateDraft(d *model.ProjectDraft) error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(d.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if !model.ValidCategory(d.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, d.Category)
	}
	if strings.TrimSpace(d.Image) == "" {
		return fmt.Errorf("%w: image is required", ErrValidation)
	}
	return nil
}

func projectOf(d *model.ProjectDraft) *model.Project {
	return &model.Project{
		Title:            d.Title,
		Category:         d.Category,
		Image:            d.Image,
		Description:      d.Description,
		Location:         d.Location,
		Year:             d.Year,
		Size:             d.Size,
		Client:           d.Client,
		FullDescription:  d.FullDescription,
		Features:         append([]string(nil), d.Features...),
		AdditionalImages: append([]string(nil), d.AdditionalImages...),
	}
}

func (s *projectService) Create(ctx context.Context, draft model.ProjectDraft) (*model.Project, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}
	p := projectOf(&draft)
	p.Published = true
	if err := s.r.Create(ctx, p); err != nil {
		return nil, storeErr(err)
	}
	return p, nil
}

func (s *projectService) Update(ctx context.Context, id string, draft model.ProjectDraft) (*model.Project, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: project id is empty", ErrValidation)
	}
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}
	p, err := s.r.Update(ctx, id, projectOf(&draft))
	if err != nil {
		return nil, storeErr(err)
	}
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: project id is empty", ErrValidation)
	}
	if err := s.r.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	return nil
}

// viewEvent is the queue payload for one counter bump.
type viewEvent struct {
	ProjectID string `json:"project_id"`
}

func (s *projectService) RecordView(ctx context.Context, id string) {
	if id == "" {
		return
	}
	if s.publisher != nil {
		err := s.publisher.PublishJSON(ctx, s.cfg.RabbitMQ.ExchangeName, s.cfg.RabbitMQ.RoutingKey, viewEvent{ProjectID: id})
		if err == nil {
			return
		}
		s.log.Warn("view event publish failed, bumping counter directly",
			zap.String("project_id", id), zap.Error(err))
	}
	if err := s.r.IncrementViews(ctx, id); err != nil {
		s.log.Warn("view counter bump failed", zap.String("project_id", id), zap.Error(err))
	}
}
