package service

import (
	"context"
	"fmt"

	"github.com/atriumstudio/atrium/internal/modules/model"
	"github.com/atriumstudio/atrium/internal/modules/repo"
)

type TaxonomyService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListTags(ctx context.Context) ([]model.Tag, error)
	AssignTag(ctx context.Context, projectID, tagID string) error
	UnassignTag(ctx context.Context, projectID, tagID string) error
	ListProjectsWithTags(ctx context.Context) ([]model.Project, error)
}

type taxonomyService struct {
	r repo.TaxonomyRepo
}

func NewTaxonomyService(r repo.TaxonomyRepo) TaxonomyService {
	return &taxonomyService{r: r}
}

func (s *taxonomyService) ListCategories(ctx context.Context) ([]model.Category, error) {
	items, err := s.r.ListActiveCategories(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return items, nil
}

func (s *taxonomyService) ListTags(ctx context.Context) ([]model.Tag, error) {
	items, err := s.r.ListTags(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return items, nil
}

func (s *taxonomyService) AssignTag(ctx context.Context, projectID, tagID string) error {
	if projectID == "" || tagID == "" {
		return fmt.Errorf("%w: project id and tag id are required", ErrValidation)
	}
	return storeErr(s.r.AddTagToProject(ctx, projectID, tagID))
}

func (s *taxonomyService) UnassignTag(ctx context.Context, projectID, tagID string) error {
	if projectID == "" || tagID == "" {
		return fmt.Errorf("%w: project id and tag id are required", ErrValidation)
	}
	return storeErr(s.r.RemoveTagFromProject(ctx, projectID, tagID))
}

func (s *taxonomyService) ListProjectsWithTags(ctx context.Context) ([]model.Project, error) {
	items, err := s.r.ListProjectsWithTags(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return items, nil
}
