package repo

import (
	"context"

	"github.com/atriumstudio/atrium/internal/modules/model"
)

// localTaxonomyRepo backs the demo mode with the built-in category set. Tags
// and relations need the database; here they read empty and refuse writes.
type localTaxonomyRepo struct {
	projects ProjectRepo
}

func NewLocalTaxonomyRepo(projects ProjectRepo) TaxonomyRepo {
	return &localTaxonomyRepo{projects: projects}
}

func (r *localTaxonomyRepo) ListActiveCategories(ctx context.Context) ([]model.Category, error) {
	names := model.Categories()
	items := make([]model.Category, 0, len(names))
	for i, name := range names {
		items = append(items, model.Category{
			Name:      name,
			Slug:      model.SlugOf(name),
			SortOrder: i + 1,
			IsActive:  true,
		})
	}
	return items, nil
}

func (r *localTaxonomyRepo) ListTags(ctx context.Context) ([]model.Tag, error) {
	return []model.Tag{}, nil
}

func (r *localTaxonomyRepo) AddTagToProject(ctx context.Context, projectID, tagID string) error {
	return ErrNotFound
}

func (r *localTaxonomyRepo) RemoveTagFromProject(ctx context.Context, projectID, tagID string) error {
	return ErrNotFound
}

func (r *localTaxonomyRepo) ListProjectsWithTags(ctx context.Context) ([]model.Project, error) {
	return r.projects.List(ctx)
}
