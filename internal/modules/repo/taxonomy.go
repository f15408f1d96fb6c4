package repo

import (
	"context"
	"strings"

	"github.com/atriumstudio/atrium/internal/modules/model"
	"gorm.io/gorm"
)

// TaxonomyRepo serves categories and tags; Postgres policy only. Filters offer
// active categories exclusively.
type TaxonomyRepo interface {
	ListActiveCategories(ctx context.Context) ([]model.Category, error)
	ListTags(ctx context.Context) ([]model.Tag, error)
	AddTagToProject(ctx context.Context, projectID, tagID string) error
	RemoveTagFromProject(ctx context.Context, projectID, tagID string) error
	ListProjectsWithTags(ctx context.Context) ([]model.Project, error)
}

type taxonomyRepo struct{ db *gorm.DB }

func NewTaxonomyRepo(db *gorm.DB) TaxonomyRepo {
	return &taxonomyRepo{db: db}
}

func (r *taxonomyRepo) ListActiveCategories(ctx context.Context) ([]model.Category, error) {
	var items []model.Category
	return items, r.db.WithContext(ctx).
		Where("is_active").
		Order("sort_order ASC").
		Find(&items).Error
}

func (r *taxonomyRepo) ListTags(ctx context.Context) ([]model.Tag, error) {
	var items []model.Tag
	return items, r.db.WithContext(ctx).
		Order("name ASC").
		Find(&items).Error
}

func (r *taxonomyRepo) AddTagToProject(ctx context.Context, projectID, tagID string) error {
	rel := model.ProjectTagRelation{ProjectID: projectID, TagID: tagID}
	if err := r.db.WithContext(ctx).Create(&rel).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *taxonomyRepo) RemoveTagFromProject(ctx context.Context, projectID, tagID string) error {
	res := r.db.WithContext(ctx).
		Where("project_id = ? AND tag_id = ?", projectID, tagID).
		Delete(&model.ProjectTagRelation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *taxonomyRepo) ListProjectsWithTags(ctx context.Context) ([]model.Project, error) {
	var items []model.Project
	return items, r.db.WithContext(ctx).
		Preload("Tags").
		Order("created_at DESC, id DESC").
		Find(&items).Error
}
