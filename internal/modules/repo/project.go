package repo

import (
	"context"
	"errors"

	"github.com/atriumstudio/atrium/internal/modules/model"
	"gorm.io/gorm"
)

// ProjectStats mirrors the get_project_stats aggregate procedure.
type ProjectStats struct {
	TotalProjects     int64  `json:"total_projects"`
	PublishedProjects int64  `json:"published_projects"`
	TotalViews        int64  `json:"total_views"`
	MostViewedProject string `json:"most_viewed_project"`
}

// ProjectRepo is the backing-policy contract for the portfolio collection.
// Lists come back in the store's natural order: reverse creation order for
// Postgres, insertion order for the local slot.
type ProjectRepo interface {
	List(ctx context.Context) ([]model.Project, error)
	ListByCategory(ctx context.Context, category string) ([]model.Project, error)
	Get(ctx context.Context, id string) (*model.Project, error)
	// Create assigns a fresh identifier and persists the entity; it never
	// touches an existing record.
	Create(ctx context.Context, p *model.Project) error
	// Update replaces every field except the identifier and creation stamp.
	Update(ctx context.Context, id string, p *model.Project) (*model.Project, error)
	Delete(ctx context.Context, id string) error
	// IncrementViews is a narrow store-side counter bump. The local policy
	// does not track views and treats it as a no-op.
	IncrementViews(ctx context.Context, id string) error
	Stats(ctx context.Context) (*ProjectStats, error)
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) List(ctx context.Context) ([]model.Project, error) {
	var items []model.Project
	return items, r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&items).Error
}

func (r *projectRepo) ListByCategory(ctx context.Context, category string) ([]model.Project, error) {
	var items []model.Project
	return items, r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at DESC, id DESC").
		Find(&items).Error
}

func (r *projectRepo) Get(ctx context.Context, id string) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// updatableColumns are everything the admin workflow may replace; identifier,
// creation stamp, publication flag, and the store-managed view counter stay
// untouched.
var updatableColumns = []string{
	"title", "category", "image", "description", "location",
	"year", "size", "client", "full_description",
	"features", "additional_images",
}

func (r *projectRepo) Update(ctx context.Context, id string, p *model.Project) (*model.Project, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Project{}).
		Where("id = ?", id).
		Select(updatableColumns).
		Updates(p)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.Get(ctx, id)
}

// Delete surfaces a miss instead of swallowing it; the caller decides whether
// to refresh its list.
func (r *projectRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *projectRepo) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.Project{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *projectRepo) Stats(ctx context.Context) (*ProjectStats, error) {
	stats := &ProjectStats{}
	db := r.db.WithContext(ctx).Model(&model.Project{})

	if err := db.Session(&gorm.Session{}).Count(&stats.TotalProjects).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).Where("published").Count(&stats.PublishedProjects).Error; err != nil {
		return nil, err
	}

	var totalViews *int64
	if err := db.Session(&gorm.Session{}).Select("SUM(views)").Scan(&totalViews).Error; err != nil {
		return nil, err
	}
	if totalViews != nil {
		stats.TotalViews = *totalViews
	}

	// Ties on the view counter resolve to the natural list order: the most
	// recently created project wins.
	var top model.Project
	err := r.db.WithContext(ctx).
		Order("views DESC, created_at DESC, id DESC").
		Limit(1).
		Find(&top).Error
	if err != nil {
		return nil, err
	}
	stats.MostViewedProject = top.Title

	return stats, nil
}
