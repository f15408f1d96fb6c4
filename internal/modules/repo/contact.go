package repo

import (
	"context"
	"errors"

	"github.com/atriumstudio/atrium/internal/modules/model"
	"gorm.io/gorm"
)

// ContactStats mirrors the get_contact_stats aggregate procedure. The derived
// in-progress count is computed by the consumer, not stored here.
type ContactStats struct {
	TotalSubmissions        int64 `json:"total_submissions"`
	NewSubmissions          int64 `json:"new_submissions"`
	CompletedSubmissions    int64 `json:"completed_submissions"`
	HighPrioritySubmissions int64 `json:"high_priority_submissions"`
}

type ContactRepo interface {
	Create(ctx context.Context, s *model.ContactSubmission) error
	// List returns submissions newest first.
	List(ctx context.Context) ([]model.ContactSubmission, error)
	Get(ctx context.Context, id string) (*model.ContactSubmission, error)
	// UpdateStatus overwrites the status column only; timestamps untouched.
	UpdateStatus(ctx context.Context, id, status string) (*model.ContactSubmission, error)
	SetPriority(ctx context.Context, id string, high bool) (*model.ContactSubmission, error)
	Stats(ctx context.Context) (*ContactStats, error)
}

type contactRepo struct{ db *gorm.DB }

func NewContactRepo(db *gorm.DB) ContactRepo {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, s *model.ContactSubmission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *contactRepo) List(ctx context.Context) ([]model.ContactSubmission, error) {
	var items []model.ContactSubmission
	return items, r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&items).Error
}

func (r *contactRepo) Get(ctx context.Context, id string) (*model.ContactSubmission, error) {
	var s model.ContactSubmission
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *contactRepo) UpdateStatus(ctx context.Context, id, status string) (*model.ContactSubmission, error) {
	res := r.db.WithContext(ctx).
		Model(&model.ContactSubmission{}).
		Where("id = ?", id).
		UpdateColumn("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *contactRepo) SetPriority(ctx context.Context, id string, high bool) (*model.ContactSubmission, error) {
	res := r.db.WithContext(ctx).
		Model(&model.ContactSubmission{}).
		Where("id = ?", id).
		UpdateColumn("high_priority", high)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *contactRepo) Stats(ctx context.Context) (*ContactStats, error) {
	stats := &ContactStats{}
	db := r.db.WithContext(ctx).Model(&model.ContactSubmission{})

	if err := db.Session(&gorm.Session{}).Count(&stats.TotalSubmissions).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).Where("status = ?", model.StatusNew).Count(&stats.NewSubmissions).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).Where("status = ?", model.StatusCompleted).Count(&stats.CompletedSubmissions).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).Where("high_priority").Count(&stats.HighPrioritySubmissions).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
