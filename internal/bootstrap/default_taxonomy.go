package bootstrap

import (
	"context"

	"github.com/atriumstudio/atrium/internal/modules/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EnsureDefaultTaxonomy seeds the built-in categories on service start so the
// public filter bar is never empty. Existing rows are left alone; admins may
// re-order or deactivate them later.
func EnsureDefaultTaxonomy(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	defaults := []model.Category{
		{Name: model.CategoryResidential, Slug: model.SlugOf(model.CategoryResidential), SortOrder: 1, IsActive: true},
		{Name: model.CategoryCommercial, Slug: model.SlugOf(model.CategoryCommercial), SortOrder: 2, IsActive: true},
		{Name: model.CategoryModernVilla, Slug: model.SlugOf(model.CategoryModernVilla), SortOrder: 3, IsActive: true},
	}

	for _, c := range defaults {
		var existing model.Category
		err := db.WithContext(ctx).Where("slug = ?", c.Slug).First(&existing).Error
		switch err {
		case nil:
			continue
		case gorm.ErrRecordNotFound:
			if cErr := db.WithContext(ctx).Create(&c).Error; cErr != nil {
				return cErr
			}
			log.Sugar().Infow("default category created", "name", c.Name)
		default:
			return err
		}
	}
	return nil
}
