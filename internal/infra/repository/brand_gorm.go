package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
	repo "github.com/nazmulhossain17/niyenin-api/internal/repository"
)

type BrandGormRepository struct {
	db *gorm.DB
}

// DI
func NewBrandGormRepository(db *gorm.DB) *BrandGormRepository {
	return &BrandGormRepository{db: db}
}

func (r *BrandGormRepository) List(ctx context.Context) ([]model.Brand, error) {
	var brands []model.Brand
	err := r.db.WithContext(ctx).Order("name asc").Find(&brands).Error
	if err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *BrandGormRepository) FindByID(ctx context.Context, brandID string) (model.Brand, error) {
	var b model.Brand
	err := r.db.WithContext(ctx).Where("brand_id = ?", brandID).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Brand{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Brand{}, err
	}
	return b, nil
}

// slugの使用件数。excludeIDが空でなければそのIDを除外する（更新時の自分除外）。
func (r *BrandGormRepository) CountBySlug(ctx context.Context, slug string, excludeID string) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&model.Brand{}).Where("slug = ?", slug)
	if excludeID != "" {
		tx = tx.Where("brand_id <> ?", excludeID)
	}
	err := tx.Count(&n).Error
	return n, err
}

func (r *BrandGormRepository) Create(ctx context.Context, b *model.Brand) error {
	err := r.db.WithContext(ctx).Create(b).Error
	if isUniqueViolation(err) {
		return repo.ErrConflict
	}
	return err
}

func (r *BrandGormRepository) Update(ctx context.Context, b *model.Brand) error {
	res := r.db.WithContext(ctx).Model(&model.Brand{}).
		Where("brand_id = ?", b.BrandID).
		Updates(map[string]interface{}{
			"name": b.Name,
			"slug": b.Slug,
		})
	if isUniqueViolation(res.Error) {
		return repo.ErrConflict
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *BrandGormRepository) Delete(ctx context.Context, brandID string) error {
	res := r.db.WithContext(ctx).Where("brand_id = ?", brandID).Delete(&model.Brand{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
