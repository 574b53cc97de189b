package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
	repo "github.com/nazmulhossain17/niyenin-api/internal/repository"
)

type CategoryGormRepository struct {
	db *gorm.DB
}

// DI
func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

// name昇順で全件返す。ツリー構築の入力順がそのまま兄弟順になる。
func (r *CategoryGormRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryGormRepository) FindByID(ctx context.Context, categoryID string) (model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Category{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (r *CategoryGormRepository) CountBySlug(ctx context.Context, slug string, excludeID string) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&model.Category{}).Where("slug = ?", slug)
	if excludeID != "" {
		tx = tx.Where("category_id <> ?", excludeID)
	}
	err := tx.Count(&n).Error
	return n, err
}

// parent_idが一致する行数（削除ガード用）
func (r *CategoryGormRepository) CountChildren(ctx context.Context, categoryID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("parent_id = ?", categoryID).Count(&n).Error
	return n, err
}

func (r *CategoryGormRepository) Create(ctx context.Context, c *model.Category) error {
	err := r.db.WithContext(ctx).Create(c).Error
	if isUniqueViolation(err) {
		return repo.ErrConflict
	}
	return err
}

func (r *CategoryGormRepository) Update(ctx context.Context, c *model.Category) error {
	res := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("category_id = ?", c.CategoryID).
		Updates(map[string]interface{}{
			"name":      c.Name,
			"slug":      c.Slug,
			"parent_id": c.ParentID,
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

func (r *CategoryGormRepository) Delete(ctx context.Context, categoryID string) error {
	res := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Delete(&model.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
