package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
	repo "github.com/nazmulhossain17/niyenin-api/internal/repository"
)

type SpecificationGormRepository struct {
	db *gorm.DB
}

// DI
func NewSpecificationGormRepository(db *gorm.DB) *SpecificationGormRepository {
	return &SpecificationGormRepository{db: db}
}

func (r *SpecificationGormRepository) ListByProductID(ctx context.Context, productID string) ([]model.ProductSpecification, error) {
	var specs []model.ProductSpecification
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("key asc").
		Find(&specs).Error
	if err != nil {
		return nil, err
	}
	return specs, nil
}

func (r *SpecificationGormRepository) FindByID(ctx context.Context, specID string) (model.ProductSpecification, error) {
	var s model.ProductSpecification
	err := r.db.WithContext(ctx).Where("product_specification_id = ?", specID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductSpecification{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductSpecification{}, err
	}
	return s, nil
}

func (r *SpecificationGormRepository) Create(ctx context.Context, s *model.ProductSpecification) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SpecificationGormRepository) CreateBatch(ctx context.Context, specs []model.ProductSpecification) error {
	if len(specs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&specs).Error
}

func (r *SpecificationGormRepository) Update(ctx context.Context, s *model.ProductSpecification) error {
	res := r.db.WithContext(ctx).Model(&model.ProductSpecification{}).
		Where("product_specification_id = ?", s.ProductSpecificationID).
		Updates(map[string]interface{}{
			"key":   s.Key,
			"value": s.Value,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *SpecificationGormRepository) Delete(ctx context.Context, specID string) error {
	res := r.db.WithContext(ctx).
		Where("product_specification_id = ?", specID).
		Delete(&model.ProductSpecification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type WarrantyGormRepository struct {
	db *gorm.DB
}

// DI
func NewWarrantyGormRepository(db *gorm.DB) *WarrantyGormRepository {
	return &WarrantyGormRepository{db: db}
}

func (r *WarrantyGormRepository) FindByID(ctx context.Context, warrantyID string) (model.ProductWarranty, error) {
	var w model.ProductWarranty
	err := r.db.WithContext(ctx).Where("product_warranty_id = ?", warrantyID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductWarranty{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductWarranty{}, err
	}
	return w, nil
}

func (r *WarrantyGormRepository) FindByProductID(ctx context.Context, productID string) (model.ProductWarranty, error) {
	var w model.ProductWarranty
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductWarranty{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductWarranty{}, err
	}
	return w, nil
}

func (r *WarrantyGormRepository) Create(ctx context.Context, w *model.ProductWarranty) error {
	// product_idのunique制約で「1商品1保証」を最終的に保証する
	err := r.db.WithContext(ctx).Create(w).Error
	if isUniqueViolation(err) {
		return repo.ErrConflict
	}
	return err
}

func (r *WarrantyGormRepository) Update(ctx context.Context, w *model.ProductWarranty) error {
	res := r.db.WithContext(ctx).Model(&model.ProductWarranty{}).
		Where("product_warranty_id = ?", w.ProductWarrantyID).
		Updates(map[string]interface{}{
			"warranty_period": w.WarrantyPeriod,
			"warranty_type":   w.WarrantyType,
			"details":         w.Details,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *WarrantyGormRepository) Delete(ctx context.Context, warrantyID string) error {
	res := r.db.WithContext(ctx).
		Where("product_warranty_id = ?", warrantyID).
		Delete(&model.ProductWarranty{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
