package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
	repo "github.com/nazmulhossain17/niyenin-api/internal/repository"
)

type VendorGormRepository struct {
	db *gorm.DB
}

// DI
func NewVendorGormRepository(db *gorm.DB) *VendorGormRepository {
	return &VendorGormRepository{db: db}
}

func (r *VendorGormRepository) List(ctx context.Context) ([]model.Vendor, error) {
	var vendors []model.Vendor
	err := r.db.WithContext(ctx).Order("shop_name asc").Find(&vendors).Error
	if err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *VendorGormRepository) FindByID(ctx context.Context, vendorID string) (model.Vendor, error) {
	var v model.Vendor
	err := r.db.WithContext(ctx).Where("vendor_id = ?", vendorID).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Vendor{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Vendor{}, err
	}
	return v, nil
}

func (r *VendorGormRepository) FindByUserID(ctx context.Context, userID string) (model.Vendor, error) {
	var v model.Vendor
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Vendor{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Vendor{}, err
	}
	return v, nil
}

func (r *VendorGormRepository) Create(ctx context.Context, v *model.Vendor) error {
	// user_idのunique制約で「1ユーザー1店舗」を最終的に保証する
	err := r.db.WithContext(ctx).Create(v).Error
	if isUniqueViolation(err) {
		return repo.ErrConflict
	}
	return err
}

func (r *VendorGormRepository) Update(ctx context.Context, v *model.Vendor) error {
	res := r.db.WithContext(ctx).Model(&model.Vendor{}).
		Where("vendor_id = ?", v.VendorID).
		Updates(map[string]interface{}{
			"shop_name":   v.ShopName,
			"description": v.Description,
			"is_active":   v.IsActive,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *VendorGormRepository) SoftDelete(ctx context.Context, vendorID string) error {
	res := r.db.WithContext(ctx).Model(&model.Vendor{}).
		Where("vendor_id = ?", vendorID).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
