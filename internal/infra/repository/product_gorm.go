package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
	repo "github.com/nazmulhossain17/niyenin-api/internal/repository"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 検索/絞り込み/ソート/ページング付きの一覧。
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Product{})

	if q.ActiveOnly {
		tx = tx.Where("is_active = ?", true)
	}
	if q.VendorID != "" {
		tx = tx.Where("vendor_id = ?", q.VendorID)
	}
	if q.CategoryID != "" {
		tx = tx.Where("category_id = ?", q.CategoryID)
	}
	if q.BrandID != "" {
		tx = tx.Where("brand_id = ?", q.BrandID)
	}

	// q はnameを対象
	if strings.TrimSpace(q.Q) != "" {
		like := "%" + strings.TrimSpace(q.Q) + "%"
		tx = tx.Where("name ILIKE ?", like)
	}

	//価格帯
	if q.MinPrice != nil {
		tx = tx.Where("original_price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("original_price <= ?", *q.MaxPrice)
	}

	//total（件数）
	if err := tx.Count(&total).Error; err != nil {
		return []model.Product{}, 0, err
	}

	//sort
	switch q.Sort {
	case "price_asc":
		tx = tx.Order("original_price asc").Order("product_id asc")
	case "price_desc":
		tx = tx.Order("original_price desc").Order("product_id desc")
	default:
		tx = tx.Order("created_at desc").Order("product_id desc")
	}

	offset := (q.Page - 1) * q.Limit
	if err := tx.Offset(offset).Limit(q.Limit).Find(&products).Error; err != nil {
		return []model.Product{}, 0, err
	}

	return products, total, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, productID string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) CountBySlug(ctx context.Context, slug string, excludeID string) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&model.Product{}).Where("slug = ?", slug)
	if excludeID != "" {
		tx = tx.Where("product_id <> ?", excludeID)
	}
	err := tx.Count(&n).Error
	return n, err
}

func (r *ProductGormRepository) Create(ctx context.Context, p *model.Product) error {
	err := r.db.WithContext(ctx).Create(p).Error
	if isUniqueViolation(err) {
		return repo.ErrConflict
	}
	return err
}

func (r *ProductGormRepository) Update(ctx context.Context, p *model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ?", p.ProductID).
		Updates(map[string]interface{}{
			"brand_id":          p.BrandID,
			"category_id":       p.CategoryID,
			"name":              p.Name,
			"slug":              p.Slug,
			"short_description": p.ShortDescription,
			"description":       p.Description,
			"original_price":    p.OriginalPrice,
			"discount":          p.Discount,
			"images":            p.Images,
			"tags":              p.Tags,
			"is_active":         p.IsActive,
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

// 商品削除（is_active=false）
func (r *ProductGormRepository) SoftDelete(ctx context.Context, productID string) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ?", productID).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
