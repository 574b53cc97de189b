package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
)

// 一覧検索
type ProductListQuery struct {
	Page       int
	Limit      int
	Q          string
	VendorID   string
	CategoryID string
	BrandID    string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	ActiveOnly bool
	Sort       string
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, productID string) (model.Product, error)
	FindBySlug(ctx context.Context, slug string) (model.Product, error)

	CountBySlug(ctx context.Context, slug string, excludeID string) (int64, error)

	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error

	// is_active=falseにするだけ（物理削除しない）
	SoftDelete(ctx context.Context, productID string) error
}
