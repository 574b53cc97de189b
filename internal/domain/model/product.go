package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID  string  `gorm:"column:product_id;type:uuid;primaryKey" json:"product_id"`
	VendorID   string  `gorm:"column:vendor_id;type:uuid;index;not null" json:"vendor_id"`
	BrandID    *string `gorm:"column:brand_id;type:uuid;index" json:"brand_id"`
	CategoryID string  `gorm:"column:category_id;type:uuid;index;not null" json:"category_id"`

	Name             string `gorm:"type:varchar(100);not null" json:"name"`
	Slug             string `gorm:"type:varchar(150);uniqueIndex;not null" json:"slug"`
	ShortDescription string `gorm:"type:text" json:"short_description,omitempty"`
	Description      string `gorm:"type:text" json:"description,omitempty"`

	// 価格はnumeric(10,2)、割引は0〜100のパーセント
	OriginalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"original_price"`
	Discount      decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0" json:"discount"`

	Images []string `gorm:"serializer:json;type:jsonb" json:"images"`
	Tags   []string `gorm:"serializer:json;type:jsonb" json:"tags"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
