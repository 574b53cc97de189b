package model

import "time"

// vendors テーブル。1ユーザーにつき1店舗。
type Vendor struct {
	VendorID    string    `gorm:"column:vendor_id;type:uuid;primaryKey" json:"vendor_id"`
	UserID      string    `gorm:"column:user_id;type:uuid;uniqueIndex;not null" json:"user_id"`
	ShopName    string    `gorm:"type:varchar(100);not null" json:"shop_name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
