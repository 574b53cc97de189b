package model

import "time"

// product_warranty テーブル。1商品につき0または1件。
type ProductWarranty struct {
	ProductWarrantyID string    `gorm:"column:product_warranty_id;type:uuid;primaryKey" json:"product_warranty_id"`
	ProductID         string    `gorm:"column:product_id;type:uuid;uniqueIndex;not null" json:"product_id"`
	WarrantyPeriod    string    `gorm:"type:varchar(50);not null" json:"warranty_period"`
	WarrantyType      string    `gorm:"type:varchar(50)" json:"warranty_type,omitempty"`
	Details           string    `gorm:"type:text" json:"details,omitempty"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (ProductWarranty) TableName() string { return "product_warranty" }
