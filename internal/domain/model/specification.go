package model

import "time"

// product_specifications テーブル。1商品に複数のkey/value。
type ProductSpecification struct {
	ProductSpecificationID string    `gorm:"column:product_specification_id;type:uuid;primaryKey" json:"product_specification_id"`
	ProductID              string    `gorm:"column:product_id;type:uuid;index;not null" json:"product_id"`
	Key                    string    `gorm:"type:varchar(50);not null" json:"key"`
	Value                  string    `gorm:"type:varchar(100);not null" json:"value"`
	CreatedAt              time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (ProductSpecification) TableName() string { return "product_specifications" }
