package model

import "time"

// categories テーブル。parent_idは自己参照（NULLならルート）。
type Category struct {
	CategoryID string    `gorm:"column:category_id;type:uuid;primaryKey" json:"category_id"`
	Name       string    `gorm:"type:varchar(50);not null" json:"name"`
	Slug       string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	ParentID   *string   `gorm:"column:parent_id;type:uuid;index" json:"parent_id"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
