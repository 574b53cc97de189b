package model

import "time"

// roles テーブル。levelが小さいほど権限が強い（admin=0）。
type Role struct {
	RoleID    string    `gorm:"column:role_id;type:uuid;primaryKey" json:"role_id"`
	Name      string    `gorm:"type:varchar(40);not null" json:"name"`
	Level     int       `gorm:"uniqueIndex;not null;default:2" json:"level"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Role) TableName() string { return "roles" }
