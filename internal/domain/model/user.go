package model

import "time"

type User struct {
	UserID     string  `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	FirstName  string  `gorm:"type:varchar(40);not null" json:"first_name"`
	LastName   string  `gorm:"type:varchar(40);not null" json:"last_name"`
	Email      string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"email"`
	ProfilePic string  `gorm:"type:varchar(255)" json:"profile_pic,omitempty"`
	Password   string  `gorm:"type:varchar(255);not null" json:"-"`
	Phone      *string `gorm:"type:varchar(20);uniqueIndex" json:"phone,omitempty"`
	Address    string  `gorm:"type:text;not null" json:"address"`

	// rolesへの参照。roleの実体はPreloadで読む。
	RoleID string `gorm:"column:role_id;type:uuid;index" json:"role_id"`
	Role   *Role  `gorm:"foreignKey:RoleID;references:RoleID" json:"role,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
