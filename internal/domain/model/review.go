package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Review struct {
	ReviewID  string          `gorm:"column:review_id;type:uuid;primaryKey" json:"review_id"`
	ProductID string          `gorm:"column:product_id;type:uuid;index;not null" json:"product_id"`
	UserID    string          `gorm:"column:user_id;type:uuid;index;not null" json:"user_id"`
	Rating    decimal.Decimal `gorm:"type:numeric(2,1);not null" json:"rating"`
	Comment   string          `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
