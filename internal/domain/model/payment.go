package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	PaymentID     string          `gorm:"column:payment_id;type:uuid;primaryKey" json:"payment_id"`
	OrderID       string          `gorm:"column:order_id;type:uuid;index;not null" json:"order_id"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Status        PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TransactionID string          `gorm:"type:varchar(100)" json:"transaction_id,omitempty"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
