package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentMethodStripe         PaymentMethod = "stripe"
	PaymentMethodPaypal         PaymentMethod = "paypal"
)

// 注文スキーマ。決済処理そのものはスコープ外（スキーマのみ保持）。
type Order struct {
	OrderID         string          `gorm:"column:order_id;type:uuid;primaryKey" json:"order_id"`
	UserID          string          `gorm:"column:user_id;type:uuid;index;not null" json:"user_id"`
	OrderNo         string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_no"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentStatus   PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	PaymentMethod   PaymentMethod   `gorm:"type:varchar(30);not null;default:'cash_on_delivery'" json:"payment_method"`
	ShippingAddress string          `gorm:"type:text;not null" json:"shipping_address"`
	CreatedAt       time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

type OrderItem struct {
	OrderItemID string          `gorm:"column:order_item_id;type:uuid;primaryKey" json:"order_item_id"`
	OrderID     string          `gorm:"column:order_id;type:uuid;index;not null" json:"order_id"`
	ProductID   string          `gorm:"column:product_id;type:uuid;not null" json:"product_id"`
	Quantity    int64           `gorm:"not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
}
