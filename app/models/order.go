package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusPending is the only status the store assigns itself; every
// later value comes from the client and is stored as-is.
const OrderStatusPending = "pending"

type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderNumber int             `gorm:"not null;uniqueIndex" json:"order_number"`
	Status      string          `gorm:"size:50;not null;default:pending" json:"status"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
