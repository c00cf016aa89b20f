package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order ties a customer to one or more products. TotalAmount is frozen at
// creation time from the then-current product prices and never recomputed.
type Order struct {
	BaseModel
	CustomerID  uuid.UUID       `gorm:"type:uuid;index" json:"customer_id"`
	Customer    *Customer       `json:"customer,omitempty"`
	Products    []Product       `gorm:"many2many:order_products;" json:"products,omitempty"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`
	OrderDate   time.Time       `json:"order_date"`
}
