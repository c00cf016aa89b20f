package models

import (
	"github.com/shopspring/decimal"
)

// Product is a sellable item. Price is stored with two decimal places so
// order totals stay exact; Stock defaults to zero.
type Product struct {
	BaseModel
	Name  string          `json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Stock int             `gorm:"default:0" json:"stock"`
}
