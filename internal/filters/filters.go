// Package filters maps the exposed GraphQL filter arguments onto gorm query
// expressions. Every field is optional; set fields combine with AND.
package filters

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LowStockThreshold is the stock level below which a product counts as low.
const LowStockThreshold = 10

// HighValueThreshold is the total amount above which an order counts as
// high-value.
const HighValueThreshold = 500

// CustomerFilter narrows customer queries.
type CustomerFilter struct {
	Name         *string
	Email        *string
	CreatedAtGte *time.Time
	CreatedAtLte *time.Time
	PhonePattern *string
}

// Apply adds the set predicates to the query.
func (f *CustomerFilter) Apply(query *gorm.DB) *gorm.DB {
	if f == nil {
		return query
	}
	if f.Name != nil {
		query = query.Where(`LOWER(customers.name) LIKE ? ESCAPE '\'`, contains(*f.Name))
	}
	if f.Email != nil {
		query = query.Where(`LOWER(customers.email) LIKE ? ESCAPE '\'`, contains(*f.Email))
	}
	if f.CreatedAtGte != nil {
		query = query.Where("customers.created_at >= ?", *f.CreatedAtGte)
	}
	if f.CreatedAtLte != nil {
		query = query.Where("customers.created_at <= ?", *f.CreatedAtLte)
	}
	if f.PhonePattern != nil {
		query = query.Where(`customers.phone LIKE ? ESCAPE '\'`, likeEscaper.Replace(*f.PhonePattern)+"%")
	}
	return query
}

// ProductFilter narrows product queries.
type ProductFilter struct {
	Name       *string
	PriceGte   *float64
	PriceLte   *float64
	StockGte   *int
	StockLte   *int
	StockExact *int
	LowStock   *bool
}

// Apply adds the set predicates to the query.
func (f *ProductFilter) Apply(query *gorm.DB) *gorm.DB {
	if f == nil {
		return query
	}
	if f.Name != nil {
		query = query.Where(`LOWER(products.name) LIKE ? ESCAPE '\'`, contains(*f.Name))
	}
	if f.PriceGte != nil {
		query = query.Where("products.price >= ?", *f.PriceGte)
	}
	if f.PriceLte != nil {
		query = query.Where("products.price <= ?", *f.PriceLte)
	}
	if f.StockGte != nil {
		query = query.Where("products.stock >= ?", *f.StockGte)
	}
	if f.StockLte != nil {
		query = query.Where("products.stock <= ?", *f.StockLte)
	}
	if f.StockExact != nil {
		query = query.Where("products.stock = ?", *f.StockExact)
	}
	if f.LowStock != nil && *f.LowStock {
		query = query.Where("products.stock < ?", LowStockThreshold)
	}
	return query
}

// OrderFilter narrows order queries, including lookups through the related
// customer and the order_products join table.
type OrderFilter struct {
	TotalAmountGte *float64
	TotalAmountLte *float64
	OrderDateGte   *time.Time
	OrderDateLte   *time.Time
	CustomerName   *string
	CustomerEmail  *string
	ProductName    *string
	ProductID      *uuid.UUID
	HighValueOrder *bool
}

// Apply adds the set predicates to the query. Product filters go through a
// subquery on the join table, so an order matching several products still
// appears once.
func (f *OrderFilter) Apply(query *gorm.DB) *gorm.DB {
	if f == nil {
		return query
	}
	if f.TotalAmountGte != nil {
		query = query.Where("orders.total_amount >= ?", *f.TotalAmountGte)
	}
	if f.TotalAmountLte != nil {
		query = query.Where("orders.total_amount <= ?", *f.TotalAmountLte)
	}
	if f.OrderDateGte != nil {
		query = query.Where("orders.order_date >= ?", *f.OrderDateGte)
	}
	if f.OrderDateLte != nil {
		query = query.Where("orders.order_date <= ?", *f.OrderDateLte)
	}
	if f.CustomerName != nil || f.CustomerEmail != nil {
		query = query.Joins("JOIN customers ON customers.id = orders.customer_id")
		if f.CustomerName != nil {
			query = query.Where(`LOWER(customers.name) LIKE ? ESCAPE '\'`, contains(*f.CustomerName))
		}
		if f.CustomerEmail != nil {
			query = query.Where(`LOWER(customers.email) LIKE ? ESCAPE '\'`, contains(*f.CustomerEmail))
		}
	}
	if f.ProductName != nil {
		query = query.Where(
			`orders.id IN (SELECT op.order_id FROM order_products op JOIN products p ON p.id = op.product_id WHERE LOWER(p.name) LIKE ? ESCAPE '\')`,
			contains(*f.ProductName))
	}
	if f.ProductID != nil {
		query = query.Where(
			"orders.id IN (SELECT op.order_id FROM order_products op WHERE op.product_id = ?)",
			*f.ProductID)
	}
	if f.HighValueOrder != nil && *f.HighValueOrder {
		query = query.Where("orders.total_amount > ?", HighValueThreshold)
	}
	return query
}

// likeEscaper makes LIKE treat %, _ and the escape character itself as
// literals in user-supplied search terms.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func contains(value string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(value)) + "%"
}
