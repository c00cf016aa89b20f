package graph

import (
	"gorm.io/gorm"

	"github.com/example/crm/internal/services"
)

// Resolver holds the services the schema resolves against. It is the single
// explicitly-constructed context object behind every field.
type Resolver struct {
	customers *services.CustomerService
	products  *services.ProductService
	orders    *services.OrderService
}

// NewResolver constructs a Resolver over the given database and cache.
func NewResolver(db *gorm.DB, cache *services.CacheService) *Resolver {
	return &Resolver{
		customers: services.NewCustomerService(db, cache),
		products:  services.NewProductService(db, cache),
		orders:    services.NewOrderService(db, cache),
	}
}
