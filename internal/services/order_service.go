package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/example/crm/internal/filters"
	"github.com/example/crm/internal/models"
)

// OrderService manages order reads and writes.
type OrderService struct {
	db    *gorm.DB
	cache *CacheService
}

// NewOrderService constructs OrderService.
func NewOrderService(db *gorm.DB, cache *CacheService) *OrderService {
	return &OrderService{db: db, cache: cache}
}

// OrderInput carries the fields accepted by order creation. A nil OrderDate
// defaults to the current time.
type OrderInput struct {
	CustomerID uuid.UUID
	ProductIDs []uuid.UUID
	OrderDate  *time.Time
}

// OrderResult is the envelope returned by order creation.
type OrderResult struct {
	Success bool
	Order   *models.Order
	Message string
	Errors  []string
}

func orderFailure(errs ...string) *OrderResult {
	return &OrderResult{Success: false, Errors: errs, Message: "Order creation failed"}
}

// Create validates the referenced rows, freezes the total from the current
// product prices, and writes the order plus its associations atomically.
func (s *OrderService) Create(input OrderInput) *OrderResult {
	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", input.CustomerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return orderFailure(fmt.Sprintf("Customer with ID %s does not exist", input.CustomerID))
		}
		return orderFailure(fmt.Sprintf("Unexpected error: %v", err))
	}

	if len(input.ProductIDs) == 0 {
		return orderFailure("At least one product must be selected")
	}

	var products []models.Product
	if err := s.db.Where("id IN ?", input.ProductIDs).Find(&products).Error; err != nil {
		return orderFailure(fmt.Sprintf("Unexpected error: %v", err))
	}

	if missing := missingIDs(input.ProductIDs, products); len(missing) > 0 {
		return orderFailure(fmt.Sprintf("Products with IDs %v do not exist", missing))
	}

	total := decimal.Zero
	for _, product := range products {
		total = total.Add(product.Price)
	}

	orderDate := time.Now()
	if input.OrderDate != nil {
		orderDate = *input.OrderDate
	}

	order := &models.Order{
		CustomerID:  customer.ID,
		Products:    products,
		TotalAmount: total,
		OrderDate:   orderDate,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Omit the products themselves so only the join rows are written.
		return tx.Omit("Products.*").Create(order).Error
	})
	if err != nil {
		return orderFailure(fmt.Sprintf("Order creation failed: %v", err))
	}

	order.Customer = &customer
	s.cache.Invalidate(OrderCountKey, TotalRevenueKey)
	return &OrderResult{
		Success: true,
		Order:   order,
		Message: fmt.Sprintf("Order created successfully with total amount $%s", total.StringFixed(2)),
		Errors:  []string{},
	}
}

func missingIDs(requested []uuid.UUID, found []models.Product) []uuid.UUID {
	present := make(map[uuid.UUID]bool, len(found))
	for _, product := range found {
		present[product.ID] = true
	}
	var missing []uuid.UUID
	for _, id := range requested {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

// Get returns the order with the given id, with its customer and products
// preloaded, or nil when absent.
func (s *OrderService) Get(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Customer").Preload("Products").First(&order, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// List returns all orders in storage order.
func (s *OrderService) List() ([]*models.Order, error) {
	var orders []*models.Order
	if err := s.db.Preload("Customer").Preload("Products").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Filtered returns one page of orders matching the filter along with the
// total match count. A zero limit yields an empty page, a negative limit
// means no limit.
func (s *OrderService) Filtered(filter *filters.OrderFilter, limit, offset int) ([]*models.Order, int64, error) {
	var total int64
	if err := filter.Apply(s.db.Model(&models.Order{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if limit == 0 {
		return []*models.Order{}, total, nil
	}

	query := filter.Apply(s.db.Model(&models.Order{})).
		Preload("Customer").Preload("Products").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	var orders []*models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// Count returns the number of orders, served from cache when fresh.
func (s *OrderService) Count() (int64, error) {
	if count, ok := s.cache.GetInt64(OrderCountKey); ok {
		return count, nil
	}
	var count int64
	if err := s.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	s.cache.SetInt64(OrderCountKey, count)
	return count, nil
}

// TotalRevenue sums every order's frozen total, returning 0 when there are
// no orders.
func (s *OrderService) TotalRevenue() (float64, error) {
	if revenue, ok := s.cache.GetFloat64(TotalRevenueKey); ok {
		return revenue, nil
	}
	var revenue float64
	err := s.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	if err != nil {
		return 0, err
	}
	s.cache.SetFloat64(TotalRevenueKey, revenue)
	return revenue, nil
}
