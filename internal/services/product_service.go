package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/example/crm/internal/filters"
	"github.com/example/crm/internal/models"
)

// restockIncrement is the quantity added to each low-stock product by a
// restock run.
const restockIncrement = 10

// ProductService manages product reads and writes.
type ProductService struct {
	db    *gorm.DB
	cache *CacheService
}

// NewProductService constructs ProductService.
func NewProductService(db *gorm.DB, cache *CacheService) *ProductService {
	return &ProductService{db: db, cache: cache}
}

// ProductInput carries the fields accepted by product creation. A nil Stock
// defaults to zero.
type ProductInput struct {
	Name  string
	Price decimal.Decimal
	Stock *int
}

// ProductResult is the envelope returned by product creation.
type ProductResult struct {
	Success bool
	Product *models.Product
	Message string
	Errors  []string
}

// RestockResult reports the products touched by a restock run.
type RestockResult struct {
	Success  bool
	Products []*models.Product
	Message  string
}

// Create validates input and persists a new product.
func (s *ProductService) Create(input ProductInput) *ProductResult {
	var errs []string

	if input.Price.Cmp(decimal.Zero) <= 0 {
		errs = append(errs, "Price must be positive")
	}

	stock := 0
	if input.Stock != nil {
		stock = *input.Stock
	}
	if stock < 0 {
		errs = append(errs, "Stock cannot be negative")
	}

	if len(errs) > 0 {
		return &ProductResult{Success: false, Errors: errs, Message: "Product creation failed"}
	}

	product := &models.Product{
		Name:  input.Name,
		Price: input.Price,
		Stock: stock,
	}
	if err := s.db.Create(product).Error; err != nil {
		return &ProductResult{
			Success: false,
			Errors:  []string{fmt.Sprintf("Unexpected error: %v", err)},
			Message: "Product creation failed",
		}
	}

	s.cache.Invalidate(ProductCountKey)
	return &ProductResult{
		Success: true,
		Product: product,
		Message: "Product created successfully",
		Errors:  []string{},
	}
}

// RestockLowStock bumps every product under the low-stock threshold by a
// fixed increment, in one transaction, and returns the updated rows.
func (s *ProductService) RestockLowStock() (*RestockResult, error) {
	var updated []*models.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var products []*models.Product
		if err := tx.Where("stock < ?", filters.LowStockThreshold).Find(&products).Error; err != nil {
			return err
		}
		for _, product := range products {
			product.Stock += restockIncrement
			if err := tx.Model(product).Update("stock", product.Stock).Error; err != nil {
				return err
			}
		}
		updated = products
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RestockResult{
		Success:  true,
		Products: updated,
		Message:  fmt.Sprintf("Successfully restocked %d low-stock products", len(updated)),
	}, nil
}

// Get returns the product with the given id, or nil when absent.
func (s *ProductService) Get(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// List returns all products in storage order.
func (s *ProductService) List() ([]*models.Product, error) {
	var products []*models.Product
	if err := s.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Filtered returns one page of products matching the filter along with the
// total match count. A zero limit yields an empty page, a negative limit
// means no limit.
func (s *ProductService) Filtered(filter *filters.ProductFilter, limit, offset int) ([]*models.Product, int64, error) {
	var total int64
	if err := filter.Apply(s.db.Model(&models.Product{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if limit == 0 {
		return []*models.Product{}, total, nil
	}

	query := filter.Apply(s.db.Model(&models.Product{})).Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	var products []*models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Count returns the number of products, served from cache when fresh.
func (s *ProductService) Count() (int64, error) {
	if count, ok := s.cache.GetInt64(ProductCountKey); ok {
		return count, nil
	}
	var count int64
	if err := s.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	s.cache.SetInt64(ProductCountKey, count)
	return count, nil
}
