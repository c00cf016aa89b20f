package services

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/crm/internal/filters"
	"github.com/example/crm/internal/models"
)

// Accepted phone formats: +<country code><10 digits> or NNN-NNN-NNNN.
var phonePattern = regexp.MustCompile(`^(\+\d{1,3}\d{10}|\d{3}-\d{3}-\d{4})$`)

// CustomerService manages customer reads and writes.
type CustomerService struct {
	db    *gorm.DB
	cache *CacheService
}

// NewCustomerService constructs CustomerService.
func NewCustomerService(db *gorm.DB, cache *CacheService) *CustomerService {
	return &CustomerService{db: db, cache: cache}
}

// CustomerInput carries the fields accepted by customer creation.
type CustomerInput struct {
	Name  string
	Email string
	Phone *string
}

// CustomerResult is the envelope returned by customer creation. Validation
// failures set Success=false and fill Errors; they are never Go errors.
type CustomerResult struct {
	Success  bool
	Customer *models.Customer
	Message  string
	Errors   []string
}

// BulkCustomersResult reports the outcome of a bulk creation.
type BulkCustomersResult struct {
	Customers    []*models.Customer
	Errors       []string
	SuccessCount int
	TotalCount   int
}

// Create validates input and persists a new customer.
func (s *CustomerService) Create(input CustomerInput) *CustomerResult {
	errs := s.validate(s.db, input)
	if len(errs) > 0 {
		return &CustomerResult{Success: false, Errors: errs, Message: "Customer creation failed"}
	}

	customer := &models.Customer{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}
	if err := s.db.Create(customer).Error; err != nil {
		return &CustomerResult{
			Success: false,
			Errors:  []string{fmt.Sprintf("Unexpected error: %v", err)},
			Message: "Customer creation failed",
		}
	}

	s.cache.Invalidate(CustomerCountKey)
	return &CustomerResult{
		Success:  true,
		Customer: customer,
		Message:  "Customer created successfully",
		Errors:   []string{},
	}
}

// BulkCreate processes each entry independently but commits all successful
// rows in a single transaction: per-entry validation failures are collected
// and skipped, while an unexpected database error aborts the whole batch.
func (s *CustomerService) BulkCreate(inputs []CustomerInput) *BulkCustomersResult {
	result := &BulkCustomersResult{TotalCount: len(inputs), Errors: []string{}}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i, input := range inputs {
			if errs := s.validate(tx, input); len(errs) > 0 {
				for _, msg := range errs {
					result.Errors = append(result.Errors,
						fmt.Sprintf("Customer %d (%s): %s", i+1, input.Name, msg))
				}
				continue
			}

			customer := &models.Customer{
				Name:  input.Name,
				Email: input.Email,
				Phone: input.Phone,
			}
			if err := tx.Create(customer).Error; err != nil {
				return fmt.Errorf("customer %d (%s): %w", i+1, input.Name, err)
			}
			result.Customers = append(result.Customers, customer)
		}
		return nil
	})
	if err != nil {
		result.Customers = nil
		result.Errors = append(result.Errors, fmt.Sprintf("Transaction failed: %v", err))
	}

	result.SuccessCount = len(result.Customers)
	if result.SuccessCount > 0 {
		s.cache.Invalidate(CustomerCountKey)
	}
	return result
}

func (s *CustomerService) validate(tx *gorm.DB, input CustomerInput) []string {
	var errs []string

	var existing int64
	tx.Model(&models.Customer{}).Where("email = ?", input.Email).Count(&existing)
	if existing > 0 {
		errs = append(errs, "Email already exists")
	}

	if input.Phone != nil && *input.Phone != "" && !phonePattern.MatchString(*input.Phone) {
		errs = append(errs, "Invalid phone format. Use +1234567890 or 123-456-7890")
	}

	return errs
}

// Get returns the customer with the given id, or nil when absent.
func (s *CustomerService) Get(id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// List returns all customers in storage order.
func (s *CustomerService) List() ([]*models.Customer, error) {
	var customers []*models.Customer
	if err := s.db.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// Filtered returns one page of customers matching the filter along with the
// total match count. A zero limit yields an empty page, a negative limit
// means no limit.
func (s *CustomerService) Filtered(filter *filters.CustomerFilter, limit, offset int) ([]*models.Customer, int64, error) {
	var total int64
	if err := filter.Apply(s.db.Model(&models.Customer{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if limit == 0 {
		return []*models.Customer{}, total, nil
	}

	query := filter.Apply(s.db.Model(&models.Customer{})).Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	var customers []*models.Customer
	if err := query.Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

// Count returns the number of customers, served from cache when fresh.
func (s *CustomerService) Count() (int64, error) {
	if count, ok := s.cache.GetInt64(CustomerCountKey); ok {
		return count, nil
	}
	var count int64
	if err := s.db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return 0, err
	}
	s.cache.SetInt64(CustomerCountKey, count)
	return count, nil
}

// CleanInactive deletes customers created before the cutoff and returns the
// number of rows removed. Associated orders go with them via the cascade
// constraint.
func (s *CustomerService) CleanInactive(cutoff time.Time) (int64, error) {
	result := s.db.Where("created_at < ?", cutoff).Delete(&models.Customer{})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		s.cache.Invalidate(CustomerCountKey, OrderCountKey, TotalRevenueKey)
	}
	return result.RowsAffected, nil
}
