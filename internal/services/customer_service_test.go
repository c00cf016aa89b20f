package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/example/crm/internal/filters"
	"github.com/example/crm/internal/models"
)

func TestCreateCustomer(t *testing.T) {
	svc := NewCustomerService(newTestDB(t), nil)

	result := svc.Create(CustomerInput{
		Name:  "Alice Johnson",
		Email: "alice@example.com",
		Phone: strPtr("+1234567890"),
	})

	require.True(t, result.Success)
	require.NotNil(t, result.Customer)
	assert.Equal(t, "Customer created successfully", result.Message)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "Alice Johnson", result.Customer.Name)
	assert.Equal(t, "alice@example.com", result.Customer.Email)
	require.NotNil(t, result.Customer.Phone)
	assert.Equal(t, "+1234567890", *result.Customer.Phone)
	assert.NotZero(t, result.Customer.ID)
}

func TestCreateCustomerWithoutPhone(t *testing.T) {
	svc := NewCustomerService(newTestDB(t), nil)

	result := svc.Create(CustomerInput{Name: "David Wilson", Email: "david@example.com"})

	require.True(t, result.Success)
	assert.Nil(t, result.Customer.Phone)
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db, nil)

	require.True(t, svc.Create(CustomerInput{Name: "Alice", Email: "alice@example.com"}).Success)

	result := svc.Create(CustomerInput{Name: "Other Alice", Email: "alice@example.com"})

	assert.False(t, result.Success)
	assert.Nil(t, result.Customer)
	assert.Equal(t, "Customer creation failed", result.Message)
	assert.Contains(t, result.Errors, "Email already exists")

	var count int64
	db.Model(&models.Customer{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateCustomerPhoneValidation(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"+1234567890", true},
		{"+441234567890", true},
		{"123-456-7890", true},
		{"1234567890", false},
		{"+1234", false},
		{"123-45-67890", false},
		{"phone", false},
		{"++11234567890", false},
	}

	for _, tc := range cases {
		t.Run(tc.phone, func(t *testing.T) {
			svc := NewCustomerService(newTestDB(t), nil)
			result := svc.Create(CustomerInput{
				Name:  "Test",
				Email: "test@example.com",
				Phone: strPtr(tc.phone),
			})

			if tc.valid {
				assert.True(t, result.Success)
			} else {
				assert.False(t, result.Success)
				assert.Contains(t, result.Errors, "Invalid phone format. Use +1234567890 or 123-456-7890")
			}
		})
	}
}

func TestBulkCreateCustomers(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db, nil)

	require.True(t, svc.Create(CustomerInput{Name: "Existing", Email: "taken@example.com"}).Success)

	result := svc.BulkCreate([]CustomerInput{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "Dup", Email: "taken@example.com"},
		{Name: "Bob", Email: "bob@example.com", Phone: strPtr("123-456-7890")},
		{Name: "Bad Phone", Email: "bad@example.com", Phone: strPtr("12345")},
	})

	assert.Equal(t, 4, result.TotalCount)
	assert.Equal(t, 2, result.SuccessCount)
	require.Len(t, result.Customers, 2)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "Customer 2 (Dup): Email already exists")
	assert.Contains(t, result.Errors[1], "Customer 4 (Bad Phone): Invalid phone format")

	var count int64
	db.Model(&models.Customer{}).Count(&count)
	assert.Equal(t, int64(3), count)
}

func TestBulkCreateCustomersDuplicateWithinBatch(t *testing.T) {
	svc := NewCustomerService(newTestDB(t), nil)

	result := svc.BulkCreate([]CustomerInput{
		{Name: "First", Email: "same@example.com"},
		{Name: "Second", Email: "same@example.com"},
	})

	assert.Equal(t, 1, result.SuccessCount)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Customer 2 (Second): Email already exists")
}

func TestBulkCreateCustomersAbortsOnDatabaseError(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db, nil)

	// An insert failure that is not a validation error must roll back the
	// rows created earlier in the batch.
	err := db.Callback().Create().Before("gorm:create").Register("fail_second_insert", func(tx *gorm.DB) {
		if customer, ok := tx.Statement.Dest.(*models.Customer); ok && customer.Email == "boom@example.com" {
			tx.AddError(errors.New("disk I/O error"))
		}
	})
	require.NoError(t, err)

	result := svc.BulkCreate([]CustomerInput{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "Boom", Email: "boom@example.com"},
		{Name: "Bob", Email: "bob@example.com"},
	})

	assert.Equal(t, 3, result.TotalCount)
	assert.Zero(t, result.SuccessCount)
	assert.Nil(t, result.Customers)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Transaction failed")
	assert.Contains(t, result.Errors[0], "Boom")

	var count int64
	db.Model(&models.Customer{}).Count(&count)
	assert.Zero(t, count)
}

func TestGetCustomerNotFound(t *testing.T) {
	svc := NewCustomerService(newTestDB(t), nil)

	customer, err := svc.Get(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, customer)
}

func TestCustomerCountAndList(t *testing.T) {
	svc := NewCustomerService(newTestDB(t), nil)
	svc.Create(CustomerInput{Name: "A", Email: "a@example.com"})
	svc.Create(CustomerInput{Name: "B", Email: "b@example.com"})

	count, err := svc.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	customers, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, customers, 2)
}

func TestCustomerFiltered(t *testing.T) {
	svc := NewCustomerService(newTestDB(t), nil)
	svc.Create(CustomerInput{Name: "Alice Johnson", Email: "alice@example.com", Phone: strPtr("+1234567890")})
	svc.Create(CustomerInput{Name: "Bob Smith", Email: "bob@example.com", Phone: strPtr("123-456-7890")})

	matches, total, err := svc.Filtered(&filters.CustomerFilter{Name: strPtr("ALICE")}, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, matches, 1)
	assert.Equal(t, "Alice Johnson", matches[0].Name)

	matches, total, err = svc.Filtered(&filters.CustomerFilter{PhonePattern: strPtr("+1")}, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, matches, 1)
	assert.Equal(t, "Alice Johnson", matches[0].Name)
}

func TestCustomerFilteredPhonePrefixIsLiteral(t *testing.T) {
	svc := NewCustomerService(newTestDB(t), nil)
	svc.Create(CustomerInput{Name: "Alice", Email: "alice@example.com", Phone: strPtr("+1234567890")})
	svc.Create(CustomerInput{Name: "Bob", Email: "bob@example.com", Phone: strPtr("123-456-7890")})

	// A wildcard in the prefix must not match; "_23" is not a real prefix.
	_, total, err := svc.Filtered(&filters.CustomerFilter{PhonePattern: strPtr("_23")}, -1, 0)
	require.NoError(t, err)
	assert.Zero(t, total)

	matches, total, err := svc.Filtered(&filters.CustomerFilter{PhonePattern: strPtr("123")}, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, matches, 1)
	assert.Equal(t, "Bob", matches[0].Name)
}

func TestCustomerFilteredDateBounds(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db, nil)

	old := svc.Create(CustomerInput{Name: "Old", Email: "old@example.com"})
	require.True(t, old.Success)
	lastYear := time.Now().AddDate(-1, 0, 0)
	require.NoError(t, db.Model(&models.Customer{}).
		Where("id = ?", old.Customer.ID).
		Update("created_at", lastYear).Error)

	recent := svc.Create(CustomerInput{Name: "Recent", Email: "recent@example.com"})
	require.True(t, recent.Success)

	monthAgo := time.Now().AddDate(0, -1, 0)
	matches, total, err := svc.Filtered(&filters.CustomerFilter{CreatedAtGte: &monthAgo}, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, matches, 1)
	assert.Equal(t, "Recent", matches[0].Name)

	matches, total, err = svc.Filtered(&filters.CustomerFilter{CreatedAtLte: &monthAgo}, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, matches, 1)
	assert.Equal(t, "Old", matches[0].Name)
}

func TestCleanInactive(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db, nil)

	fresh := svc.Create(CustomerInput{Name: "Fresh", Email: "fresh@example.com"})
	require.True(t, fresh.Success)

	stale := svc.Create(CustomerInput{Name: "Stale", Email: "stale@example.com"})
	require.True(t, stale.Success)
	twoYearsAgo := time.Now().AddDate(-2, 0, 0)
	require.NoError(t, db.Model(&models.Customer{}).
		Where("id = ?", stale.Customer.ID).
		Update("created_at", twoYearsAgo).Error)

	deleted, err := svc.CleanInactive(time.Now().AddDate(0, 0, -365))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var count int64
	db.Model(&models.Customer{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
