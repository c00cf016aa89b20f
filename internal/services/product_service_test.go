package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/crm/internal/filters"
	"github.com/example/crm/internal/models"
)

func TestCreateProduct(t *testing.T) {
	svc := NewProductService(newTestDB(t), nil)

	result := svc.Create(ProductInput{
		Name:  "Laptop",
		Price: decimal.RequireFromString("999.99"),
		Stock: intPtr(50),
	})

	require.True(t, result.Success)
	require.NotNil(t, result.Product)
	assert.Equal(t, "Product created successfully", result.Message)
	assert.Equal(t, "Laptop", result.Product.Name)
	assert.True(t, decimal.RequireFromString("999.99").Equal(result.Product.Price))
	assert.Equal(t, 50, result.Product.Stock)
}

func TestCreateProductStockDefaultsToZero(t *testing.T) {
	svc := NewProductService(newTestDB(t), nil)

	result := svc.Create(ProductInput{Name: "Cable", Price: decimal.RequireFromString("9.99")})

	require.True(t, result.Success)
	assert.Equal(t, 0, result.Product.Stock)
}

func TestCreateProductRejectsZeroPrice(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil)

	result := svc.Create(ProductInput{Name: "Freebie", Price: decimal.Zero})

	assert.False(t, result.Success)
	assert.Nil(t, result.Product)
	assert.Equal(t, "Product creation failed", result.Message)
	assert.Equal(t, []string{"Price must be positive"}, result.Errors)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateProductRejectsNegativeValues(t *testing.T) {
	svc := NewProductService(newTestDB(t), nil)

	result := svc.Create(ProductInput{
		Name:  "Broken",
		Price: decimal.RequireFromString("-1"),
		Stock: intPtr(-5),
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Errors, "Price must be positive")
	assert.Contains(t, result.Errors, "Stock cannot be negative")
}

func TestRestockLowStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil)

	svc.Create(ProductInput{Name: "Nearly Out", Price: decimal.RequireFromString("5.00"), Stock: intPtr(2)})
	svc.Create(ProductInput{Name: "Low", Price: decimal.RequireFromString("5.00"), Stock: intPtr(9)})
	svc.Create(ProductInput{Name: "Fine", Price: decimal.RequireFromString("5.00"), Stock: intPtr(10)})

	result, err := svc.RestockLowStock()
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "Successfully restocked 2 low-stock products", result.Message)
	require.Len(t, result.Products, 2)

	stocks := map[string]int{}
	var products []models.Product
	require.NoError(t, db.Find(&products).Error)
	for _, product := range products {
		stocks[product.Name] = product.Stock
	}
	assert.Equal(t, 12, stocks["Nearly Out"])
	assert.Equal(t, 19, stocks["Low"])
	assert.Equal(t, 10, stocks["Fine"])
}

func TestProductFilteredLowStock(t *testing.T) {
	svc := NewProductService(newTestDB(t), nil)

	svc.Create(ProductInput{Name: "Low A", Price: decimal.RequireFromString("1.00"), Stock: intPtr(0)})
	svc.Create(ProductInput{Name: "Low B", Price: decimal.RequireFromString("1.00"), Stock: intPtr(9)})
	svc.Create(ProductInput{Name: "Boundary", Price: decimal.RequireFromString("1.00"), Stock: intPtr(10)})
	svc.Create(ProductInput{Name: "Plenty", Price: decimal.RequireFromString("1.00"), Stock: intPtr(100)})

	lowStock := true
	matches, total, err := svc.Filtered(&filters.ProductFilter{LowStock: &lowStock}, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	names := map[string]bool{}
	for _, product := range matches {
		names[product.Name] = true
	}
	assert.Equal(t, map[string]bool{"Low A": true, "Low B": true}, names)
}

func TestProductFilteredStockBounds(t *testing.T) {
	svc := NewProductService(newTestDB(t), nil)

	svc.Create(ProductInput{Name: "Empty", Price: decimal.RequireFromString("1.00"), Stock: intPtr(0)})
	svc.Create(ProductInput{Name: "Handful", Price: decimal.RequireFromString("1.00"), Stock: intPtr(5)})
	svc.Create(ProductInput{Name: "Crate", Price: decimal.RequireFromString("1.00"), Stock: intPtr(50)})

	gte, lte := 1, 10
	matches, total, err := svc.Filtered(&filters.ProductFilter{StockGte: &gte, StockLte: &lte}, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, matches, 1)
	assert.Equal(t, "Handful", matches[0].Name)

	exact := 50
	matches, total, err = svc.Filtered(&filters.ProductFilter{StockExact: &exact}, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, matches, 1)
	assert.Equal(t, "Crate", matches[0].Name)
}

func TestProductFilteredNameEscapesWildcards(t *testing.T) {
	svc := NewProductService(newTestDB(t), nil)

	svc.Create(ProductInput{Name: "100% Juice", Price: decimal.RequireFromString("3.00")})
	svc.Create(ProductInput{Name: "1000ml Bottle", Price: decimal.RequireFromString("2.00")})

	matches, total, err := svc.Filtered(&filters.ProductFilter{Name: strPtr("100%")}, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, matches, 1)
	assert.Equal(t, "100% Juice", matches[0].Name)
}

func TestProductFilteredPriceBounds(t *testing.T) {
	svc := NewProductService(newTestDB(t), nil)

	svc.Create(ProductInput{Name: "Cheap", Price: decimal.RequireFromString("10.00")})
	svc.Create(ProductInput{Name: "Mid", Price: decimal.RequireFromString("50.00")})
	svc.Create(ProductInput{Name: "Expensive", Price: decimal.RequireFromString("100.00")})

	gte, lte := 10.0, 50.0
	matches, total, err := svc.Filtered(&filters.ProductFilter{PriceGte: &gte, PriceLte: &lte}, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, matches, 2)
}
