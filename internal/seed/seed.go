// Package seed destructively resets the CRM tables to a fixed fixture set.
package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/example/crm/internal/models"
	"github.com/example/crm/internal/services"
)

type customerFixture struct {
	name  string
	email string
	phone string
}

type productFixture struct {
	name  string
	price string
	stock int
}

var customerFixtures = []customerFixture{
	{name: "Alice Johnson", email: "alice@example.com", phone: "+1234567890"},
	{name: "Bob Smith", email: "bob@example.com", phone: "123-456-7890"},
	{name: "Carol Davis", email: "carol@example.com", phone: "+1987654321"},
	{name: "David Wilson", email: "david@example.com"},
	{name: "Eva Brown", email: "eva@example.com", phone: "987-654-3210"},
}

var productFixtures = []productFixture{
	{name: "Laptop", price: "999.99", stock: 50},
	{name: "Wireless Mouse", price: "29.99", stock: 100},
	{name: "Mechanical Keyboard", price: "79.99", stock: 75},
	{name: "4K Monitor", price: "299.99", stock: 30},
	{name: "Noise-Cancelling Headphones", price: "149.99", stock: 60},
}

// orderFixtures lists product indexes per customer index.
var orderFixtures = [][]int{
	{0, 1},    // Laptop + Mouse
	{2, 3},    // Keyboard + Monitor
	{4},       // Headphones
	{0, 2, 4}, // Laptop + Keyboard + Headphones
	{1, 3},    // Mouse + Monitor
}

// Run clears all three tables and recreates the fixture set. Running it
// twice leaves the same five customers, products, and orders. A nil cache
// skips invalidation.
func Run(db *gorm.DB, cache *services.CacheService) error {
	fmt.Println("Starting database seeding...")

	if err := clear(db); err != nil {
		return fmt.Errorf("clearing tables: %w", err)
	}

	fmt.Println("Creating customers...")
	customers := make([]*models.Customer, 0, len(customerFixtures))
	for _, fixture := range customerFixtures {
		customer := &models.Customer{Name: fixture.name, Email: fixture.email}
		if fixture.phone != "" {
			phone := fixture.phone
			customer.Phone = &phone
		}
		if err := db.Create(customer).Error; err != nil {
			return err
		}
		customers = append(customers, customer)
		fmt.Printf("  Created: %s\n", customer.Name)
	}

	fmt.Println("Creating products...")
	products := make([]*models.Product, 0, len(productFixtures))
	for _, fixture := range productFixtures {
		product := &models.Product{
			Name:  fixture.name,
			Price: decimal.RequireFromString(fixture.price),
			Stock: fixture.stock,
		}
		if err := db.Create(product).Error; err != nil {
			return err
		}
		products = append(products, product)
		fmt.Printf("  Created: %s - $%s\n", product.Name, product.Price.StringFixed(2))
	}

	fmt.Println("Creating sample orders...")
	for i, productIndexes := range orderFixtures {
		total := decimal.Zero
		orderProducts := make([]models.Product, 0, len(productIndexes))
		for _, idx := range productIndexes {
			total = total.Add(products[idx].Price)
			orderProducts = append(orderProducts, *products[idx])
		}

		order := &models.Order{
			CustomerID:  customers[i].ID,
			Products:    orderProducts,
			TotalAmount: total,
			OrderDate:   time.Now(),
		}
		if err := db.Omit("Products.*").Create(order).Error; err != nil {
			return err
		}
		fmt.Printf("  Order %s: %s - $%s\n", order.ID, customers[i].Name, total.StringFixed(2))
	}

	cache.Invalidate(services.CustomerCountKey, services.ProductCountKey,
		services.OrderCountKey, services.TotalRevenueKey)

	var customerCount, productCount, orderCount int64
	db.Model(&models.Customer{}).Count(&customerCount)
	db.Model(&models.Product{}).Count(&productCount)
	db.Model(&models.Order{}).Count(&orderCount)

	fmt.Println("Database seeding completed!")
	fmt.Printf("Summary: %d customers, %d products, %d orders\n",
		customerCount, productCount, orderCount)
	return nil
}

func clear(db *gorm.DB) error {
	if err := db.Exec("DELETE FROM order_products").Error; err != nil {
		return err
	}
	session := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []interface{}{&models.Order{}, &models.Customer{}, &models.Product{}} {
		if err := session.Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
