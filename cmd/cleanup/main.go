// Command cleanup deletes customers created more than a year ago, along
// with their orders, and prints how many rows were removed.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/example/crm/internal/config"
	"github.com/example/crm/internal/database"
	"github.com/example/crm/internal/services"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	customers := services.NewCustomerService(db, services.NewCacheService(cfg.RedisAddr))

	cutoff := time.Now().AddDate(0, 0, -365)
	deleted, err := customers.CleanInactive(cutoff)
	if err != nil {
		log.Fatalf("cleanup failed: %v", err)
	}

	fmt.Printf("Deleted %d inactive customers\n", deleted)
}
