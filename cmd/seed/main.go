package main

import (
	"log"

	"github.com/example/crm/internal/config"
	"github.com/example/crm/internal/database"
	"github.com/example/crm/internal/seed"
	"github.com/example/crm/internal/services"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	cache := services.NewCacheService(cfg.RedisAddr)
	defer cache.Close()

	if err := seed.Run(db, cache); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}
