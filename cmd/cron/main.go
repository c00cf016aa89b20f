package main

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/example/crm/internal/config"
	"github.com/example/crm/internal/database"
	"github.com/example/crm/internal/jobs"
	"github.com/example/crm/internal/services"
)

// inactivityWindow is how long a customer may sit without activity before
// the cleanup job removes them.
const inactivityWindow = 365

func main() {
	cfg := config.Load()
	client := jobs.NewClient(cfg.GraphQLURL)

	db := database.Connect(cfg.DatabaseURL)
	customers := services.NewCustomerService(db, services.NewCacheService(cfg.RedisAddr))

	scheduler := cron.New()

	mustAdd(scheduler, "*/5 * * * *", func() {
		if err := jobs.LogHeartbeat(client, cfg.HeartbeatLogPath); err != nil {
			log.Printf("heartbeat failed: %v", err)
		}
	})

	mustAdd(scheduler, "0 */12 * * *", func() {
		if err := jobs.RestockLowStock(client, cfg.LowStockLogPath); err != nil {
			log.Printf("low-stock restock failed: %v", err)
		}
	})

	mustAdd(scheduler, "0 8 * * *", func() {
		if err := jobs.SendOrderReminders(client, cfg.OrderRemindersLogPath); err != nil {
			log.Printf("order reminders failed: %v", err)
		}
	})

	mustAdd(scheduler, "0 2 * * 0", func() {
		cutoff := time.Now().AddDate(0, 0, -inactivityWindow)
		deleted, err := customers.CleanInactive(cutoff)
		if err != nil {
			log.Printf("inactive customer cleanup failed: %v", err)
			return
		}
		log.Printf("Deleted %d inactive customers", deleted)
	})

	log.Println("CRM scheduler started")
	scheduler.Run()
}

func mustAdd(scheduler *cron.Cron, spec string, job func()) {
	if _, err := scheduler.AddFunc(spec, job); err != nil {
		log.Fatalf("invalid cron spec %q: %v", spec, err)
	}
}
