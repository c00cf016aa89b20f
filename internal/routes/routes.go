package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/crm/internal/config"
	"github.com/example/crm/internal/graph"
	"github.com/example/crm/internal/services"
)

// Register wires up the GraphQL endpoint.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) error {
	cache := services.NewCacheService(cfg.RedisAddr)

	resolver := graph.NewResolver(db, cache)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return err
	}

	app.All("/graphql", graph.Handler(schema))
	return nil
}
