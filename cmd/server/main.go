package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // godotenv loads a local .env file in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/grooveops/server/internal/config"
	"github.com/grooveops/server/internal/database"
	"github.com/grooveops/server/internal/handler"
	"github.com/grooveops/server/internal/lineup"
	"github.com/grooveops/server/internal/middleware"
	"github.com/grooveops/server/internal/queue"
	"github.com/grooveops/server/internal/repository"
	"github.com/grooveops/server/internal/router"
	queue_publisher "github.com/grooveops/server/internal/service"
)

func main() {
	// Load .env when present; real deployments set env vars directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	djRepo := repository.NewDJRepo(db)
	eventRepo := repository.NewEventRepo(db)
	drafts := lineup.NewRegistry()

	vault := handler.NewVaultHandler(djRepo)
	events := handler.NewEventHandler(eventRepo)
	builder := handler.NewLineupHandler(drafts, djRepo, eventRepo, queue_publisher.PublishEventConfirmed)

	e := echo.New()

	// Redis-backed middleware; both disable themselves when Redis is
	// unreachable at startup.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))
	cache := middleware.ResponseCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterVault(e, vault, cache)
	router.RegisterEvents(e, events, cache)
	router.RegisterDrafts(e, builder)

	// Consume event.confirmed messages in the background, appending each
	// confirmation to logs/events.log.
	go func() {
		if err := queue.StartEventConsumer(); err != nil {
			log.Printf("event consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
