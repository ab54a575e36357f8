package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	_ "github.com/crypticbroker/platform-api/docs"
	"github.com/crypticbroker/platform-api/internal/api/handlers"
	"github.com/crypticbroker/platform-api/internal/api/middleware"
	"github.com/crypticbroker/platform-api/internal/api/routes"
	"github.com/crypticbroker/platform-api/internal/application"
	"github.com/crypticbroker/platform-api/internal/config"
	"github.com/crypticbroker/platform-api/internal/config/db"
	"github.com/crypticbroker/platform-api/internal/cron"
	"github.com/crypticbroker/platform-api/internal/notify"
	"github.com/crypticbroker/platform-api/internal/repository"
	"github.com/crypticbroker/platform-api/internal/storage"
)

// @title CrypticBroker API
// @version 1.0
// @description Two-sided platform connecting blockchain projects with investors and accelerators.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and run migrations
	db.Init()

	store, err := storage.New(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	repos := repository.New(db.DB)
	services := application.New(repos, store)

	broker := notify.NewBroker()
	services.Application.Notifier = notify.NewService(broker, notify.NewMailer(), repos)

	cron.StartCleanupTask(services.Audit)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	h := handlers.New(services, broker, router)
	routes.RegisterRoutes(router, h)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
