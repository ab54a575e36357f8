package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/crypticbroker/platform-api/internal/application"
	"github.com/crypticbroker/platform-api/internal/config"
	"github.com/crypticbroker/platform-api/internal/config/db"
	"github.com/crypticbroker/platform-api/internal/repository"
)

// Standalone maintenance runner for deployments that keep background jobs out
// of the API pods. Currently prunes expired audit logs once a day.
func main() {
	config.LoadConfig()
	db.Init()

	repos := repository.New(db.DB)
	auditService := application.NewAuditService(repos)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
		<-sigChan
		log.Println("Shutdown signal")
		cancel()
	}()

	log.Println("Starting maintenance runner (audit retention: 30 days)")

	run := func() {
		if err := auditService.CleanupOldLogs(30); err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
		}
	}
	run()

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			run()
		case <-ctx.Done():
			log.Println("Maintenance runner stopped")
			return
		}
	}
}
