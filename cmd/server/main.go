package main

import (
	"context"
	"log"
	"os"

	"carbonx/internal/adapters/httpapi"
	"carbonx/internal/config"
	"carbonx/internal/infrastructure/database"
	"carbonx/internal/infrastructure/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Database migration failed: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Database initialization failed: %v", err)
	}
	defer pool.Close()

	participantRepo := database.NewParticipantRepository(pool)
	translator := i18n.NewTranslator(cfg.DefaultLocale)

	server := httpapi.NewServer(cfg, participantRepo, translator)
	log.Printf("✅ Registration server listening on :%s", cfg.ServerPort)
	if err := server.Run(); err != nil {
		log.Printf("❌ Server stopped: %v", err)
		os.Exit(1)
	}
}
