package main

import (
	"log"

	"olyph-ai-be/internal/bootstrap"
	"olyph-ai-be/internal/config"
	"olyph-ai-be/internal/entity"
	"olyph-ai-be/internal/server"
	"olyph-ai-be/pkg/database"
)

func main() {
	// 1. Load and validate configuration. Missing credentials or
	// endpoints are fatal before serving starts.
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}
	if err := gormDB.AutoMigrate(&entity.User{}, &entity.SurveyResponse{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// 3. Bootstrap dependencies
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Serve
	srv := server.New(cfg, container)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
