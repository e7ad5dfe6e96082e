// File: cmd/server/providers.go
package main

import (
	"context"
	"log"
	"time"

	"campus_lostfound_backend/internal/category"
	"campus_lostfound_backend/internal/config"
	"campus_lostfound_backend/internal/platform/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// bootstrapDatabase connects to the database, runs schema migrations and
// seeds the default category taxonomy.
func bootstrapDatabase(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := database.NewGORM(cfg)
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrateModels(db); err != nil {
		return nil, err
	}
	logger.Info("Database schema migrated.")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	categoryService := category.NewService(category.NewGORMRepository(db), logger, cfg)
	if err := categoryService.SeedDefaults(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

func provideCleanup(logger *zap.Logger, db *gorm.DB) func() {
	return func() {
		logger.Info("Executing cleanup tasks...")
		database.CloseGORMDB(db)
		if err := logger.Sync(); err != nil {
			log.Printf("ERROR: Failed to sync logger during cleanup: %v", err)
		}
		log.Println("Cleanup finished.")
	}
}
