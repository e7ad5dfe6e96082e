// File: internal/platform/database/migrate.go
package database

import (
	"campus_lostfound_backend/internal/category"
	"campus_lostfound_backend/internal/matching"
	"campus_lostfound_backend/internal/notification"
	"campus_lostfound_backend/internal/report"
	"campus_lostfound_backend/internal/user"

	"gorm.io/gorm"
)

// AutoMigrateModels creates or updates the schema for every model in the
// application. Order matters: referenced tables first.
func AutoMigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&category.Category{},
		&report.LostReport{},
		&report.FoundReport{},
		&matching.Match{},
		&notification.Notification{},
	)
}
