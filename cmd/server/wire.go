// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"campus_lostfound_backend/internal/app"
	"campus_lostfound_backend/internal/auth"
	"campus_lostfound_backend/internal/category"
	"campus_lostfound_backend/internal/config"
	"campus_lostfound_backend/internal/jobs"
	"campus_lostfound_backend/internal/matching"
	"campus_lostfound_backend/internal/notification"
	"campus_lostfound_backend/internal/platform/logger"
	"campus_lostfound_backend/internal/report"
	"campus_lostfound_backend/internal/shared"
	"campus_lostfound_backend/internal/stats"
	"campus_lostfound_backend/internal/user"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		bootstrapDatabase,
		provideCleanup,

		// Auth & tokens
		auth.NewJWTTokenService,
		wire.Bind(new(shared.TokenService), new(*auth.JWTTokenService)),
		auth.NewService,
		wire.Bind(new(auth.Service), new(*auth.ServiceImplementation)),
		auth.NewHandler,

		// Users
		user.NewGORMRepository,
		user.NewService,
		wire.Bind(new(user.Service), new(*user.ServiceImplementation)),
		user.NewHandler,

		// Categories
		category.NewGORMRepository,
		category.NewService,
		category.NewHandler,

		// Reports
		report.NewGORMRepository,
		report.NewService,
		wire.Bind(new(report.Service), new(*report.ServiceImplementation)),
		report.NewHandler,

		// Matching engine; also serves as the reconciler for report creation
		matching.NewGORMRepository,
		matching.NewService,
		wire.Bind(new(shared.Reconciler), new(*matching.Service)),
		matching.NewHandler,

		// Notifications
		notification.NewGORMRepository,
		notification.NewService,
		wire.Bind(new(notification.Service), new(*notification.ServiceImplementation)),
		notification.NewHandler,

		// Statistics
		stats.NewGORMRepository,
		stats.NewService,
		stats.NewHandler,

		// Jobs
		jobs.NewNotificationCleanupJob,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
