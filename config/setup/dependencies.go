package setup

import (
	"context"
	"log/slog"
	"notes-api/app"
	"notes-api/config"
	"notes-api/database"

	"github.com/gofiber/fiber/v2"
)

// InitDatabase opens the storage client and bootstraps the schema.
// Any error here must abort startup.
func InitDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(cfg.DatabaseURL, cfg.AuthToken)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "driver", db.DriverName())
	return db, nil
}

// InitApp wires the application around an open database
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)
	return app.New(repo, logger)
}

// NewServer builds a Fiber app with middleware and routes installed
func NewServer(cfg *config.Config, application *app.App) *fiber.App {
	fiberApp := NewFiberApp(cfg, application.Logger)
	ApplyMiddleware(fiberApp, cfg, application.Logger)
	RegisterRoutes(fiberApp, application)
	return fiberApp
}

// Shutdown closes the database after the server has drained
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
