package app

import (
	"log/slog"
	"notes-api/services"
	"notes-api/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Notes     *services.NoteService
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo services.NoteRepository, logger *slog.Logger) *App {
	return &App{
		Notes:     services.NewNoteService(repo),
		Validator: validator.New(),
		Logger:    logger,
	}
}
