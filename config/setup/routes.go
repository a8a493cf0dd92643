package setup

import (
	"notes-api/app"
	"notes-api/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/", handlers.Root(application))
	fiberApp.Get("/health", handlers.Health(application))

	fiberApp.Get("/notes", handlers.ListNotes(application))
	fiberApp.Post("/notes", handlers.CreateNote(application))
	fiberApp.Get("/notes/:note_id", handlers.GetNote(application))
}
