package handlers

import (
	"errors"
	"notes-api/app"
	"notes-api/models"
	"notes-api/services"
	"notes-api/validator"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	connectedMessage   = "API connected to Turso"
	noteCreatedMessage = "Note created"
	noteNotFoundError  = "Note not found"
)

// Root reports that the service is reachable
func Root(_ *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return success(c, models.MessageResponse{Message: connectedMessage})
	}
}

// Health is the liveness probe
func Health(_ *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return success(c, models.StatusResponse{Status: "ok"})
	}
}

// ListNotes returns every stored note
func ListNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.Notes.List(c.UserContext())
		if err != nil {
			return serverErrorWithDetails(c, a.Logger, "Failed to fetch notes", err)
		}

		return success(c, notes)
	}
}

// CreateNote stores a new note and returns its id
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := decodeJSONBody(c, &req); err != nil {
			return unprocessable(c, "Invalid request body", nil)
		}

		if err := a.Validator.Validate(&req); err != nil {
			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) {
				return unprocessable(c, "Validation failed", validationErrs)
			}
			return unprocessable(c, "Invalid request body", nil)
		}

		id, err := a.Notes.Create(c.UserContext(), *req.Content)
		if err != nil {
			return serverErrorWithDetails(c, a.Logger, "Failed to create note", err)
		}

		return success(c, models.CreateNoteResponse{
			Message: noteCreatedMessage,
			ID:      id,
		})
	}
}

// GetNote returns a single note by its integer id
func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("note_id"), 10, 64)
		if err != nil {
			return unprocessable(c, "note_id must be an integer", nil)
		}

		note, err := a.Notes.Get(c.UserContext(), id)
		if errors.Is(err, services.ErrNoteNotFound) {
			return notFound(c, noteNotFoundError)
		}
		if err != nil {
			return serverErrorWithDetails(c, a.Logger, "Failed to fetch note", err)
		}

		return success(c, note)
	}
}
