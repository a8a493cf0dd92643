package handlers

import (
	"errors"
	"log/slog"
	"notes-api/middleware"
	"notes-api/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

var errUnsupportedContentType = errors.New("unsupported content type")

// decodeJSONBody reads the body as JSON when Content-Type is absent,
// application/json or a +json type. Anything else is rejected.
func decodeJSONBody(c *fiber.Ctx, out interface{}) error {
	ctype := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	ctype, _, _ = strings.Cut(ctype, ";")
	ctype = strings.TrimSpace(ctype)

	if ctype != "" && ctype != fiber.MIMEApplicationJSON && !strings.HasSuffix(ctype, "+json") {
		return errUnsupportedContentType
	}

	return c.App().Config().JSONDecoder(c.Body(), out)
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
		Error:     message,
		RequestID: middleware.GetRequestID(c),
	})
}

func unprocessable(c *fiber.Ctx, message string, details interface{}) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{
		Error:     message,
		RequestID: middleware.GetRequestID(c),
		Details:   details,
	})
}

func serverErrorWithDetails(c *fiber.Ctx, logger *slog.Logger, message string, err error) error {
	id := middleware.GetRequestID(c)

	logger.Error("server error",
		"request_id", id,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Error:     message,
		RequestID: id,
	})
}
