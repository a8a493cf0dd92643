package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var lines []map[string]interface{}
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

func TestStructuredLogger(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		incomingID    string
		expectedLevel string
		expectedMsg   string
		reuseID       bool
	}{
		{
			name:          "Success logs at info and assigns id",
			status:        fiber.StatusOK,
			expectedLevel: "INFO",
			expectedMsg:   "request completed",
		},
		{
			name:          "Client error logs at warn",
			status:        fiber.StatusUnprocessableEntity,
			expectedLevel: "WARN",
			expectedMsg:   "client error",
		},
		{
			name:          "Server error logs at error",
			status:        fiber.StatusInternalServerError,
			expectedLevel: "ERROR",
			expectedMsg:   "server error",
		},
		{
			name:          "Valid incoming id is reused",
			status:        fiber.StatusOK,
			incomingID:    "6f1c2f8e-6c4b-4f53-9d4e-2b7f0a1e9c11",
			expectedLevel: "INFO",
			expectedMsg:   "request completed",
			reuseID:       true,
		},
		{
			name:          "Garbage incoming id is replaced",
			status:        fiber.StatusOK,
			incomingID:    "not-a-uuid",
			expectedLevel: "INFO",
			expectedMsg:   "request completed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			app := fiber.New()
			app.Use(StructuredLogger(newTestLogger(&buf)))

			var seenID string
			app.Get("/", func(c *fiber.Ctx) error {
				seenID = GetRequestID(c)
				return c.SendStatus(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incomingID != "" {
				req.Header.Set(RequestIDHeader, tt.incomingID)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)

			assert.Equal(t, tt.status, resp.StatusCode)

			headerID := resp.Header.Get(RequestIDHeader)
			assert.Equal(t, seenID, headerID)
			_, parseErr := uuid.Parse(headerID)
			assert.NoError(t, parseErr)
			if tt.reuseID {
				assert.Equal(t, tt.incomingID, headerID)
			} else {
				assert.NotEqual(t, tt.incomingID, headerID)
			}

			lines := decodeLogLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.expectedLevel, lines[0]["level"])
			assert.Equal(t, tt.expectedMsg, lines[0]["msg"])
			assert.Equal(t, headerID, lines[0]["request_id"])
			assert.Equal(t, "GET", lines[0]["method"])
			assert.Equal(t, float64(tt.status), lines[0]["status"])
		})
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)

	var body bytes.Buffer
	_, err = body.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body.String())
}

func TestSecurity(t *testing.T) {
	app := fiber.New()
	app.Use(Security())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", resp.Header.Get("Referrer-Policy"))
	assert.Contains(t, resp.Header.Get("Content-Security-Policy"), "default-src 'none'")
}
