package util

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestSuccessResponseFlattensPayload(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return SuccessResponse(c, SuccessResponseFormat{
			Data: fiber.Map{"count": 3, "success": false},
		})
	})

	code, body := decode(t, app, "/")
	assert.Equal(t, 200, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(3), body["count"])
	assert.NotContains(t, body, "message")
}

func TestErrorResponseDefaultsTo500(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ErrorResponse(c, ErrorResponseFormat{Message: "Failed to process submission"}, errors.New("boom"))
	})

	code, body := decode(t, app, "/")
	assert.Equal(t, 500, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to process submission", body["error"])
	assert.Equal(t, "boom", body["dev_message"])
}

func TestErrorResponseBadRequest(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ErrorResponse(c, ErrorResponseFormat{Code: fiber.StatusBadRequest, Message: "User ID is required"})
	})

	code, body := decode(t, app, "/")
	assert.Equal(t, 400, code)
	assert.Equal(t, "User ID is required", body["error"])
	assert.NotContains(t, body, "dev_message")
}

func TestErrorResponseFormErrorDetails(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ErrorResponse(c, ErrorResponseFormat{Code: fiber.StatusBadRequest, Message: "Session ID must be a UUID"},
			NewFormError("Session ID must be a UUID", map[string]string{"sessionId": "Session ID must be a UUID"}))
	})

	code, body := decode(t, app, "/")
	assert.Equal(t, 400, code)
	assert.Equal(t, map[string]any{"sessionId": "Session ID must be a UUID"}, body["details"])
}
