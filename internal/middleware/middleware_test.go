package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fadilmartias/bizsim/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Use(RateLimiter(2, time.Minute))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	for range 2 {
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Too many requests", body["error"])
}

func TestMetricsRecordsRoutePattern(t *testing.T) {
	app := fiber.New()
	app.Use(Metrics())
	app.Get("/items/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "teapot") })

	counter := metrics.Get().HTTPRequestsTotal
	before := testutil.ToFloat64(counter.WithLabelValues("GET", "/items/:id", "204"))

	_, err := app.Test(httptest.NewRequest("GET", "/items/42", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/items/43", nil))
	require.NoError(t, err)
	assert.Equal(t, before+2, testutil.ToFloat64(counter.WithLabelValues("GET", "/items/:id", "204")))

	teapots := testutil.ToFloat64(counter.WithLabelValues("GET", "/boom", "418"))
	_, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, teapots+1, testutil.ToFloat64(counter.WithLabelValues("GET", "/boom", "418")))
}
