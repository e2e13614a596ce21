package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/fadilmartias/bizsim/internal/metrics"
	"github.com/gofiber/fiber/v2"
)

// Metrics records request count and latency per route pattern.
func Metrics() fiber.Handler {
	m := metrics.Get()
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		endpoint := c.Route().Path
		if endpoint == "" || (endpoint == "/" && c.Path() != "/") {
			endpoint = "unmatched"
		}
		m.RecordHTTP(c.Method(), endpoint, strconv.Itoa(status), time.Since(start).Seconds())
		return err
	}
}
