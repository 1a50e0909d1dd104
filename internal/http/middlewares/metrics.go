package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"task-board.community/task-board/internal/metrics"
)

// Metrics records per-route request counts, error counts, and latency.
// c.Path() is the route pattern, so cardinality stays bounded.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			path := c.Path()
			metrics.RequestsTotal.WithLabelValues(c.Request().Method, path).Inc()
			metrics.RequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())

			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}
			if status >= 400 {
				metrics.ErrorsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
			}

			return err
		}
	}
}
