package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimiter allows limit requests per window per client IP.
func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	perRequest := rate.Every(window / time.Duration(limit))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()

			mu.Lock()
			limiter, ok := limiters[key]
			if !ok {
				limiter = rate.NewLimiter(perRequest, limit)
				limiters[key] = limiter
			}
			mu.Unlock()

			if !limiter.Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
