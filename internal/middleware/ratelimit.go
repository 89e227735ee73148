package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/Harshhjs/farmconnect/internal/config"
)

// RateLimit returns a fixed-window limiter keyed by client IP and route,
// backed by Redis INCR/EXPIRE. It protects the public auth endpoints from
// credential stuffing. When the limiter is disabled or no Redis client is
// available it degrades to a pass-through, and a Redis failure mid-request
// lets the request proceed rather than taking the API down with the cache.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Bucket by nanoseconds so sub-second windows divide cleanly.
			window := time.Now().UnixNano() / int64(cfg.Window)
			key := fmt.Sprintf("%s:%s:%s:%d", cfg.Prefix, c.RealIP(), c.Path(), window)

			ctx := c.Request().Context()
			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				rdb.Expire(ctx, key, cfg.Window)
			}
			if n > int64(cfg.Limit) {
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "Too many requests, slow down"})
			}
			return next(c)
		}
	}
}
