package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/grooveops/server/internal/config"
)

// RateLimit returns an Echo middleware enforcing a fixed-window request
// limit per client IP, backed by Redis so the limit holds across
// replicas. The counter key is the client IP plus the current window
// number; the first hit in a window creates the key with the window TTL.
// When limiting is disabled or no Redis client is available the
// middleware is a pass-through, and Redis failures let the request
// through rather than blocking traffic on the limiter.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	window := int64(cfg.Window.Seconds()) // window length in seconds
	if window < 1 {
		window = 1
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			bucket := time.Now().Unix() / window
			key := fmt.Sprintf("%s:%s:%d", cfg.Prefix, c.RealIP(), bucket)

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}
			remaining := int64(cfg.Limit) - n
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			if n > int64(cfg.Limit) {
				c.Response().Header().Set("Retry-After", strconv.FormatInt(window, 10))
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
