package middleware

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/grooveops/server/internal/config"
)

// bodyRecorder buffers the response body while forwarding it to the
// client, so a successful response can be stored after the handler runs.
type bodyRecorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	size   int
	limit  int
}

func (br *bodyRecorder) WriteHeader(code int) {
	br.status = code
	br.ResponseWriter.WriteHeader(code)
}

func (br *bodyRecorder) Write(b []byte) (int, error) {
	if br.size+len(b) <= br.limit {
		br.buf.Write(b)
	}
	br.size += len(b)
	return br.ResponseWriter.Write(b)
}

// cacheKey builds a stable Redis key from the request path and query
// string.
func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Request().URL.Path + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// ResponseCache returns an Echo middleware that serves successful GET
// responses from Redis for the configured TTL. Only 200 responses with a
// JSON body under the size limit are stored. When caching is disabled or
// no Redis client is available, the middleware is a pass-through; Redis
// errors fall back to the handler rather than failing the request.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			key := cacheKey(cfg.Prefix, c)
			if body, err := rdb.Get(c.Request().Context(), key).Bytes(); err == nil {
				return c.JSONBlob(http.StatusOK, body)
			}

			rec := &bodyRecorder{
				ResponseWriter: c.Response().Writer,
				status:         http.StatusOK,
				limit:          cfg.MaxBodyBytes,
			}
			c.Response().Writer = rec

			if err := next(c); err != nil {
				return err
			}

			// Store only complete, successful JSON bodies.
			if rec.status == http.StatusOK && rec.size <= cfg.MaxBodyBytes && rec.buf.Len() > 0 {
				_ = rdb.Set(c.Request().Context(), key, rec.buf.Bytes(), cfg.TTL).Err()
			}
			return nil
		}
	}
}
