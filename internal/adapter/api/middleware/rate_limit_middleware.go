package middleware

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"

	"localmarket/internal/infrastructure/ratelimit"
	"localmarket/pkg/errors"
	"localmarket/pkg/logger"
	"localmarket/pkg/response"
)

// RateLimit throttles an action per signed-in user, falling back to the client IP.
func RateLimit(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			if session, ok := SessionFrom(c); ok {
				key = session.UserID
			}

			allowed, wait := limiter.Allow(key, action)
			if !allowed {
				retryAfter := int(math.Ceil(wait.Seconds()))
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				logger.Warn().Str("key", key).Str("action", action).Int("retry_after", retryAfter).Msg("rate limit exceeded")
				return response.Error(c, errors.TooManyRequests("Too many requests, try again later"))
			}

			return next(c)
		}
	}
}
