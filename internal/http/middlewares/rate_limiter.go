package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"project-manager.com/project-manager/internal/ratelimit"
)

func RateLimiter(limiter ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				if errors.Is(err, ratelimit.ErrLimitExceeded) {
					return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "rate limiter unavailable")
			}

			return next(c)
		}
	}
}
