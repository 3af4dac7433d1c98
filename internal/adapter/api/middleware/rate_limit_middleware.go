package middleware

import (
	"github.com/labstack/echo/v4"

	"starmarket/internal/infrastructure/ratelimit"
	"starmarket/pkg/errors"
	"starmarket/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
}

func NewRateLimitMiddleware(limiter *ratelimit.Limiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit throttles per client address. Wired onto the auth endpoints.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.limiter.Allow(c.RealIP()) {
			return response.Error(c, errors.TooManyRequests("Too many attempts, slow down"))
		}
		return next(c)
	}
}
