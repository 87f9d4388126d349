package middleware

import (
	"sync"
	"time"

	"eventsathi/config"
	"eventsathi/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

// RateLimitMiddleware throttles the credential endpoints per client IP so a
// password-guessing loop burns out quickly without affecting other clients.
type RateLimitMiddleware struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*clientLimiter
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	perMinute := 30
	burst := 10
	if cfg != nil && cfg.RateLimit != nil {
		if cfg.RateLimit.AuthPerMinute > 0 {
			perMinute = cfg.RateLimit.AuthPerMinute
		}
		if cfg.RateLimit.AuthBurst > 0 {
			burst = cfg.RateLimit.AuthBurst
		}
	}

	return &RateLimitMiddleware{
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
		limiters: make(map[string]*clientLimiter),
	}
}

// Handle rejects requests whose client has exhausted its budget.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.allow(c.RealIP()) {
			return response.TooManyRequests(c, "RATE_LIMITED", "Too many requests, slow down")
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) allow(clientIP string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()

	cl, ok := m.limiters[clientIP]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.limiters[clientIP] = cl
	}
	cl.lastSeen = now

	// Opportunistic cleanup keeps the map from growing without bound.
	if len(m.limiters) > 1024 {
		for ip, other := range m.limiters {
			if now.Sub(other.lastSeen) > limiterIdleTTL {
				delete(m.limiters, ip)
			}
		}
	}

	return cl.limiter.Allow()
}
