package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventsathi/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitedContext(remoteAddr string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/signin", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRateLimitMiddleware_AllowsWithinBudget(t *testing.T) {
	m := NewRateLimitMiddleware(&config.Config{
		RateLimit: &config.RateLimitConfig{AuthPerMinute: 60, AuthBurst: 3},
	})

	for i := 0; i < 3; i++ {
		c, rec := rateLimitedContext("10.0.0.1:1234")
		err := m.Handle(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}
}

func TestRateLimitMiddleware_RejectsPastBurst(t *testing.T) {
	m := NewRateLimitMiddleware(&config.Config{
		RateLimit: &config.RateLimitConfig{AuthPerMinute: 1, AuthBurst: 2},
	})

	for i := 0; i < 2; i++ {
		c, _ := rateLimitedContext("10.0.0.1:1234")
		require.NoError(t, m.Handle(okHandler)(c))
	}

	c, rec := rateLimitedContext("10.0.0.1:1234")
	err := m.Handle(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "RATE_LIMITED")
}

func TestRateLimitMiddleware_BudgetIsPerClient(t *testing.T) {
	m := NewRateLimitMiddleware(&config.Config{
		RateLimit: &config.RateLimitConfig{AuthPerMinute: 1, AuthBurst: 1},
	})

	c, rec := rateLimitedContext("10.0.0.1:1234")
	require.NoError(t, m.Handle(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// The first client is out of budget, a second client is not.
	c, rec = rateLimitedContext("10.0.0.1:1234")
	require.NoError(t, m.Handle(okHandler)(c))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	c, rec = rateLimitedContext("10.0.0.2:1234")
	require.NoError(t, m.Handle(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
