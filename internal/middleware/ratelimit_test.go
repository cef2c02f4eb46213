package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestCheckRateLimit_AllowsUnderLimit(t *testing.T) {
	_, client := newTestRedis(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := CheckRateLimit(ctx, client, "login", "ip:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := CheckRateLimit(ctx, client, "login", "ip:1.2.3.4", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed, "fourth request must exceed a limit of 3")
}

func TestCheckRateLimit_SeparateKeys(t *testing.T) {
	_, client := newTestRedis(t)
	ctx := context.Background()

	allowed, err := CheckRateLimit(ctx, client, "login", "ip:1.2.3.4", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)

	// A different identity and a different resource each get their own budget
	allowed, err = CheckRateLimit(ctx, client, "login", "ip:5.6.7.8", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = CheckRateLimit(ctx, client, "register", "ip:1.2.3.4", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCheckRateLimit_WindowExpiry(t *testing.T) {
	mr, client := newTestRedis(t)
	ctx := context.Background()

	_, err := CheckRateLimit(ctx, client, "login", "ip:1.2.3.4", 1, time.Minute)
	require.NoError(t, err)

	allowed, err := CheckRateLimit(ctx, client, "login", "ip:1.2.3.4", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	mr.FastForward(2 * time.Minute)

	allowed, err = CheckRateLimit(ctx, client, "login", "ip:1.2.3.4", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed, "the counter must reset after the window expires")
}

func TestCheckRateLimit_FailOpenWithoutRedis(t *testing.T) {
	allowed, err := CheckRateLimit(context.Background(), nil, "login", "ip:1.2.3.4", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimitMiddleware(t *testing.T) {
	_, client := newTestRedis(t)

	app := fiber.New()
	app.Get("/limited", RateLimit(client, 2, time.Minute, "limited"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/limited", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/limited", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestRateLimitMiddleware_KeyedByUser(t *testing.T) {
	_, client := newTestRedis(t)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", c.Get("X-Test-User"))
		return c.Next()
	})
	app.Get("/limited", RateLimit(client, 1, time.Minute, "per_user"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	doReq := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.Header.Set("X-Test-User", user)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusOK, doReq("u1"))
	assert.Equal(t, http.StatusTooManyRequests, doReq("u1"))
	// A different user is unaffected by u1's exhausted budget
	assert.Equal(t, http.StatusOK, doReq("u2"))
}
