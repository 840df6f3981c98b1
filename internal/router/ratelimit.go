package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/atelierlabs/atelier-backend/internal/auth"
)

// RateLimitAuth limits the login and signup POSTs to 10 per minute per IP.
func RateLimitAuth() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too_many_requests"})
		},
	})
}

// RateLimitWrite limits the mutating content routes to 60 per minute, keyed
// by the logged-in user when available, else by IP.
func RateLimitWrite() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          60,
		Expiration:   time.Minute,
		KeyGenerator: writeLimitKey,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too_many_requests"})
		},
	})
}

// writeLimitKey keys the bucket on the authenticated user so admins behind a
// shared IP don't throttle each other; unauthenticated requests fall back to IP.
func writeLimitKey(c *fiber.Ctx) string {
	if uid := auth.UserID(c); uid != "" {
		return uid
	}
	return c.IP()
}
