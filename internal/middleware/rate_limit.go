package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit creates a per-admin rate limiter middleware instance. It is used
// to cap how often the external-platform sync can be triggered.
func RateLimit(identifier string, max int, window time.Duration) fiber.Handler {
	if max <= 0 {
		max = 60
	}
	if window <= 0 {
		window = time.Hour
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			adminID := fmt.Sprintf("%v", c.Locals("admin_id"))
			if adminID == "" || adminID == "<nil>" {
				adminID = c.IP()
			}
			return fmt.Sprintf("%s:%s", identifier, adminID)
		},
	})
}
