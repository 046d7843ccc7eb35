package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const (
	ipContextKey        = "real_ip"
	userAgentContextKey = "user_agent"
)

// RequestInfo captures the caller's real IP (honoring proxy headers) and
// User-Agent for session records.
func RequestInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.Get("CF-Connecting-IP")
		if ip == "" {
			ip = c.Get("X-Forwarded-For")
		}
		if ip == "" {
			ip = c.IP()
		}

		c.Locals(ipContextKey, ip)
		c.Locals(userAgentContextKey, c.Get("User-Agent"))

		return c.Next()
	}
}

func GetIPAddress(c *fiber.Ctx) string {
	ip, _ := c.Locals(ipContextKey).(string)
	return ip
}

func GetUserAgent(c *fiber.Ctx) string {
	ua, _ := c.Locals(userAgentContextKey).(string)
	return ua
}
