package tenant

import (
	"github.com/gofiber/fiber/v2"
)

// Header is the request header identifying the tenant. In production the
// gateway fills it in after authenticating the seller; the service treats
// it as authoritative.
const Header = "X-Tenant-ID"

const localsKey = "tenant_id"

// New returns a middleware that requires a tenant on every request and
// stores it in the request locals.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "missing " + Header + " header",
			})
		}

		c.Locals(localsKey, id)
		return c.Next()
	}
}

// FromCtx returns the tenant stored by the middleware, or "" if the
// middleware did not run.
func FromCtx(c *fiber.Ctx) string {
	if id, ok := c.Locals(localsKey).(string); ok {
		return id
	}
	return ""
}
