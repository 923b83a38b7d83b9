// Package rayid tags every request with a unique ray ID for log correlation.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the ray ID.
const HeaderName = "X-Ray-Id"

// New returns a middleware that assigns a UUID ray ID to each request,
// storing it in locals under "ray_id" and echoing it in the response header.
// An incoming X-Ray-Id header is honored so upstream proxies can trace
// through.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
