// Package rayid tags every request with a unique id.
package rayid

import (
	"demo-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the request/response header carrying the ray id.
const HeaderName = "X-Ray-ID"

// New returns a middleware that stores a ray id in the request locals and
// echoes it in the response headers. A well-formed id sent by the client is
// kept so that calls can be correlated across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}

		c.Locals(logger.RayIDKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}

// FromCtx returns the ray id of the current request, or "" if none was set.
func FromCtx(c *fiber.Ctx) string {
	rid, _ := c.Locals(logger.RayIDKey).(string)
	return rid
}
