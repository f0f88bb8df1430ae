package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request's ray id.
const HeaderName = "X-Ray-ID"

// LocalsKey is the Fiber locals key under which the ray id is stored.
const LocalsKey = "ray_id"

// New returns a middleware that assigns every request a unique ray id.
// An id supplied by the client in X-Ray-ID is kept, so upstream proxies
// can correlate their own traces with ours.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
