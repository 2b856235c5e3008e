package middleware

import (
	"snake-arena-api/services"

	"github.com/gofiber/fiber/v2"
)

// RequireSession rejects requests without a valid, unexpired session token
// and attaches the session to the context for handlers. The detail string
// is returned in the 401 body so each route keeps its own message.
func RequireSession(sessions *services.SessionStore, detail string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := services.SessionTokenFromCtx(c)
		session, ok := sessions.Get(token)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": detail})
		}
		c.Locals("session", session)
		return c.Next()
	}
}
