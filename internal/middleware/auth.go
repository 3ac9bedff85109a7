package middleware

import (
	"Stocked/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

const sessionCookie = "cookie_session"

// RequireSession validates the identity provider's session cookie and puts
// the signed-in user's id and email into the request locals.
func RequireSession(validator services.SessionValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies(sessionCookie)
		if cookie == "" {
			return c.Status(http.StatusUnauthorized).JSON(map[string]interface{}{"error": "not signed in"})
		}
		session, err := validator.Validate(cookie)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(map[string]interface{}{"error": "invalid session"})
		}
		c.Locals("user_id", session.UserID)
		c.Locals("user_email", session.Email)
		return c.Next()
	}
}

// UserID returns the signed-in user's id set by RequireSession.
func UserID(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return ""
}

// UserEmail returns the signed-in user's email, possibly empty.
func UserEmail(c *fiber.Ctx) string {
	if email, ok := c.Locals("user_email").(string); ok {
		return email
	}
	return ""
}
