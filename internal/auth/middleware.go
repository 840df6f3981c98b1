package auth

import (
	"github.com/gofiber/fiber/v2"
)

// LocalsUserID is the Locals key the middleware stores the verified user id
// under.
const LocalsUserID = "user_id"

// RequireLogin verifies the token cookie and stashes the user id in Locals.
// Any failure redirects to /login instead of returning a 401: these routes
// are browser pages, not API endpoints.
func RequireLogin(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(CookieName)
		if token == "" {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		userID, err := ParseToken(token, secret)
		if err != nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		c.Locals(LocalsUserID, userID)
		return c.Next()
	}
}

// UserID pulls the verified user id out of Locals. Empty when the request
// did not pass RequireLogin.
func UserID(c *fiber.Ctx) string {
	if uid, ok := c.Locals(LocalsUserID).(string); ok {
		return uid
	}
	return ""
}
