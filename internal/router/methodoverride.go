package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// MethodOverride lets HTML forms reach the PUT and DELETE routes: a POST
// carrying `_method` in the query string or form body is rewritten before
// routing. Non-POST requests pass through untouched.
func MethodOverride() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodPost {
			return c.Next()
		}

		m := c.Query("_method")
		if m == "" {
			m = c.FormValue("_method")
		}

		switch strings.ToUpper(m) {
		case fiber.MethodPut, fiber.MethodDelete:
			c.Method(strings.ToUpper(m))
		}

		return c.Next()
	}
}
