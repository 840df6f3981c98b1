package router

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOverrideApp() *fiber.App {
	app := fiber.New()
	app.Use(MethodOverride())
	app.Post("/things/:id", func(c *fiber.Ctx) error { return c.SendString("posted") })
	app.Put("/things/:id", func(c *fiber.Ctx) error { return c.SendString("put") })
	app.Delete("/things/:id", func(c *fiber.Ctx) error { return c.SendString("deleted") })
	return app
}

func TestMethodOverride(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		want   string
	}{
		{name: "query delete", target: "/things/1?_method=DELETE", want: "deleted"},
		{name: "query put", target: "/things/1?_method=PUT", want: "put"},
		{name: "form delete", target: "/things/1", body: "_method=DELETE", want: "deleted"},
		{name: "no override", target: "/things/1", want: "posted"},
		{name: "unsupported method ignored", target: "/things/1?_method=TRACE", want: "posted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newOverrideApp()
			req := httptest.NewRequest("POST", tt.target, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			buf := make([]byte, 32)
			n, _ := resp.Body.Read(buf)
			assert.Equal(t, tt.want, string(buf[:n]))
		})
	}
}

func TestMethodOverride_GetUntouched(t *testing.T) {
	app := fiber.New()
	app.Use(MethodOverride())
	app.Get("/things", func(c *fiber.Ctx) error { return c.SendString("listed") })

	resp, err := app.Test(httptest.NewRequest("GET", "/things?_method=DELETE", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
