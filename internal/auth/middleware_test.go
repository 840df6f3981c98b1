package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(secret []byte) *fiber.App {
	app := fiber.New()
	app.Get("/edit", RequireLogin(secret), func(c *fiber.Ctx) error {
		return c.SendString("uid=" + UserID(c))
	})
	return app
}

func TestRequireLogin_NoCookie(t *testing.T) {
	app := newProtectedApp([]byte("s"))

	resp, err := app.Test(httptest.NewRequest("GET", "/edit", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestRequireLogin_BadToken(t *testing.T) {
	app := newProtectedApp([]byte("s"))

	req := httptest.NewRequest("GET", "/edit", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestRequireLogin_ValidToken(t *testing.T) {
	secret := []byte("s")
	app := newProtectedApp(secret)

	tok, err := GenerateToken("admin-1", secret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/edit", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: tok})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "uid=admin-1", string(body))
}
