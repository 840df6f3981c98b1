// Package http holds the handlers that do not belong to a single content
// domain: authentication flows and the rendered site pages.
package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/atelierlabs/atelier-backend/internal/auth"
	"github.com/atelierlabs/atelier-backend/internal/users"
)

// CredentialStore is what the auth handlers need from the user repository.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*users.User, error)
	Create(ctx context.Context, email, passwordHash string) (string, error)
}

type AuthHandler struct {
	Store  CredentialStore
	Secret []byte
	Log    *zap.Logger
}

// SignupForm renders the signup page.
func (h *AuthHandler) SignupForm(c *fiber.Ctx) error {
	return c.Render("signup", fiber.Map{})
}

// Signup creates a credential record unless the email is already taken.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password required")
	}

	ctx := userContext(c)

	_, err := h.Store.FindByEmail(ctx, email)
	if err == nil {
		return c.JSON(fiber.Map{"message": "User Already Exists"})
	}
	if !errors.Is(err, users.ErrNotFound) {
		h.Log.Error("lookup user", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}

	if _, err := h.Store.Create(ctx, email, string(hashed)); err != nil {
		h.Log.Error("create user", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "could not create user")
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{})
}

// Login checks the credentials and, on success, sets the signed token cookie
// and sends the admin to the edit page. Unknown emails and wrong passwords
// produce the same message.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.Store.FindByEmail(userContext(c), email)
	if err != nil {
		if !errors.Is(err, users.ErrNotFound) {
			h.Log.Error("lookup user", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "internal error")
		}
		return c.JSON(fiber.Map{"message": "Email or Password are Incorrect!"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return c.JSON(fiber.Map{"message": "Email or Password are Incorrect!"})
	}

	token, err := auth.GenerateToken(user.ID, h.Secret, auth.TokenTTL)
	if err != nil {
		h.Log.Error("sign token", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Expires:  time.Now().Add(auth.TokenTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect("/edit", fiber.StatusSeeOther)
}

// Signout clears the token cookie.
func (h *AuthHandler) Signout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/", fiber.StatusSeeOther)
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
