// Package router wires handlers onto the Fiber app and carries the
// cross-cutting middleware (CORS, rate limiting, method override).
package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atelierlabs/atelier-backend/internal/gallery"
	handlers "github.com/atelierlabs/atelier-backend/internal/http"
	"github.com/atelierlabs/atelier-backend/internal/segments"
)

type Router struct {
	AuthHandler    *handlers.AuthHandler
	PageHandler    *handlers.PageHandler
	GalleryHandler *gallery.Handler
	SegmentHandler *segments.Handler
	AuthMW         fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	app.Get("/health", r.PageHandler.Health)
	app.Get("/", r.PageHandler.Home)

	app.Get("/signup/", r.AuthHandler.SignupForm)
	app.Post("/signup/", RateLimitAuth(), r.AuthHandler.Signup)
	app.Get("/login/", r.AuthHandler.LoginForm)
	app.Post("/login/", RateLimitAuth(), r.AuthHandler.Login)
	app.Get("/signout", r.AuthHandler.Signout)

	app.Get("/edit", r.AuthMW, r.PageHandler.Edit)

	app.Get("/segments", r.SegmentHandler.List)
	app.Post("/segments/", r.AuthMW, RateLimitWrite(), r.SegmentHandler.Create)
	app.Get("/segments/edit/:id", r.AuthMW, r.SegmentHandler.EditForm)
	app.Put("/segments/edit/:id", r.AuthMW, RateLimitWrite(), r.SegmentHandler.Update)
	app.Delete("/segments/:id", r.AuthMW, RateLimitWrite(), r.SegmentHandler.Delete)

	app.Get("/images/", r.AuthMW, r.GalleryHandler.List)
	app.Post("/images/", r.AuthMW, RateLimitWrite(), r.GalleryHandler.Create)
	app.Get("/images/:id/edit", r.AuthMW, r.GalleryHandler.EditForm)
	app.Post("/images/:id/edit", r.AuthMW, RateLimitWrite(), r.GalleryHandler.Update)
	app.Delete("/images/delete/:id", r.AuthMW, RateLimitWrite(), r.GalleryHandler.Delete)
}
