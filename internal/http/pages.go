package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/atelierlabs/atelier-backend/internal/gallery"
	"github.com/atelierlabs/atelier-backend/internal/segments"
)

// GalleryReader is the read-only slice of the image store the public page
// needs.
type GalleryReader interface {
	ListGallery(ctx context.Context) ([]gallery.Image, error)
	Banner(ctx context.Context) (*gallery.Image, error)
}

// SegmentReader lists segments for the public page.
type SegmentReader interface {
	List(ctx context.Context) ([]segments.Segment, error)
}

type PageHandler struct {
	Gallery  GalleryReader
	Segments SegmentReader
	Log      *zap.Logger
}

// Home renders the public page: banner on top, gallery in sort order,
// segments below. A missing banner is fine; the template handles nil.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	ctx := userContext(c)

	images, err := h.Gallery.ListGallery(ctx)
	if err != nil {
		h.Log.Error("list gallery", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error rendering page")
	}

	banner, err := h.Gallery.Banner(ctx)
	if err != nil && !errors.Is(err, gallery.ErrNotFound) {
		h.Log.Error("load banner", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error rendering page")
	}

	segs, err := h.Segments.List(ctx)
	if err != nil {
		h.Log.Error("list segments", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error rendering page")
	}

	return c.Render("index", fiber.Map{
		"Images":   images,
		"TopImage": banner,
		"Segments": segs,
	})
}

// Edit renders the admin landing page. RequireLogin guards the route.
func (h *PageHandler) Edit(c *fiber.Ctx) error {
	return c.Render("edit", fiber.Map{})
}

// Health is the liveness endpoint.
func (h *PageHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}
