package gallery

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atelierlabs/atelier-backend/internal/storage"
)

// Store is what the handler needs from the image repository.
type Store interface {
	ListGallery(ctx context.Context) ([]Image, error)
	ListAll(ctx context.Context) ([]Image, error)
	Banner(ctx context.Context) (*Image, error)
	GetByID(ctx context.Context, id string) (*Image, error)
	Create(ctx context.Context, img *Image) (string, error)
	Update(ctx context.Context, img *Image) error
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	Store   Store
	Uploads storage.Uploader
	Log     *zap.Logger
}

func NewHandler(store Store, uploads storage.Uploader, log *zap.Logger) *Handler {
	return &Handler{Store: store, Uploads: uploads, Log: log}
}

// List renders the admin image listing, banner included.
func (h *Handler) List(c *fiber.Ctx) error {
	images, err := h.Store.ListAll(userContext(c))
	if err != nil {
		h.Log.Error("list images", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error retrieving images")
	}
	return c.Render("images", fiber.Map{"Images": images})
}

// Create handles the multipart upload form: store the blob, then the record.
func (h *Handler) Create(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Please upload an image file."})
	}

	title := c.FormValue("title")
	name := c.FormValue("name")
	if title == "" || name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Title and name are required."})
	}

	src, err := file.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not read uploaded file")
	}
	defer src.Close()

	ctx := userContext(c)
	key := storage.ObjectKey("images", file.Filename)
	url, err := h.Uploads.Upload(ctx, key, file.Header.Get("Content-Type"), src)
	if err != nil {
		h.Log.Error("upload image blob", zap.String("key", key), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error uploading image")
	}

	img := &Image{
		Kind:       KindFromTitle(c.FormValue("kind"), title),
		Title:      title,
		Name:       name,
		SortOrder:  SortOrderFromForm(c.FormValue("order")),
		StorageKey: key,
		ImageURL:   url,
	}

	if _, err := h.Store.Create(ctx, img); err != nil {
		// record write failed after the blob landed; clean the blob up so it
		// does not leak
		if derr := h.Uploads.Delete(ctx, key); derr != nil {
			h.Log.Error("compensating blob delete", zap.String("key", key), zap.Error(derr))
		}
		h.Log.Error("insert image", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error uploading image")
	}

	return c.Redirect("/images", fiber.StatusSeeOther)
}

// EditForm renders the edit page for one image.
func (h *Handler) EditForm(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		// malformed ids never reach the store
		return fiber.NewError(fiber.StatusInternalServerError, "Error retrieving image")
	}

	img, err := h.Store.GetByID(userContext(c), id)
	if err != nil {
		h.Log.Error("get image", zap.String("id", id), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error retrieving image")
	}
	return c.Render("edit_image", fiber.Map{"Image": img})
}

// Update merges the submitted fields over the stored record. Fields left
// blank on the form keep their stored value; the image itself never changes
// here (a replacement upload goes through Create).
func (h *Handler) Update(c *fiber.Ctx) error {
	ctx := userContext(c)
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error updating image")
	}

	img, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("get image", zap.String("id", id), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error updating image")
	}

	if title := c.FormValue("title"); title != "" {
		img.Title = title
	}
	if name := c.FormValue("name"); name != "" {
		img.Name = name
	}
	if raw := c.FormValue("order"); raw != "" {
		img.SortOrder = SortOrderFromForm(raw)
	}
	// only reclassify on an explicit kind or the legacy banner title;
	// otherwise the stored kind stays
	if kind := c.FormValue("kind"); kind != "" || img.Title == legacyBannerTitle {
		img.Kind = KindFromTitle(kind, img.Title)
	}

	if err := h.Store.Update(ctx, img); err != nil {
		h.Log.Error("update image", zap.String("id", img.ID), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error updating image")
	}

	return c.Redirect("/images", fiber.StatusSeeOther)
}

// Delete removes the record and then its blob. A missing id is not an
// error worth surfacing; the redirect happens either way.
func (h *Handler) Delete(c *fiber.Ctx) error {
	ctx := userContext(c)
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		// behaves like an unknown id: bounce back to the listing
		return c.Redirect("/images", fiber.StatusSeeOther)
	}

	img, err := h.Store.GetByID(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		h.Log.Error("get image", zap.String("id", id), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error deleting image")
	}

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Redirect("/images", fiber.StatusSeeOther)
		}
		h.Log.Error("delete image", zap.String("id", id), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error deleting image")
	}

	if img != nil && img.StorageKey != "" {
		if err := h.Uploads.Delete(ctx, img.StorageKey); err != nil {
			h.Log.Error("delete image blob", zap.String("key", img.StorageKey), zap.Error(err))
		}
	}

	return c.Redirect("/images", fiber.StatusSeeOther)
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
