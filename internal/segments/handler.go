package segments

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atelierlabs/atelier-backend/internal/storage"
)

// Store is what the handler needs from the segment repository.
type Store interface {
	List(ctx context.Context) ([]Segment, error)
	GetByID(ctx context.Context, id string) (*Segment, error)
	Create(ctx context.Context, seg *Segment) (string, error)
	Update(ctx context.Context, seg *Segment) error
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

// List renders the segment overview page.
func (h *Handler) List(c *fiber.Ctx) error {
	items, err := h.Store.List(userContext(c))
	if err != nil {
		h.Log.Error("list segments", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error retrieving segments")
	}
	return c.Render("segments", fiber.Map{"Segments": items})
}

// Create handles the multipart creation form. The image file is mandatory;
// the check runs before anything touches the network.
func (h *Handler) Create(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Please upload an image file."})
	}

	title := c.FormValue("title")
	content := c.FormValue("content")
	if title == "" || content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Title and content are required."})
	}

	src, err := file.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not read uploaded file")
	}
	defer src.Close()

	ctx := userContext(c)
	key := storage.ObjectKey("segments", file.Filename)
	url, err := h.Uploads.Upload(ctx, key, file.Header.Get("Content-Type"), src)
	if err != nil {
		h.Log.Error("upload segment blob", zap.String("key", key), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error uploading segment")
	}

	seg := &Segment{
		Title:      title,
		Content:    content,
		StorageKey: key,
		ImageURL:   url,
	}

	if _, err := h.Store.Create(ctx, seg); err != nil {
		if derr := h.Uploads.Delete(ctx, key); derr != nil {
			h.Log.Error("compensating blob delete", zap.String("key", key), zap.Error(derr))
		}
		h.Log.Error("insert segment", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error uploading segment")
	}

	return c.Redirect("/segments", fiber.StatusSeeOther)
}

// EditForm renders the edit page for one segment.
func (h *Handler) EditForm(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		// malformed ids never reach the store
		return fiber.NewError(fiber.StatusInternalServerError, "Error retrieving segment")
	}

	seg, err := h.Store.GetByID(userContext(c), id)
	if err != nil {
		h.Log.Error("get segment", zap.String("id", id), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error retrieving segment")
	}
	return c.Render("edit_segment", fiber.Map{"Segment": seg})
}

// Update overwrites title and content and, only when a replacement file was
// attached, the image. Without a file the stored image URL stays exactly as
// it was.
func (h *Handler) Update(c *fiber.Ctx) error {
	ctx := userContext(c)
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error updating segment")
	}

	seg, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("get segment", zap.String("id", id), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error updating segment")
	}

	seg.Title = c.FormValue("title")
	seg.Content = c.FormValue("content")

	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not read uploaded file")
		}
		defer src.Close()

		key := storage.ObjectKey("segments", file.Filename)
		url, err := h.Uploads.Upload(ctx, key, file.Header.Get("Content-Type"), src)
		if err != nil {
			h.Log.Error("upload segment blob", zap.String("key", key), zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "Error updating segment")
		}
		seg.StorageKey = key
		seg.ImageURL = url
	}

	if err := h.Store.Update(ctx, seg); err != nil {
		h.Log.Error("update segment", zap.String("id", seg.ID), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error updating segment")
	}

	return c.Redirect("/segments", fiber.StatusSeeOther)
}

// Delete removes the record and then its blob; an unknown id just redirects.
func (h *Handler) Delete(c *fiber.Ctx) error {
	ctx := userContext(c)
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		// behaves like an unknown id: bounce back to the listing
		return c.Redirect("/segments", fiber.StatusSeeOther)
	}

	seg, err := h.Store.GetByID(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		h.Log.Error("get segment", zap.String("id", id), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error deleting segment")
	}

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Redirect("/segments", fiber.StatusSeeOther)
		}
		h.Log.Error("delete segment", zap.String("id", id), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error deleting segment")
	}

	if seg != nil && seg.StorageKey != "" {
		if err := h.Uploads.Delete(ctx, seg.StorageKey); err != nil {
			h.Log.Error("delete segment blob", zap.String("key", seg.StorageKey), zap.Error(err))
		}
	}

	return c.Redirect("/segments", fiber.StatusSeeOther)
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
