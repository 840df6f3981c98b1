// Package gallery owns the image records behind the public gallery and the
// page banner, and the admin routes that manage them.
package gallery

import (
	"strconv"
	"strings"
	"time"
)

// Image kinds. The banner is a distinguished record rendered at the top of
// the public page; gallery images make up the ordered grid below it.
const (
	KindBanner  = "banner"
	KindGallery = "gallery"
)

// legacy content marks the banner by this exact title
const legacyBannerTitle = "top-image"

type Image struct {
	ID         string    `db:"id" json:"id"`
	Kind       string    `db:"kind" json:"kind"`
	Title      string    `db:"title" json:"title"`
	Name       string    `db:"name" json:"name"`
	SortOrder  *int32    `db:"sort_order" json:"sort_order,omitempty"`
	StorageKey string    `db:"storage_key" json:"storage_key"`
	ImageURL   string    `db:"image_url" json:"image_url"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// SortOrderFromForm parses the raw order form value. Absent or non-numeric
// values map to nil, which lists after every ordered image.
func SortOrderFromForm(raw string) *int32 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil
	}
	v := int32(n)
	return &v
}

// KindFromTitle classifies a new record. An explicit kind wins; otherwise
// the legacy banner title still maps to the banner kind so existing content
// keeps working.
func KindFromTitle(kind, title string) string {
	switch strings.TrimSpace(kind) {
	case KindBanner:
		return KindBanner
	case KindGallery:
		return KindGallery
	}
	if title == legacyBannerTitle {
		return KindBanner
	}
	return KindGallery
}
