// Package segments owns the rich-text page sections, each bound to exactly
// one uploaded image.
package segments

import "time"

type Segment struct {
	ID         string    `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Content    string    `db:"content" json:"content"`
	StorageKey string    `db:"storage_key" json:"storage_key"`
	ImageURL   string    `db:"image_url" json:"image_url"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
