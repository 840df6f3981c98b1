package gallery

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("image not found")

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

const imageColumns = `id, kind, title, name, sort_order, storage_key, image_url, created_at, updated_at`

// Unordered images come last; ties fall back to creation time so the
// relative order stays stable.
const listGalleryQuery = `
	SELECT ` + imageColumns + `
	FROM images
	WHERE kind = $1
	ORDER BY sort_order ASC NULLS LAST, created_at ASC
`

func scanImage(row pgx.Row) (*Image, error) {
	var img Image
	err := row.Scan(
		&img.ID,
		&img.Kind,
		&img.Title,
		&img.Name,
		&img.SortOrder,
		&img.StorageKey,
		&img.ImageURL,
		&img.CreatedAt,
		&img.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// ListGallery returns gallery images sorted ascending by sort order.
func (r *Repository) ListGallery(ctx context.Context) ([]Image, error) {
	rows, err := r.Pool.Query(ctx, listGalleryQuery, KindGallery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectImages(rows)
}

// ListAll returns every image, banner included, oldest first. Admin listing.
func (r *Repository) ListAll(ctx context.Context) ([]Image, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+imageColumns+`
		FROM images
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectImages(rows)
}

// Banner returns the banner record, or ErrNotFound when none was uploaded.
func (r *Repository) Banner(ctx context.Context) (*Image, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT `+imageColumns+`
		FROM images
		WHERE kind = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, KindBanner)
	return scanImage(row)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Image, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT `+imageColumns+`
		FROM images
		WHERE id = $1
	`, id)
	return scanImage(row)
}

func (r *Repository) Create(ctx context.Context, img *Image) (string, error) {
	var id string
	err := r.Pool.QueryRow(
		ctx,
		`INSERT INTO images (kind, title, name, sort_order, storage_key, image_url)
         VALUES ($1, $2, $3, $4, $5, $6)
         RETURNING id`,
		img.Kind, img.Title, img.Name, img.SortOrder, img.StorageKey, img.ImageURL,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Update overwrites the mutable fields with whatever it is given; merging
// with the stored record is the caller's job.
func (r *Repository) Update(ctx context.Context, img *Image) error {
	tag, err := r.Pool.Exec(
		ctx,
		`UPDATE images
         SET kind = $2, title = $3, name = $4, sort_order = $5,
             storage_key = $6, image_url = $7, updated_at = now()
         WHERE id = $1`,
		img.ID, img.Kind, img.Title, img.Name, img.SortOrder, img.StorageKey, img.ImageURL,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectImages(rows pgx.Rows) ([]Image, error) {
	out := make([]Image, 0)
	for rows.Next() {
		var img Image
		if err := rows.Scan(
			&img.ID,
			&img.Kind,
			&img.Title,
			&img.Name,
			&img.SortOrder,
			&img.StorageKey,
			&img.ImageURL,
			&img.CreatedAt,
			&img.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}
