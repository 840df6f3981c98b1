package segments

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("segment not found")

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

// List returns all segments in insertion order.
func (r *Repository) List(ctx context.Context) ([]Segment, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, title, content, storage_key, image_url, created_at, updated_at
		FROM segments
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Segment, 0)
	for rows.Next() {
		var s Segment
		if err := rows.Scan(
			&s.ID,
			&s.Title,
			&s.Content,
			&s.StorageKey,
			&s.ImageURL,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Segment, error) {
	var s Segment
	err := r.Pool.QueryRow(ctx, `
		SELECT id, title, content, storage_key, image_url, created_at, updated_at
		FROM segments
		WHERE id = $1
	`, id).Scan(&s.ID, &s.Title, &s.Content, &s.StorageKey, &s.ImageURL, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(ctx context.Context, seg *Segment) (string, error) {
	var id string
	err := r.Pool.QueryRow(
		ctx,
		`INSERT INTO segments (title, content, storage_key, image_url)
         VALUES ($1, $2, $3, $4)
         RETURNING id`,
		seg.Title, seg.Content, seg.StorageKey, seg.ImageURL,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Update overwrites the mutable fields; the handler decides what to keep.
func (r *Repository) Update(ctx context.Context, seg *Segment) error {
	tag, err := r.Pool.Exec(
		ctx,
		`UPDATE segments
         SET title = $2, content = $3, storage_key = $4, image_url = $5, updated_at = now()
         WHERE id = $1`,
		seg.ID, seg.Title, seg.Content, seg.StorageKey, seg.ImageURL,
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
	tag, err := r.Pool.Exec(ctx, `DELETE FROM segments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
