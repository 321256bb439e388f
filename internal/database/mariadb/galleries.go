package mariadb

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LegacyGallery is a gallery row in the old photo gallery schema. Galleries
// map one-to-one onto trips during import.
type LegacyGallery struct {
	ID    int64
	Title string
	Place string
}

// LegacyPhoto is a photo row in the old schema. Timestamp and coordinates are
// nullable; old uploads often carry neither.
type LegacyPhoto struct {
	ID        int64
	GalleryID int64
	Caption   string
	TakenAt   *time.Time
	Latitude  *float64
	Longitude *float64
}

// ListGalleries returns all galleries in the legacy database.
func (p *Pool) ListGalleries(ctx context.Context) ([]LegacyGallery, error) {
	rows, err := p.db.QueryContext(ctx,
		"SELECT id, title, COALESCE(place, '') FROM galleries ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing galleries: %w", err)
	}
	defer rows.Close()

	var galleries []LegacyGallery
	for rows.Next() {
		var g LegacyGallery
		if err := rows.Scan(&g.ID, &g.Title, &g.Place); err != nil {
			return nil, fmt.Errorf("scanning gallery: %w", err)
		}
		galleries = append(galleries, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating galleries: %w", err)
	}
	return galleries, nil
}

// ListGalleryPhotos returns a gallery's photos in upload order.
func (p *Pool) ListGalleryPhotos(ctx context.Context, galleryID int64) ([]LegacyPhoto, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, gallery_id, COALESCE(caption, ''), taken_at, gps_lat, gps_lng
		FROM photos
		WHERE gallery_id = ?
		ORDER BY id`, galleryID)
	if err != nil {
		return nil, fmt.Errorf("listing gallery photos: %w", err)
	}
	defer rows.Close()

	var photos []LegacyPhoto
	for rows.Next() {
		var (
			photo   LegacyPhoto
			takenAt sql.NullTime
			lat     sql.NullFloat64
			lng     sql.NullFloat64
		)
		if err := rows.Scan(&photo.ID, &photo.GalleryID, &photo.Caption, &takenAt, &lat, &lng); err != nil {
			return nil, fmt.Errorf("scanning photo: %w", err)
		}
		if takenAt.Valid {
			t := takenAt.Time
			photo.TakenAt = &t
		}
		// Coordinates only count when both columns are set.
		if lat.Valid && lng.Valid {
			la, ln := lat.Float64, lng.Float64
			photo.Latitude = &la
			photo.Longitude = &ln
		}
		photos = append(photos, photo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating photos: %w", err)
	}
	return photos, nil
}

// CountPhotos returns the total photo count across all galleries.
func (p *Pool) CountPhotos(ctx context.Context) (int, error) {
	var count int
	if err := p.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM photos").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting photos: %w", err)
	}
	return count, nil
}
