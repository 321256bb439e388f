package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jvokurka/tripbook/internal/database"
	"github.com/lib/pq"
)

// PhotoRepository provides PostgreSQL-backed photo metadata storage
type PhotoRepository struct {
	pool *Pool
}

// NewPhotoRepository creates a new PhotoRepository
func NewPhotoRepository(pool *Pool) *PhotoRepository {
	return &PhotoRepository{pool: pool}
}

func (r *PhotoRepository) AddPhoto(ctx context.Context, photo *database.Photo) error {
	photo.CreatedAt = time.Now()
	err := r.pool.QueryRow(ctx,
		`INSERT INTO photos (trip_id, caption, taken_at, latitude, longitude, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		photo.TripID, photo.Caption, photo.TakenAt, photo.Latitude, photo.Longitude, photo.CreatedAt).
		Scan(&photo.ID)
	if err != nil {
		return fmt.Errorf("add photo: %w", err)
	}
	return nil
}

// ListUnsortedPhotos returns the trip's photos not yet assigned to any album,
// in insertion order.
func (r *PhotoRepository) ListUnsortedPhotos(ctx context.Context, tripID int64) ([]database.Photo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.trip_id, p.caption, p.taken_at, p.latitude, p.longitude, p.created_at
		 FROM photos p
		 WHERE p.trip_id = $1
		   AND NOT EXISTS (SELECT 1 FROM album_photos ap WHERE ap.photo_id = p.id)
		 ORDER BY p.id`, tripID)
	if err != nil {
		return nil, fmt.Errorf("list unsorted photos: %w", err)
	}
	defer rows.Close()
	return scanPhotos(rows)
}

// CountPhotosInTrip counts how many of the given photo ids exist on the trip.
// Duplicates in photoIDs collapse because the count runs over matching rows.
func (r *PhotoRepository) CountPhotosInTrip(ctx context.Context, photoIDs []int64, tripID int64) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM photos WHERE id = ANY($1) AND trip_id = $2`,
		pq.Array(photoIDs), tripID).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count photos in trip: %w", err)
	}
	return count, nil
}

func scanPhotos(rows *sql.Rows) ([]database.Photo, error) {
	var photos []database.Photo
	for rows.Next() {
		var p database.Photo
		if err := rows.Scan(&p.ID, &p.TripID, &p.Caption, &p.TakenAt, &p.Latitude, &p.Longitude, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate photos: %w", err)
	}
	return photos, nil
}

var _ database.PhotoStore = (*PhotoRepository)(nil)
