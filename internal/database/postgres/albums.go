package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jvokurka/tripbook/internal/database"
	"github.com/jvokurka/tripbook/internal/slug"
)

// AlbumRepository provides PostgreSQL-backed album storage
type AlbumRepository struct {
	pool *Pool
}

// NewAlbumRepository creates a new AlbumRepository
func NewAlbumRepository(pool *Pool) *AlbumRepository {
	return &AlbumRepository{pool: pool}
}

func newID() string {
	return uuid.New().String()
}

// CreateAlbumWithAssignments creates an album and its photo assignments in a
// single transaction. Positions follow the order of photoIDs. The unique
// constraint on album_photos.photo_id rejects photos already in an album, in
// which case the whole transaction rolls back.
func (r *AlbumRepository) CreateAlbumWithAssignments(ctx context.Context, tripID int64, name string, photoIDs []int64) (string, error) {
	tx, err := r.pool.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	id := newID()
	createdAt := time.Now()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO albums (id, trip_id, name, slug, created_at) VALUES ($1, $2, $3, $4, $5)`,
		id, tripID, name, slug.Make(name), createdAt); err != nil {
		return "", fmt.Errorf("create album: %w", err)
	}

	for i, photoID := range photoIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO album_photos (album_id, photo_id, position) VALUES ($1, $2, $3)`,
			id, photoID, i); err != nil {
			return "", fmt.Errorf("assign photo %d: %w", photoID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit create album: %w", err)
	}
	return id, nil
}

func (r *AlbumRepository) ListAlbums(ctx context.Context, tripID int64) ([]database.Album, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.trip_id, a.name, a.slug, a.created_at,
			(SELECT COUNT(*) FROM album_photos WHERE album_id = a.id) as photo_count
		 FROM albums a WHERE a.trip_id = $1 ORDER BY a.created_at DESC`, tripID)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	defer rows.Close()
	var albums []database.Album
	for rows.Next() {
		var a database.Album
		if err := rows.Scan(&a.ID, &a.TripID, &a.Name, &a.Slug, &a.CreatedAt, &a.PhotoCount); err != nil {
			return nil, fmt.Errorf("scan album: %w", err)
		}
		albums = append(albums, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate albums: %w", err)
	}
	return albums, nil
}

func (r *AlbumRepository) GetAlbum(ctx context.Context, id string) (*database.Album, error) {
	var a database.Album
	err := r.pool.QueryRow(ctx,
		`SELECT a.id, a.trip_id, a.name, a.slug, a.created_at,
			(SELECT COUNT(*) FROM album_photos WHERE album_id = a.id) as photo_count
		 FROM albums a WHERE a.id = $1`, id).
		Scan(&a.ID, &a.TripID, &a.Name, &a.Slug, &a.CreatedAt, &a.PhotoCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get album: %w", err)
	}
	return &a, nil
}

func (r *AlbumRepository) GetAlbumPhotos(ctx context.Context, albumID string) ([]database.Photo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.trip_id, p.caption, p.taken_at, p.latitude, p.longitude, p.created_at
		 FROM photos p
		 JOIN album_photos ap ON ap.photo_id = p.id
		 WHERE ap.album_id = $1
		 ORDER BY ap.position`, albumID)
	if err != nil {
		return nil, fmt.Errorf("get album photos: %w", err)
	}
	defer rows.Close()
	return scanPhotos(rows)
}

var _ database.AlbumStore = (*AlbumRepository)(nil)
