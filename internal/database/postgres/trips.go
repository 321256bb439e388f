package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jvokurka/tripbook/internal/database"
)

// TripRepository provides PostgreSQL-backed trip storage
type TripRepository struct {
	pool *Pool
}

// NewTripRepository creates a new TripRepository
func NewTripRepository(pool *Pool) *TripRepository {
	return &TripRepository{pool: pool}
}

func (r *TripRepository) CreateTrip(ctx context.Context, trip *database.Trip) error {
	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	err := r.pool.QueryRow(ctx,
		`INSERT INTO trips (user_id, title, destination, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		trip.UserID, trip.Title, trip.Destination, trip.CreatedAt, trip.UpdatedAt).
		Scan(&trip.ID)
	if err != nil {
		return fmt.Errorf("create trip: %w", err)
	}
	return nil
}

func (r *TripRepository) GetTrip(ctx context.Context, id int64) (*database.Trip, error) {
	var t database.Trip
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, title, destination, created_at, updated_at FROM trips WHERE id = $1`, id).
		Scan(&t.ID, &t.UserID, &t.Title, &t.Destination, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}
	return &t, nil
}

func (r *TripRepository) ListTrips(ctx context.Context, userID int64) ([]database.Trip, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, title, destination, created_at, updated_at
		 FROM trips WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()
	var trips []database.Trip
	for rows.Next() {
		var t database.Trip
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Destination, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trips: %w", err)
	}
	return trips, nil
}

func (r *TripRepository) VerifyTripOwnership(ctx context.Context, userID, tripID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM trips WHERE id = $1 AND user_id = $2)`, tripID, userID).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("verify trip ownership: %w", err)
	}
	return exists, nil
}

var _ database.TripStore = (*TripRepository)(nil)
