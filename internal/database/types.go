package database

import (
	"time"
)

// User is an account that owns trips.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Trip is a planned or past journey. Photos and albums hang off a trip.
type Trip struct {
	ID          int64
	UserID      int64
	Title       string
	Destination string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Photo is metadata for one trip photo. Image bytes live elsewhere; only the
// parsed timestamp and coordinates matter here. TakenAt and the coordinates
// are optional - the suggestion engine skips what is missing.
type Photo struct {
	ID        int64
	TripID    int64
	Caption   string
	TakenAt   *time.Time
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
}

// Album is a persisted, accepted suggestion. It owns an ordered list of
// photo assignments.
type Album struct {
	ID         string
	TripID     int64
	Name       string
	Slug       string
	PhotoCount int
	CreatedAt  time.Time
}

// AlbumPhoto assigns one photo to one album at a position. A photo belongs
// to at most one album; the position is the order the accepting caller gave.
type AlbumPhoto struct {
	AlbumID  string
	PhotoID  int64
	Position int
}
