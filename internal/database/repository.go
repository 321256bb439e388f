package database

import (
	"context"
)

// UserStore provides account persistence.
type UserStore interface {
	// CreateUser stores a new user and fills in its ID.
	CreateUser(ctx context.Context, user *User) error
	// GetUser retrieves a user by id, returns nil if not found.
	GetUser(ctx context.Context, id int64) (*User, error)
	// GetUserByEmail retrieves a user by email, returns nil if not found.
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

// TripStore provides trip persistence.
type TripStore interface {
	// CreateTrip stores a new trip and fills in its ID.
	CreateTrip(ctx context.Context, trip *Trip) error
	// GetTrip retrieves a trip by id, returns nil if not found.
	GetTrip(ctx context.Context, id int64) (*Trip, error)
	// ListTrips returns all trips owned by the user, newest first.
	ListTrips(ctx context.Context, userID int64) ([]Trip, error)
	// VerifyTripOwnership reports whether the trip exists and belongs to
	// the user.
	VerifyTripOwnership(ctx context.Context, userID, tripID int64) (bool, error)
}

// PhotoStore provides photo metadata persistence.
type PhotoStore interface {
	// AddPhoto stores photo metadata on a trip and fills in its ID.
	AddPhoto(ctx context.Context, photo *Photo) error
	// ListUnsortedPhotos returns the trip's photos not assigned to any
	// album, in insertion order.
	ListUnsortedPhotos(ctx context.Context, tripID int64) ([]Photo, error)
	// CountPhotosInTrip counts how many of the given photo ids exist on the
	// trip. Duplicate ids collapse in the count.
	CountPhotosInTrip(ctx context.Context, photoIDs []int64, tripID int64) (int, error)
}

// AlbumStore provides album persistence.
type AlbumStore interface {
	// CreateAlbumWithAssignments atomically creates an album and one
	// position-ordered assignment per photo id (position = slice index).
	// Returns the new album id. Either everything is written or nothing is.
	CreateAlbumWithAssignments(ctx context.Context, tripID int64, name string, photoIDs []int64) (string, error)
	// ListAlbums returns a trip's albums with photo counts, newest first.
	ListAlbums(ctx context.Context, tripID int64) ([]Album, error)
	// GetAlbum retrieves an album by id, returns nil if not found.
	GetAlbum(ctx context.Context, id string) (*Album, error)
	// GetAlbumPhotos returns the album's photos in position order.
	GetAlbumPhotos(ctx context.Context, albumID string) ([]Photo, error)
}
