package handlers

import (
	"context"

	"github.com/jvokurka/tripbook/internal/database"
	"github.com/jvokurka/tripbook/internal/suggest"
	"github.com/rs/zerolog"
)

// engineSource exposes trip and photo storage to the suggestion engine.
type engineSource struct {
	trips  database.TripStore
	photos database.PhotoStore
}

func (s engineSource) VerifyTripOwnership(ctx context.Context, userID, tripID int64) (bool, error) {
	return s.trips.VerifyTripOwnership(ctx, userID, tripID)
}

func (s engineSource) ListUnsortedPhotos(ctx context.Context, tripID int64) ([]suggest.Photo, error) {
	photos, err := s.photos.ListUnsortedPhotos(ctx, tripID)
	if err != nil {
		return nil, err
	}
	out := make([]suggest.Photo, 0, len(photos))
	for _, p := range photos {
		out = append(out, suggest.Photo{
			ID:        p.ID,
			TakenAt:   p.TakenAt,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
		})
	}
	return out, nil
}

// engineStore exposes album storage to the suggestion engine.
type engineStore struct {
	photos database.PhotoStore
	albums database.AlbumStore
}

func (s engineStore) CountPhotosInTrip(ctx context.Context, photoIDs []int64, tripID int64) (int, error) {
	return s.photos.CountPhotosInTrip(ctx, photoIDs, tripID)
}

func (s engineStore) CreateAlbumWithAssignments(ctx context.Context, tripID int64, name string, photoIDs []int64) (string, error) {
	return s.albums.CreateAlbumWithAssignments(ctx, tripID, name, photoIDs)
}

// NewSuggestionEngine wires database repositories into a suggestion engine.
func NewSuggestionEngine(trips database.TripStore, photos database.PhotoStore, albums database.AlbumStore, log zerolog.Logger) *suggest.Engine {
	return suggest.NewEngine(
		engineSource{trips: trips, photos: photos},
		engineStore{photos: photos, albums: albums},
		log,
	)
}
