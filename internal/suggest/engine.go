// Package suggest implements the photo album suggestion engine: it groups a
// trip's unsorted photos by temporal and geographic proximity, scores each
// candidate grouping, and returns a ranked shortlist. Accepting a suggestion
// is the only write; everything else is pure, request-scoped computation.
package suggest

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrTripNotFound is returned when a trip does not exist or does not belong
// to the requesting user. Surfaced as-is; not retryable.
var ErrTripNotFound = errors.New("trip not found")

// ErrInvalidPhotos is returned when an accepted suggestion references photo
// ids that do not all belong to the claimed trip. Surfaced as-is; the caller
// must correct the request.
var ErrInvalidPhotos = errors.New("some photos do not belong to this trip")

// PhotoSource is the slice of the persistence layer the engine reads from.
type PhotoSource interface {
	// VerifyTripOwnership reports whether the trip exists and is owned by
	// the user.
	VerifyTripOwnership(ctx context.Context, userID, tripID int64) (bool, error)
	// ListUnsortedPhotos returns the trip's photos not yet assigned to any
	// album.
	ListUnsortedPhotos(ctx context.Context, tripID int64) ([]Photo, error)
}

// AlbumStore is the slice of the persistence layer the engine writes to.
type AlbumStore interface {
	// CountPhotosInTrip counts how many of the given photo ids exist on the
	// trip. Duplicate ids collapse in the count.
	CountPhotosInTrip(ctx context.Context, photoIDs []int64, tripID int64) (int, error)
	// CreateAlbumWithAssignments atomically creates an album and one
	// position-ordered assignment per photo id, and returns the album id.
	CreateAlbumWithAssignments(ctx context.Context, tripID int64, name string, photoIDs []int64) (string, error)
}

// Engine computes album suggestions and commits accepted ones. It holds no
// per-request state; one Engine serves all requests.
type Engine struct {
	params Params
	source PhotoSource
	store  AlbumStore
	log    zerolog.Logger
}

// NewEngine creates an engine with the embedded policy parameters.
func NewEngine(source PhotoSource, store AlbumStore, log zerolog.Logger) *Engine {
	return NewEngineWithParams(DefaultParams(), source, store, log)
}

// NewEngineWithParams creates an engine with explicit parameters. Used by
// tests and by operators overriding the shipped policy.
func NewEngineWithParams(params Params, source PhotoSource, store AlbumStore, log zerolog.Logger) *Engine {
	return &Engine{params: params, source: source, store: store, log: log}
}

// Suggestions returns up to MaxSuggestions proposed albums for the trip,
// sorted by confidence descending. An empty result is a valid answer, not an
// error. Trips with fewer unsorted photos than the minimum cluster size
// short-circuit without running either clusterer.
func (e *Engine) Suggestions(ctx context.Context, userID, tripID int64) ([]Suggestion, error) {
	owned, err := e.source.VerifyTripOwnership(ctx, userID, tripID)
	if err != nil {
		return nil, fmt.Errorf("verifying trip ownership: %w", err)
	}
	if !owned {
		return nil, ErrTripNotFound
	}

	photos, err := e.source.ListUnsortedPhotos(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("listing unsorted photos: %w", err)
	}
	if len(photos) < e.params.MinClusterSize {
		return []Suggestion{}, nil
	}

	temporal := clusterByTime(photos, e.params)
	spatial := clusterByLocation(photos, e.params)
	suggestions := e.rank(temporal, spatial)

	e.log.Debug().
		Int64("trip_id", tripID).
		Int("photos", len(photos)).
		Int("temporal_clusters", len(temporal)).
		Int("spatial_clusters", len(spatial)).
		Int("suggestions", len(suggestions)).
		Msg("computed album suggestions")

	return suggestions, nil
}

// Accept validates an accepted suggestion and persists it as a real album,
// returning the new album id. Every photo id must belong to the trip; the
// membership count check runs strictly before the write, so a failed
// validation never leaves a partial album. Photo order in the album is the
// caller-provided order.
func (e *Engine) Accept(ctx context.Context, userID, tripID int64, name string, photoIDs []int64) (string, error) {
	owned, err := e.source.VerifyTripOwnership(ctx, userID, tripID)
	if err != nil {
		return "", fmt.Errorf("verifying trip ownership: %w", err)
	}
	if !owned {
		return "", ErrTripNotFound
	}

	if len(photoIDs) == 0 {
		return "", fmt.Errorf("%w: no photos given", ErrInvalidPhotos)
	}
	count, err := e.store.CountPhotosInTrip(ctx, photoIDs, tripID)
	if err != nil {
		return "", fmt.Errorf("counting trip photos: %w", err)
	}
	if count != len(photoIDs) {
		return "", ErrInvalidPhotos
	}

	albumID, err := e.store.CreateAlbumWithAssignments(ctx, tripID, name, photoIDs)
	if err != nil {
		return "", fmt.Errorf("creating album: %w", err)
	}

	e.log.Info().
		Int64("trip_id", tripID).
		Str("album_id", albumID).
		Int("photos", len(photoIDs)).
		Msg("accepted album suggestion")

	return albumID, nil
}
