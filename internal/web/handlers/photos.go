package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/jvokurka/tripbook/internal/database"
	"github.com/jvokurka/tripbook/internal/web/middleware"
	"github.com/rs/zerolog"
)

// PhotosHandler handles photo metadata on trips.
type PhotosHandler struct {
	trips  database.TripStore
	photos database.PhotoStore
	log    zerolog.Logger
}

// NewPhotosHandler creates a new PhotosHandler
func NewPhotosHandler(trips database.TripStore, photos database.PhotoStore, log zerolog.Logger) *PhotosHandler {
	return &PhotosHandler{trips: trips, photos: photos, log: log}
}

type addPhotoRequest struct {
	Caption   string     `json:"caption"`
	TakenAt   *time.Time `json:"taken_at"`
	Latitude  *float64   `json:"latitude"`
	Longitude *float64   `json:"longitude"`
}

type photoResponse struct {
	ID        int64      `json:"id"`
	TripID    int64      `json:"trip_id"`
	Caption   string     `json:"caption,omitempty"`
	TakenAt   *time.Time `json:"taken_at,omitempty"`
	Latitude  *float64   `json:"latitude,omitempty"`
	Longitude *float64   `json:"longitude,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func toPhotoResponse(p *database.Photo) photoResponse {
	return photoResponse{
		ID:        p.ID,
		TripID:    p.TripID,
		Caption:   p.Caption,
		TakenAt:   p.TakenAt,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		CreatedAt: p.CreatedAt,
	}
}

// requireTrip verifies the path trip id belongs to the session user.
// Writes the error response and returns 0 when it does not.
func (h *PhotosHandler) requireTrip(w http.ResponseWriter, r *http.Request) int64 {
	session := middleware.GetSessionFromContext(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return 0
	}
	tripID, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid trip id")
		return 0
	}
	owned, err := h.trips.VerifyTripOwnership(r.Context(), session.UserID, tripID)
	if err != nil {
		h.log.Error().Err(err).Msg("trip ownership check failed")
		respondError(w, http.StatusInternalServerError, "failed to load trip")
		return 0
	}
	if !owned {
		respondError(w, http.StatusNotFound, "trip not found")
		return 0
	}
	return tripID
}

// Add handles POST /api/v1/trips/{id}/photos
func (h *PhotosHandler) Add(w http.ResponseWriter, r *http.Request) {
	tripID := h.requireTrip(w, r)
	if tripID == 0 {
		return
	}

	var req addPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}
	// Coordinates only count as present when both are given.
	if (req.Latitude == nil) != (req.Longitude == nil) {
		respondError(w, http.StatusBadRequest, "latitude and longitude must be provided together")
		return
	}
	if req.Latitude != nil {
		if *req.Latitude < -90 || *req.Latitude > 90 || *req.Longitude < -180 || *req.Longitude > 180 {
			respondError(w, http.StatusBadRequest, "coordinates out of range")
			return
		}
	}

	photo := &database.Photo{
		TripID:    tripID,
		Caption:   strings.TrimSpace(req.Caption),
		TakenAt:   req.TakenAt,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := h.photos.AddPhoto(r.Context(), photo); err != nil {
		h.log.Error().Err(err).Msg("add photo failed")
		respondError(w, http.StatusInternalServerError, "failed to add photo")
		return
	}

	respondJSON(w, http.StatusCreated, toPhotoResponse(photo))
}

// ListUnsorted handles GET /api/v1/trips/{id}/photos/unsorted
func (h *PhotosHandler) ListUnsorted(w http.ResponseWriter, r *http.Request) {
	tripID := h.requireTrip(w, r)
	if tripID == 0 {
		return
	}

	photos, err := h.photos.ListUnsortedPhotos(r.Context(), tripID)
	if err != nil {
		h.log.Error().Err(err).Msg("list unsorted photos failed")
		respondError(w, http.StatusInternalServerError, "failed to list photos")
		return
	}

	out := make([]photoResponse, 0, len(photos))
	for i := range photos {
		out = append(out, toPhotoResponse(&photos[i]))
	}
	respondJSON(w, http.StatusOK, map[string]any{"photos": out})
}
