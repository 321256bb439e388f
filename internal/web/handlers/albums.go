package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jvokurka/tripbook/internal/database"
	"github.com/jvokurka/tripbook/internal/suggest"
	"github.com/jvokurka/tripbook/internal/web/middleware"
	"github.com/rs/zerolog"
)

// AlbumsHandler handles album creation (accepting suggestions) and reads.
type AlbumsHandler struct {
	engine *suggest.Engine
	trips  database.TripStore
	albums database.AlbumStore
	log    zerolog.Logger
}

// NewAlbumsHandler creates a new AlbumsHandler
func NewAlbumsHandler(engine *suggest.Engine, trips database.TripStore, albums database.AlbumStore, log zerolog.Logger) *AlbumsHandler {
	return &AlbumsHandler{
		engine: engine,
		trips:  trips,
		albums: albums,
		log:    log,
	}
}

type acceptSuggestionRequest struct {
	Name     string  `json:"name"`
	PhotoIDs []int64 `json:"photo_ids"`
}

type albumResponse struct {
	ID         string    `json:"id"`
	TripID     int64     `json:"trip_id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	PhotoCount int       `json:"photo_count"`
	CreatedAt  time.Time `json:"created_at"`
}

func toAlbumResponse(a *database.Album) albumResponse {
	return albumResponse{
		ID:         a.ID,
		TripID:     a.TripID,
		Name:       a.Name,
		Slug:       a.Slug,
		PhotoCount: a.PhotoCount,
		CreatedAt:  a.CreatedAt,
	}
}

// Create handles POST /api/v1/trips/{id}/albums. It accepts a suggestion:
// the album keeps the photos in the order the caller sent them.
func (h *AlbumsHandler) Create(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSessionFromContext(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	tripID, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid trip id")
		return
	}

	var req acceptSuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	albumID, err := h.engine.Accept(r.Context(), session.UserID, tripID, req.Name, req.PhotoIDs)
	if errors.Is(err, suggest.ErrTripNotFound) {
		respondError(w, http.StatusNotFound, "trip not found")
		return
	}
	if errors.Is(err, suggest.ErrInvalidPhotos) {
		respondError(w, http.StatusBadRequest, "some photos do not belong to this trip")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Int64("trip_id", tripID).Msg("accept suggestion failed")
		respondError(w, http.StatusInternalServerError, "failed to create album")
		return
	}

	album, err := h.albums.GetAlbum(r.Context(), albumID)
	if err != nil || album == nil {
		// Album exists; the read-back is best effort.
		respondJSON(w, http.StatusCreated, map[string]string{"id": albumID})
		return
	}
	respondJSON(w, http.StatusCreated, toAlbumResponse(album))
}

// List handles GET /api/v1/trips/{id}/albums
func (h *AlbumsHandler) List(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSessionFromContext(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	tripID, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid trip id")
		return
	}
	owned, err := h.trips.VerifyTripOwnership(r.Context(), session.UserID, tripID)
	if err != nil {
		h.log.Error().Err(err).Msg("trip ownership check failed")
		respondError(w, http.StatusInternalServerError, "failed to load trip")
		return
	}
	if !owned {
		respondError(w, http.StatusNotFound, "trip not found")
		return
	}

	albums, err := h.albums.ListAlbums(r.Context(), tripID)
	if err != nil {
		h.log.Error().Err(err).Msg("list albums failed")
		respondError(w, http.StatusInternalServerError, "failed to list albums")
		return
	}

	out := make([]albumResponse, 0, len(albums))
	for i := range albums {
		out = append(out, toAlbumResponse(&albums[i]))
	}
	respondJSON(w, http.StatusOK, map[string]any{"albums": out})
}

// requireAlbum loads an album and verifies the session user owns its trip.
// Writes the error response and returns nil when it does not.
func (h *AlbumsHandler) requireAlbum(w http.ResponseWriter, r *http.Request) *database.Album {
	session := middleware.GetSessionFromContext(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return nil
	}

	albumID := chi.URLParam(r, "albumID")
	if albumID == "" {
		respondError(w, http.StatusBadRequest, "invalid album id")
		return nil
	}

	album, err := h.albums.GetAlbum(r.Context(), albumID)
	if err != nil {
		h.log.Error().Err(err).Msg("get album failed")
		respondError(w, http.StatusInternalServerError, "failed to load album")
		return nil
	}
	if album == nil {
		respondError(w, http.StatusNotFound, "album not found")
		return nil
	}

	owned, err := h.trips.VerifyTripOwnership(r.Context(), session.UserID, album.TripID)
	if err != nil {
		h.log.Error().Err(err).Msg("trip ownership check failed")
		respondError(w, http.StatusInternalServerError, "failed to load album")
		return nil
	}
	if !owned {
		// Albums of other users look like missing albums.
		respondError(w, http.StatusNotFound, "album not found")
		return nil
	}
	return album
}

// Get handles GET /api/v1/albums/{albumID}
func (h *AlbumsHandler) Get(w http.ResponseWriter, r *http.Request) {
	album := h.requireAlbum(w, r)
	if album == nil {
		return
	}
	respondJSON(w, http.StatusOK, toAlbumResponse(album))
}

// GetPhotos handles GET /api/v1/albums/{albumID}/photos. Photos come back
// in album position order.
func (h *AlbumsHandler) GetPhotos(w http.ResponseWriter, r *http.Request) {
	album := h.requireAlbum(w, r)
	if album == nil {
		return
	}

	photos, err := h.albums.GetAlbumPhotos(r.Context(), album.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("get album photos failed")
		respondError(w, http.StatusInternalServerError, "failed to load album photos")
		return
	}

	out := make([]photoResponse, 0, len(photos))
	for i := range photos {
		out = append(out, toPhotoResponse(&photos[i]))
	}
	respondJSON(w, http.StatusOK, map[string]any{"photos": out})
}
