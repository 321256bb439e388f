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

// TripsHandler handles trip CRUD.
type TripsHandler struct {
	trips database.TripStore
	log   zerolog.Logger
}

// NewTripsHandler creates a new TripsHandler
func NewTripsHandler(trips database.TripStore, log zerolog.Logger) *TripsHandler {
	return &TripsHandler{trips: trips, log: log}
}

type createTripRequest struct {
	Title       string `json:"title"`
	Destination string `json:"destination"`
}

type tripResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTripResponse(t *database.Trip) tripResponse {
	return tripResponse{
		ID:          t.ID,
		Title:       t.Title,
		Destination: t.Destination,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// Create handles POST /api/v1/trips
func (h *TripsHandler) Create(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSessionFromContext(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}

	trip := &database.Trip{
		UserID:      session.UserID,
		Title:       req.Title,
		Destination: strings.TrimSpace(req.Destination),
	}
	if err := h.trips.CreateTrip(r.Context(), trip); err != nil {
		h.log.Error().Err(err).Msg("create trip failed")
		respondError(w, http.StatusInternalServerError, "failed to create trip")
		return
	}

	respondJSON(w, http.StatusCreated, toTripResponse(trip))
}

// List handles GET /api/v1/trips
func (h *TripsHandler) List(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSessionFromContext(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	trips, err := h.trips.ListTrips(r.Context(), session.UserID)
	if err != nil {
		h.log.Error().Err(err).Msg("list trips failed")
		respondError(w, http.StatusInternalServerError, "failed to list trips")
		return
	}

	out := make([]tripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, toTripResponse(&trips[i]))
	}
	respondJSON(w, http.StatusOK, map[string]any{"trips": out})
}

// Get handles GET /api/v1/trips/{id}
func (h *TripsHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	trip, err := h.trips.GetTrip(r.Context(), tripID)
	if err != nil {
		h.log.Error().Err(err).Msg("get trip failed")
		respondError(w, http.StatusInternalServerError, "failed to get trip")
		return
	}
	// Trips of other users look like missing trips.
	if trip == nil || trip.UserID != session.UserID {
		respondError(w, http.StatusNotFound, "trip not found")
		return
	}

	respondJSON(w, http.StatusOK, toTripResponse(trip))
}
