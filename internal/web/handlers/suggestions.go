package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/jvokurka/tripbook/internal/ai"
	"github.com/jvokurka/tripbook/internal/database"
	"github.com/jvokurka/tripbook/internal/suggest"
	"github.com/jvokurka/tripbook/internal/web/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

const nameGenerationTimeout = 10 * time.Second

var suggestionRuns = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tripbook_suggestion_runs_total",
		Help: "Suggestion computations by outcome.",
	},
	[]string{"outcome"},
)

// SuggestionsHandler computes album suggestions for a trip.
type SuggestionsHandler struct {
	engine *suggest.Engine
	trips  database.TripStore
	namer  ai.Provider // nil when no naming backend is configured
	log    zerolog.Logger
}

// NewSuggestionsHandler creates a new SuggestionsHandler. namer may be nil.
func NewSuggestionsHandler(engine *suggest.Engine, trips database.TripStore, namer ai.Provider, log zerolog.Logger) *SuggestionsHandler {
	return &SuggestionsHandler{
		engine: engine,
		trips:  trips,
		namer:  namer,
		log:    log,
	}
}

type suggestRequest struct {
	GenerateNames bool `json:"generate_names"`
}

// Suggest handles POST /api/v1/trips/{id}/suggestions
func (h *SuggestionsHandler) Suggest(w http.ResponseWriter, r *http.Request) {
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

	// The body is optional; an empty body means default options.
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	suggestions, err := h.engine.Suggestions(r.Context(), session.UserID, tripID)
	if errors.Is(err, suggest.ErrTripNotFound) {
		suggestionRuns.WithLabelValues("not_found").Inc()
		respondError(w, http.StatusNotFound, "trip not found")
		return
	}
	if err != nil {
		suggestionRuns.WithLabelValues("error").Inc()
		h.log.Error().Err(err).Int64("trip_id", tripID).Msg("suggestions failed")
		respondError(w, http.StatusInternalServerError, "failed to compute suggestions")
		return
	}
	if len(suggestions) == 0 {
		suggestionRuns.WithLabelValues("empty").Inc()
	} else {
		suggestionRuns.WithLabelValues("ok").Inc()
	}

	if req.GenerateNames && h.namer != nil {
		h.generateNames(r, tripID, suggestions)
	}

	respondJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

// generateNames replaces deterministic names with LLM-generated ones where it
// can. Failures keep the deterministic name; the response never fails because
// of the naming backend.
func (h *SuggestionsHandler) generateNames(r *http.Request, tripID int64, suggestions []suggest.Suggestion) {
	ctx, cancel := context.WithTimeout(r.Context(), nameGenerationTimeout)
	defer cancel()

	destination := ""
	if trip, err := h.trips.GetTrip(ctx, tripID); err == nil && trip != nil {
		destination = trip.Destination
	}

	for i := range suggestions {
		s := &suggestions[i]
		req := &ai.AlbumNameRequest{
			Type:        string(s.Type),
			Date:        s.Metadata.Date,
			Location:    s.Metadata.LocationName,
			PhotoCount:  len(s.PhotoIDs),
			Destination: destination,
		}
		name, err := h.namer.AlbumName(ctx, req)
		if err != nil {
			h.log.Debug().Err(err).Str("suggestion", s.Name).Msg("album naming failed, keeping default")
			continue
		}
		s.Name = name
	}
}
