package suggest

import "time"

// Photo is the read-only view of a trip photo the engine operates on.
// Image bytes never enter the engine; photos arrive with already-parsed
// timestamp and coordinate metadata. A photo with neither a timestamp nor
// coordinates can never appear in a suggestion.
type Photo struct {
	ID        int64
	TakenAt   *time.Time // nil: invisible to the temporal path
	Latitude  *float64   // nil: invisible to the spatial path
	Longitude *float64
}

// SuggestionType distinguishes the two grouping strategies.
type SuggestionType string

const (
	SuggestionDate     SuggestionType = "date"
	SuggestionLocation SuggestionType = "location"
)

// Metadata carries type-specific descriptive fields for a suggestion.
type Metadata struct {
	Date         string `json:"date,omitempty"`         // ISO YYYY-MM-DD (date suggestions)
	LocationName string `json:"locationName,omitempty"` // "lat, lon" rounded to 2 decimals (location suggestions)
}

// Suggestion is a proposed album. Suggestions are constructed fresh on every
// call and never stored; they have no identity beyond their fields.
type Suggestion struct {
	Name       string         `json:"name"`
	Type       SuggestionType `json:"type"`
	PhotoIDs   []int64        `json:"photo_ids"`
	Confidence float64        `json:"confidence"`
	Metadata   Metadata       `json:"metadata"`
}
