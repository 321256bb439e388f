// Package ai generates display names for suggested albums using an LLM
// backend. Naming is best effort; callers fall back to the deterministic
// name when a backend is unavailable or fails.
package ai

import (
	"context"
	"fmt"
	"strings"
)

// AlbumNameRequest describes one suggested album for naming.
type AlbumNameRequest struct {
	Type        string // "date" or "location"
	Date        string // YYYY-MM-DD for date albums
	Location    string // coordinates or place name for location albums
	PhotoCount  int
	Destination string   // trip destination, may be empty
	Captions    []string // sample of photo captions, may be empty
}

// Provider defines the interface for album naming backends.
type Provider interface {
	Name() string
	AlbumName(ctx context.Context, req *AlbumNameRequest) (string, error)
}

// Usage tracks token usage.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// albumNameResponse is the JSON shape both backends return.
type albumNameResponse struct {
	Name string `json:"name"`
}

// buildAlbumNameContent renders the user message for a naming request.
func buildAlbumNameContent(req *AlbumNameRequest) string {
	var parts []string
	parts = append(parts, "Suggest a name for this photo album.")

	switch req.Type {
	case "date":
		parts = append(parts, "The photos were all taken on "+req.Date+".")
	case "location":
		parts = append(parts, "The photos were all taken near "+req.Location+".")
	}
	if req.PhotoCount > 0 {
		parts = append(parts, fmt.Sprintf("The album holds %d photos.", req.PhotoCount))
	}
	if req.Destination != "" {
		parts = append(parts, "The trip destination is "+req.Destination+".")
	}
	if len(req.Captions) > 0 {
		parts = append(parts, "Some photo captions: "+strings.Join(req.Captions, "; "))
	}

	return strings.Join(parts, "\n")
}
