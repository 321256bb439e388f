package suggest

import (
	"fmt"
	"sort"
)

// rank turns clusters into named, scored suggestions, sorts them by
// confidence descending, and truncates to the configured maximum. The sort
// is stable: on equal confidence the temporal-then-spatial build order is
// preserved.
func (e *Engine) rank(temporal, spatial []*cluster) []Suggestion {
	suggestions := make([]Suggestion, 0, len(temporal)+len(spatial))

	for _, c := range temporal {
		suggestions = append(suggestions, Suggestion{
			Name:       c.start.Format("January 2, 2006"),
			Type:       SuggestionDate,
			PhotoIDs:   c.photoIDs(),
			Confidence: e.confidence(SuggestionDate, len(c.photos)),
			Metadata:   Metadata{Date: c.start.Format("2006-01-02")},
		})
	}
	for _, c := range spatial {
		coords := fmt.Sprintf("%.2f, %.2f", c.lat, c.lon)
		suggestions = append(suggestions, Suggestion{
			Name:       "Location (" + coords + ")",
			Type:       SuggestionLocation,
			PhotoIDs:   c.photoIDs(),
			Confidence: e.confidence(SuggestionLocation, len(c.photos)),
			Metadata:   Metadata{LocationName: coords},
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})
	if len(suggestions) > e.params.MaxSuggestions {
		suggestions = suggestions[:e.params.MaxSuggestions]
	}
	return suggestions
}
