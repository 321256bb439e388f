package suggest

import "math"

// confidence converts a cluster size into a score for the given suggestion
// type. Larger clusters are more likely to be an intentional outing; the cap
// prevents false certainty.
func (e *Engine) confidence(t SuggestionType, size int) float64 {
	var policy ConfidencePolicy
	switch t {
	case SuggestionDate:
		policy = e.params.Confidence.Date
	case SuggestionLocation:
		policy = e.params.Confidence.Location
	}
	return math.Min(policy.Base+policy.PerPhoto*float64(size), policy.Cap)
}
