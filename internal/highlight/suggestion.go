package highlight

// Suggestion is an externally proposed highlight the user has not yet acted
// on. Suggestions live in token-index coordinates because their producer
// reasons over discrete tokens; they are converted to timestamps only at the
// accept boundary. A suggestion may overlap committed intervals — rendering
// precedence favors the interval — but suggestions never overlap each other.
type Suggestion struct {
	ID         string `json:"id"`
	StartToken int    `json:"start"`
	EndToken   int    `json:"end"`
	Text       string `json:"text"`
	Color      string `json:"color"`
}

// FindSuggestionForToken returns the first suggestion whose token range
// contains idx.
func FindSuggestionForToken(idx int, suggestions []Suggestion) (Suggestion, bool) {
	for i := range suggestions {
		if idx >= suggestions[i].StartToken && idx <= suggestions[i].EndToken {
			return suggestions[i], true
		}
	}
	return Suggestion{}, false
}

// AcceptSuggestion materializes a suggestion into the interval set. The token
// range converts to timestamps through the TokenIndex, then behaves exactly
// like an interactive create: if the range would overlap an existing interval
// the accept is rejected and the suggestion stays in the overlay so the user
// can resolve the conflict manually. On success the suggestion is removed.
//
// The caller owns recording the new interval's color in usedColors on
// success.
func AcceptSuggestion(s Suggestion, overlay []Suggestion, set []Interval, tokens *TokenIndex, usedColors map[string]bool) (newSet []Interval, newOverlay []Suggestion, created Interval, ok bool) {
	start, end := tokens.CalculateTimestamps(s.StartToken, s.EndToken)
	if CheckOverlap(start, end, set, "") {
		return set, overlay, Interval{}, false
	}
	newSet, created = Add(set, start, end, usedColors, s.Color)
	return newSet, RejectSuggestion(s.ID, overlay), created, true
}

// RejectSuggestion removes the suggestion unconditionally; no interval is
// created. Rejecting an ID that is already gone is a no-op, so the input
// overlay is returned unchanged.
func RejectSuggestion(id string, overlay []Suggestion) []Suggestion {
	idx := -1
	for i := range overlay {
		if overlay[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return overlay
	}
	out := make([]Suggestion, 0, len(overlay)-1)
	out = append(out, overlay[:idx]...)
	return append(out, overlay[idx+1:]...)
}
