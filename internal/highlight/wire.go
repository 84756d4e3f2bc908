package highlight

import "encoding/json"

// WireInterval is the persisted shape of a highlight: timestamps, never token
// indices.
type WireInterval struct {
	ID    string  `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Color string  `json:"color"`
}

// WireSuggestion is the ingress shape of a suggestion: token indices, since
// the producer reasons over discrete tokens.
type WireSuggestion struct {
	ID    string  `json:"id"`
	Start int     `json:"start"`
	End   int     `json:"end"`
	Text  string  `json:"text"`
	Color string  `json:"color"`
}

// DecodeWireIntervals parses a persisted highlight list. Missing start/end
// fields default to 0; malformed entries never raise beyond the JSON error.
func DecodeWireIntervals(data []byte) ([]WireInterval, error) {
	var out []WireInterval
	if len(data) == 0 {
		return nil, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeWireSuggestions parses a suggestion list in wire shape.
func DecodeWireSuggestions(data []byte) ([]WireSuggestion, error) {
	var out []WireSuggestion
	if len(data) == 0 {
		return nil, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// toWire converts the engine's interval slice to the persisted shape.
func toWire(set []Interval) []WireInterval {
	out := make([]WireInterval, len(set))
	for i, iv := range set {
		out[i] = WireInterval{ID: iv.ID, Start: iv.Start, End: iv.End, Color: iv.Color}
	}
	return out
}

// FromWire converts a persisted highlight list into engine shape, for
// callers that analyze stored state without an Editor.
func FromWire(ws []WireInterval) []Interval {
	out := make([]Interval, len(ws))
	for i, w := range ws {
		out[i] = fromWireInterval(w)
	}
	return out
}

// fromWireInterval converts a persisted highlight into the engine shape.
func fromWireInterval(w WireInterval) Interval {
	return Interval{ID: w.ID, Start: w.Start, End: w.End, Color: w.Color}
}

// fromWireSuggestion converts an ingress suggestion into the engine shape.
func fromWireSuggestion(w WireSuggestion) Suggestion {
	return Suggestion{
		ID:         w.ID,
		StartToken: w.Start,
		EndToken:   w.End,
		Text:       w.Text,
		Color:      w.Color,
	}
}
