package highlight

import "github.com/google/uuid"

// Epsilon absorbs floating point jitter when comparing token boundaries to
// interval boundaries. It must stay well below the shortest plausible word
// duration.
const Epsilon = 1e-2

// Interval is a committed highlight: a labeled time-range over tokens.
// Committed intervals in the same set never overlap, and touching boundaries
// count as overlap.
type Interval struct {
	ID    string  `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Color string  `json:"color"`
}

// Add returns a new set with an interval appended, plus the interval itself.
// The input set is never mutated.
//
// Add does not check for overlap: overlap policy belongs to the gesture
// controllers, which have already validated the range by the time they
// commit. If explicitColor is empty a color is allocated from usedColors;
// either way the caller owns adding the color to usedColors.
func Add(set []Interval, start, end float64, usedColors map[string]bool, explicitColor string) ([]Interval, Interval) {
	color := explicitColor
	if color == "" {
		color = AllocateColor(usedColors)
	}
	iv := Interval{
		ID:    uuid.NewString(),
		Start: start,
		End:   end,
		Color: color,
	}
	out := make([]Interval, len(set), len(set)+1)
	copy(out, set)
	return append(out, iv), iv
}

// Remove returns a new set without the interval with the given ID. If the ID
// is not present the input set is returned unchanged.
func Remove(set []Interval, id string) []Interval {
	idx := -1
	for i := range set {
		if set[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return set
	}
	out := make([]Interval, 0, len(set)-1)
	out = append(out, set[:idx]...)
	return append(out, set[idx+1:]...)
}

// Update returns a new set with the bounds of the matching interval replaced.
// ID and color are preserved. If the ID is not present the input set is
// returned unchanged.
func Update(set []Interval, id string, newStart, newEnd float64) []Interval {
	idx := -1
	for i := range set {
		if set[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return set
	}
	out := make([]Interval, len(set))
	copy(out, set)
	out[idx].Start = newStart
	out[idx].End = newEnd
	return out
}

// CheckOverlap reports whether [start, end] overlaps any interval in the set
// other than excludeID. Intervals are closed: a candidate that merely touches
// a neighbor's boundary overlaps it. A candidate sitting exactly between two
// intervals with no gap therefore overlaps both.
func CheckOverlap(start, end float64, set []Interval, excludeID string) bool {
	for i := range set {
		if set[i].ID == excludeID {
			continue
		}
		if start <= set[i].End && end >= set[i].Start {
			return true
		}
	}
	return false
}

// FindCovering returns the interval that fully contains the token, if any.
// A token is inside an interval when its own [Start, End] lies within the
// interval's bounds.
func FindCovering(tok Token, set []Interval) (Interval, bool) {
	for i := range set {
		if tok.Start >= set[i].Start && tok.End <= set[i].End {
			return set[i], true
		}
	}
	return Interval{}, false
}
