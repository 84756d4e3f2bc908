package highlight

import "math"

// Token is a single timestamped transcript word. Start and End are seconds
// from the beginning of the recording. Tokens are ordered by time; the gap
// between End[i] and Start[i+1] is a pause.
type Token struct {
	Index int     `json:"index"`
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// TokenIndex is a read-only view over an ordered token sequence. It resolves
// timestamps to tokens and token index ranges to timestamps.
type TokenIndex struct {
	tokens []Token
}

// NewTokenIndex wraps an ordered token slice. The slice is not copied; the
// caller must not mutate it afterwards.
func NewTokenIndex(tokens []Token) *TokenIndex {
	return &TokenIndex{tokens: tokens}
}

// Len returns the number of tokens.
func (ti *TokenIndex) Len() int { return len(ti.tokens) }

// Tokens returns the underlying token slice, read-only.
func (ti *TokenIndex) Tokens() []Token { return ti.tokens }

// At returns the token at index i. Out-of-range indices report ok=false.
func (ti *TokenIndex) At(i int) (Token, bool) {
	if i < 0 || i >= len(ti.tokens) {
		return Token{}, false
	}
	return ti.tokens[i], true
}

// CoveringToken returns the token whose [Start, End] contains t, or nil if
// t falls in a pause or outside the sequence.
func (ti *TokenIndex) CoveringToken(t float64) *Token {
	for i := range ti.tokens {
		if ti.tokens[i].Start <= t && t <= ti.tokens[i].End {
			tok := ti.tokens[i]
			return &tok
		}
	}
	return nil
}

// NearestToken returns the token whose Start is closest to t by absolute
// distance. It returns nil only when the sequence is empty.
func (ti *TokenIndex) NearestToken(t float64) *Token {
	if len(ti.tokens) == 0 {
		return nil
	}
	best := 0
	bestDist := math.Abs(ti.tokens[0].Start - t)
	for i := 1; i < len(ti.tokens); i++ {
		d := math.Abs(ti.tokens[i].Start - t)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	tok := ti.tokens[best]
	return &tok
}

// CalculateTimestamps converts a token index range to timestamps: the Start
// of the first token and the End of the last. Indices are clamped into
// [0, Len-1] rather than rejected. An empty sequence yields (0, 0).
func (ti *TokenIndex) CalculateTimestamps(startIdx, endIdx int) (start, end float64) {
	if len(ti.tokens) == 0 {
		return 0, 0
	}
	startIdx = clampIndex(startIdx, len(ti.tokens))
	endIdx = clampIndex(endIdx, len(ti.tokens))
	return ti.tokens[startIdx].Start, ti.tokens[endIdx].End
}

// TokenRange converts timestamps back to token indices: each bound resolves
// to its covering token, falling back to the nearest token when the bound
// lands in a pause. Returns ok=false on an empty sequence. Bounds that land
// exactly on token boundaries round-trip stably with CalculateTimestamps.
func (ti *TokenIndex) TokenRange(start, end float64) (startIdx, endIdx int, ok bool) {
	if len(ti.tokens) == 0 {
		return 0, 0, false
	}
	s := ti.CoveringToken(start)
	if s == nil {
		s = ti.NearestToken(start)
	}
	e := ti.CoveringToken(end)
	if e == nil {
		e = ti.NearestToken(end)
	}
	return s.Index, e.Index, true
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
