package highlight

import "math"

// SelectionController runs the range-selection gesture: the user anchors on
// an uncovered token, sweeps across neighbors, and releases to create a new
// highlight. States: Idle → Selecting → (Committed | Idle).
//
// The zero value is an idle controller ready for use.
type SelectionController struct {
	selecting bool
	anchor    float64
	start     float64
	end       float64
}

// Active reports whether a selection gesture is in progress.
func (c *SelectionController) Active() bool { return c.selecting }

// Begin starts a selection anchored at tok. It refuses to start when the
// token is already covered by an interval; that gesture belongs to the
// boundary drag controller.
func (c *SelectionController) Begin(tok Token, set []Interval) bool {
	if c.selecting {
		return false
	}
	if _, covered := FindCovering(tok, set); covered {
		return false
	}
	c.selecting = true
	c.anchor = tok.Start
	c.start = tok.Start
	c.end = tok.End
	return true
}

// Move extends the pending range to cover from the anchor token through tok,
// inclusive, in whichever direction the pointer travelled.
func (c *SelectionController) Move(tok Token) {
	if !c.selecting {
		return
	}
	c.start = math.Min(c.anchor, tok.Start)
	c.end = math.Max(c.anchor, tok.End)
}

// End completes the gesture. The pending range is committed via Add when it
// is non-degenerate and overlaps nothing; otherwise it is discarded silently.
// Ephemeral state is cleared either way. The caller owns recording the new
// interval's color in usedColors on commit.
func (c *SelectionController) End(set []Interval, usedColors map[string]bool) ([]Interval, Interval, bool) {
	if !c.selecting {
		return set, Interval{}, false
	}
	start, end := c.start, c.end
	c.reset()

	if start == end || math.IsNaN(start) || math.IsNaN(end) {
		return set, Interval{}, false
	}
	if CheckOverlap(start, end, set, "") {
		return set, Interval{}, false
	}
	out, iv := Add(set, start, end, usedColors, "")
	return out, iv, true
}

// InPreview reports whether tok lies inside the pending selection range.
// Pure; queried by the renderer while the gesture is live.
func (c *SelectionController) InPreview(tok Token) bool {
	if !c.selecting {
		return false
	}
	return tok.Start >= c.start-Epsilon && tok.End <= c.end+Epsilon
}

// Range returns the pending [start, end] preview range.
func (c *SelectionController) Range() (start, end float64, ok bool) {
	if !c.selecting {
		return 0, 0, false
	}
	return c.start, c.end, true
}

func (c *SelectionController) reset() {
	c.selecting = false
	c.anchor = 0
	c.start = 0
	c.end = 0
}
