package highlight

import "math"

// DragMode classifies the effect of an in-progress boundary drag on the
// interval's original bounds.
type DragMode int

const (
	// DragModeNone means the candidate bounds match the original bounds.
	DragModeNone DragMode = iota
	// DragModeExpand means the candidate range strictly contains the original.
	DragModeExpand
	// DragModeContract means the original range strictly contains the candidate.
	DragModeContract
)

// DragTarget captures the interval being resized at gesture start. It exists
// only while a drag is active. For a single-token interval both handle flags
// are true and the drag direction is inferred from pointer movement.
type DragTarget struct {
	IntervalID    string
	StartHandle   bool
	EndHandle     bool
	OriginalStart float64
	OriginalEnd   float64
}

// BoundaryDragController runs the boundary-resize gesture: the user grabs an
// existing highlight at its first or last token and sweeps to expand or
// contract it. States: Idle → Armed → Dragging → (Committed | Reverted).
//
// The zero value is an idle controller ready for use.
type BoundaryDragController struct {
	active   bool
	target   DragTarget
	newStart float64
	newEnd   float64
	mode     DragMode
}

// Active reports whether a drag gesture is in progress.
func (c *BoundaryDragController) Active() bool { return c.active }

// Target returns the current drag target while a gesture is active.
func (c *BoundaryDragController) Target() (DragTarget, bool) {
	return c.target, c.active
}

// Mode returns the current drag classification.
func (c *BoundaryDragController) Mode() DragMode { return c.mode }

// Begin arms a drag on the interval covering tok. Handle flags compare the
// token's bounds to the interval's with Epsilon tolerance; both flags set
// means a single-token interval whose direction is not yet known.
func (c *BoundaryDragController) Begin(tok Token, set []Interval) bool {
	if c.active {
		return false
	}
	iv, ok := FindCovering(tok, set)
	if !ok {
		return false
	}
	c.active = true
	c.target = DragTarget{
		IntervalID:    iv.ID,
		StartHandle:   math.Abs(tok.Start-iv.Start) < Epsilon,
		EndHandle:     math.Abs(tok.End-iv.End) < Epsilon,
		OriginalStart: iv.Start,
		OriginalEnd:   iv.End,
	}
	c.newStart = iv.Start
	c.newEnd = iv.End
	c.mode = DragModeNone
	return true
}

// Move recomputes the candidate bounds for the token currently under the
// pointer and reclassifies the drag mode.
//
// For a single-token interval both handles coincide, so the handle being
// dragged is inferred from the sign of the pointer's movement relative to
// the original start: negative means a start-handle drag, positive an
// end-handle drag, zero a no-op preview. Picking a handle by token position
// instead of movement sign is exactly the historical "drag left by one token
// adds two tokens" bug.
func (c *BoundaryDragController) Move(tok Token) {
	if !c.active {
		return
	}
	t := c.target
	startHandle, endHandle := t.StartHandle, t.EndHandle

	if startHandle && endHandle {
		delta := tok.Start - t.OriginalStart
		switch {
		case delta < 0:
			endHandle = false
		case delta > 0:
			startHandle = false
		default:
			c.newStart = t.OriginalStart
			c.newEnd = t.OriginalEnd
			c.mode = DragModeNone
			return
		}
	}

	newStart, newEnd := t.OriginalStart, t.OriginalEnd
	switch {
	case startHandle:
		newStart = tok.Start
		if newStart >= newEnd {
			newStart = newEnd - Epsilon
		}
	case endHandle:
		newEnd = tok.End
		if newEnd <= newStart {
			newEnd = newStart + Epsilon
		}
	}

	c.newStart = newStart
	c.newEnd = newEnd
	c.mode = classifyDrag(t.OriginalStart, t.OriginalEnd, newStart, newEnd)
}

// End completes the gesture. The candidate bounds are committed via Update
// when the drag actually changed something, the result has positive width,
// and it overlaps nothing but the dragged interval itself. Any other outcome
// reverts to the exact original bounds. The DragTarget is cleared regardless.
func (c *BoundaryDragController) End(set []Interval) ([]Interval, bool) {
	if !c.active {
		return set, false
	}
	id := c.target.IntervalID
	mode := c.mode
	newStart, newEnd := c.newStart, c.newEnd
	c.reset()

	if mode == DragModeNone {
		return set, false
	}
	if math.IsNaN(newStart) || math.IsNaN(newEnd) || newStart >= newEnd {
		return set, false
	}
	if CheckOverlap(newStart, newEnd, set, id) {
		return set, false
	}
	return Update(set, id, newStart, newEnd), true
}

// InExpansionPreview reports whether tok lies inside the candidate bounds
// but outside the original bounds: a token the drag would add.
func (c *BoundaryDragController) InExpansionPreview(tok Token) bool {
	if !c.active {
		return false
	}
	return within(tok, c.newStart, c.newEnd) &&
		!within(tok, c.target.OriginalStart, c.target.OriginalEnd)
}

// InContractionPreview reports whether tok lies inside the original bounds
// but outside the candidate bounds: a token the drag would remove.
func (c *BoundaryDragController) InContractionPreview(tok Token) bool {
	if !c.active {
		return false
	}
	return within(tok, c.target.OriginalStart, c.target.OriginalEnd) &&
		!within(tok, c.newStart, c.newEnd)
}

// Candidate returns the current candidate bounds while dragging.
func (c *BoundaryDragController) Candidate() (start, end float64, ok bool) {
	if !c.active {
		return 0, 0, false
	}
	return c.newStart, c.newEnd, true
}

func (c *BoundaryDragController) reset() {
	c.active = false
	c.target = DragTarget{}
	c.newStart = 0
	c.newEnd = 0
	c.mode = DragModeNone
}

// within tests token containment with Epsilon slack, since clamped candidate
// bounds may sit just off the token grid.
func within(tok Token, start, end float64) bool {
	return tok.Start >= start-Epsilon && tok.End <= end+Epsilon
}

// classifyDrag compares candidate bounds to original bounds. Exactly one
// bound moves per drag, so the result is none, expand, or contract.
func classifyDrag(origStart, origEnd, newStart, newEnd float64) DragMode {
	sameStart := math.Abs(newStart-origStart) < Epsilon
	sameEnd := math.Abs(newEnd-origEnd) < Epsilon
	switch {
	case sameStart && sameEnd:
		return DragModeNone
	case newStart <= origStart+Epsilon && newEnd >= origEnd-Epsilon:
		return DragModeExpand
	case newStart >= origStart-Epsilon && newEnd <= origEnd+Epsilon:
		return DragModeContract
	default:
		return DragModeNone
	}
}
