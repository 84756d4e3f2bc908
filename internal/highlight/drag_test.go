package highlight

import (
	"math"
	"testing"
)

// dragFixture builds a token sequence with a committed single-token
// highlight on token 3 ("fox", [2.0, 2.3]).
func dragFixture() ([]Token, []Interval) {
	tokens := sampleTokens()
	set := []Interval{{ID: "h1", Start: 2.0, End: 2.3, Color: "#58a6ff"}}
	return tokens, set
}

// TestSingleTokenDragLeft verifies direction inference for a single-token
// interval: moving to the token immediately before it must become a
// start-handle expand that keeps the original token and never touches the
// right edge.
func TestSingleTokenDragLeft(t *testing.T) {
	tokens, set := dragFixture()
	var c BoundaryDragController

	if !c.Begin(tokens[3], set) {
		t.Fatal("Begin should arm on the covered token")
	}
	target, _ := c.Target()
	if !target.StartHandle || !target.EndHandle {
		t.Fatalf("single-token interval should set both handle flags, got %+v", target)
	}

	c.Move(tokens[2]) // "brown", [1.3, 1.8]

	if c.Mode() != DragModeExpand {
		t.Errorf("expected expand mode, got %v", c.Mode())
	}
	newStart, newEnd, _ := c.Candidate()
	if newStart != 1.3 {
		t.Errorf("candidate start should be 1.3, got %v", newStart)
	}
	if newEnd != 2.3 {
		t.Errorf("right edge must not move on a leftward drag, got %v", newEnd)
	}
	if !c.InExpansionPreview(tokens[2]) {
		t.Error("token 2 should be in the expansion preview")
	}
	if c.InExpansionPreview(tokens[3]) {
		t.Error("the original token is inside the original bounds, not the preview")
	}
	if c.InExpansionPreview(tokens[4]) {
		t.Error("a leftward drag must never preview tokens to the right")
	}
}

// TestSingleTokenDragRight is the mirror case: moving to the next token must
// become an end-handle expand that never includes tokens left of the
// original.
func TestSingleTokenDragRight(t *testing.T) {
	tokens, set := dragFixture()
	var c BoundaryDragController

	c.Begin(tokens[3], set)
	c.Move(tokens[4]) // "jumps", [2.4, 2.6]

	if c.Mode() != DragModeExpand {
		t.Errorf("expected expand mode, got %v", c.Mode())
	}
	newStart, newEnd, _ := c.Candidate()
	if newStart != 2.0 {
		t.Errorf("left edge must not move on a rightward drag, got %v", newStart)
	}
	if newEnd != 2.6 {
		t.Errorf("candidate end should be 2.6, got %v", newEnd)
	}
	if c.InExpansionPreview(tokens[2]) {
		t.Error("a rightward drag must never preview tokens to the left")
	}
	if !c.InExpansionPreview(tokens[4]) {
		t.Error("token 4 should be in the expansion preview")
	}
}

// TestSingleTokenDragNoMovement verifies that moving back onto the original
// token is a no-op preview, and that ending there reverts.
func TestSingleTokenDragNoMovement(t *testing.T) {
	tokens, set := dragFixture()
	var c BoundaryDragController

	c.Begin(tokens[3], set)
	c.Move(tokens[3])

	if c.Mode() != DragModeNone {
		t.Errorf("expected none mode, got %v", c.Mode())
	}

	newSet, committed := c.End(set)
	if committed {
		t.Error("a no-op drag must not commit")
	}
	if newSet[0].Start != 2.0 || newSet[0].End != 2.3 {
		t.Errorf("bounds must revert exactly, got [%v, %v]", newSet[0].Start, newSet[0].End)
	}
	if c.Active() {
		t.Error("DragTarget must be cleared after End")
	}
}

// TestEndHandleContract verifies contraction of a multi-token highlight from
// the right, including the contraction preview predicate.
func TestEndHandleContract(t *testing.T) {
	tokens := sampleTokens()
	set := []Interval{{ID: "h1", Start: 2.0, End: 2.8, Color: "#58a6ff"}} // fox jumps over
	var c BoundaryDragController

	if !c.Begin(tokens[5], set) { // last token of the highlight
		t.Fatal("Begin should arm on the last covered token")
	}
	target, _ := c.Target()
	if target.StartHandle || !target.EndHandle {
		t.Fatalf("expected end handle only, got %+v", target)
	}

	c.Move(tokens[3]) // contract to just "fox"

	if c.Mode() != DragModeContract {
		t.Errorf("expected contract mode, got %v", c.Mode())
	}
	if !c.InContractionPreview(tokens[4]) || !c.InContractionPreview(tokens[5]) {
		t.Error("tokens 4 and 5 should be in the contraction preview")
	}
	if c.InContractionPreview(tokens[3]) {
		t.Error("token 3 stays inside the candidate bounds")
	}

	newSet, committed := c.End(set)
	if !committed {
		t.Fatal("valid contraction should commit")
	}
	if newSet[0].Start != 2.0 || newSet[0].End != 2.3 {
		t.Errorf("expected committed bounds [2.0, 2.3], got [%v, %v]", newSet[0].Start, newSet[0].End)
	}
	if set[0].End != 2.8 {
		t.Error("input set mutated by drag commit")
	}
}

// TestStartHandleExpand verifies expansion of a multi-token highlight from
// the left.
func TestStartHandleExpand(t *testing.T) {
	tokens := sampleTokens()
	set := []Interval{{ID: "h1", Start: 2.0, End: 2.8, Color: "#58a6ff"}}
	var c BoundaryDragController

	c.Begin(tokens[3], set) // first token of the highlight
	target, _ := c.Target()
	if !target.StartHandle || target.EndHandle {
		t.Fatalf("expected start handle only, got %+v", target)
	}

	c.Move(tokens[1]) // expand left through "quick"

	if c.Mode() != DragModeExpand {
		t.Errorf("expected expand mode, got %v", c.Mode())
	}
	newSet, committed := c.End(set)
	if !committed {
		t.Fatal("valid expansion should commit")
	}
	if newSet[0].Start != 0.6 || newSet[0].End != 2.8 {
		t.Errorf("expected [0.6, 2.8], got [%v, %v]", newSet[0].Start, newSet[0].End)
	}
}

// TestDragRevertsOnOverlap verifies that a drag sweeping into a neighboring
// highlight reverts to the exact pre-gesture bounds.
func TestDragRevertsOnOverlap(t *testing.T) {
	tokens := sampleTokens()
	set := []Interval{
		{ID: "h1", Start: 0.6, End: 1.8, Color: "#58a6ff"}, // quick brown
		{ID: "h2", Start: 2.4, End: 2.8, Color: "#3fb950"}, // jumps over
	}
	var c BoundaryDragController

	c.Begin(tokens[2], set) // end handle of h1
	c.Move(tokens[5])       // sweep across h2

	newSet, committed := c.End(set)
	if committed {
		t.Error("drag into a neighbor must not commit")
	}
	if newSet[0].Start != 0.6 || newSet[0].End != 1.8 {
		t.Errorf("h1 must revert exactly, got [%v, %v]", newSet[0].Start, newSet[0].End)
	}
}

// TestDragMidTokenIsInert verifies that grabbing a mid-run token (neither
// boundary) never produces a commit.
func TestDragMidTokenIsInert(t *testing.T) {
	tokens := sampleTokens()
	set := []Interval{{ID: "h1", Start: 2.0, End: 2.8, Color: "#58a6ff"}}
	var c BoundaryDragController

	c.Begin(tokens[4], set) // middle token
	target, _ := c.Target()
	if target.StartHandle || target.EndHandle {
		t.Fatalf("mid-run token should set no handle flags, got %+v", target)
	}

	c.Move(tokens[6])
	if c.Mode() != DragModeNone {
		t.Errorf("handle-less drag should stay in none mode, got %v", c.Mode())
	}
	if _, committed := c.End(set); committed {
		t.Error("handle-less drag must not commit")
	}
}

// TestDragRevertsOnNaNToken verifies that dragging onto a token with
// malformed (NaN) timestamps ends in an exact revert, never a commit with
// poisoned bounds.
func TestDragRevertsOnNaNToken(t *testing.T) {
	tokens := sampleTokens()
	set := []Interval{{ID: "h1", Start: 2.0, End: 2.6, Color: "#58a6ff"}} // fox jumps
	bad := Token{Index: 7, Text: "???", Start: math.NaN(), End: math.NaN()}
	var c BoundaryDragController

	c.Begin(tokens[3], set) // start handle of h1
	c.Move(bad)

	newSet, committed := c.End(set)
	if committed {
		t.Fatal("a NaN-poisoned drag must not commit")
	}
	if newSet[0].Start != 2.0 || newSet[0].End != 2.6 {
		t.Errorf("h1 must revert exactly, got [%v, %v]", newSet[0].Start, newSet[0].End)
	}
	if c.Active() {
		t.Error("drag state must clear after a NaN revert")
	}
}

// TestSingleTokenDragRevertsOnNaNToken covers the both-handles case, where
// the NaN movement sign can pick no direction: the gesture stays a no-op
// and End reverts.
func TestSingleTokenDragRevertsOnNaNToken(t *testing.T) {
	tokens, set := dragFixture()
	bad := Token{Index: 7, Text: "???", Start: math.NaN(), End: math.NaN()}
	var c BoundaryDragController

	c.Begin(tokens[3], set)
	c.Move(bad)

	if c.Mode() != DragModeNone {
		t.Errorf("NaN movement must not classify a direction, got %v", c.Mode())
	}
	newSet, committed := c.End(set)
	if committed {
		t.Fatal("a NaN-poisoned single-token drag must not commit")
	}
	if newSet[0].Start != 2.0 || newSet[0].End != 2.3 {
		t.Errorf("interval must revert exactly, got [%v, %v]", newSet[0].Start, newSet[0].End)
	}
}

// TestDragBeginRequiresCoveredToken verifies the routing precondition.
func TestDragBeginRequiresCoveredToken(t *testing.T) {
	tokens, set := dragFixture()
	var c BoundaryDragController
	if c.Begin(tokens[0], set) {
		t.Error("Begin must refuse an uncovered token")
	}
	if c.Active() {
		t.Error("controller must stay idle after refused Begin")
	}
}
