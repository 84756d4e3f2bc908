package highlight

import (
	"math"
	"testing"
)

// TestSelectionSweepRight verifies anchor-through-current growth when
// sweeping forward, and the committed result.
func TestSelectionSweepRight(t *testing.T) {
	tokens := sampleTokens()
	used := map[string]bool{}
	var c SelectionController

	if !c.Begin(tokens[1], nil) {
		t.Fatal("Begin should succeed on an uncovered token")
	}
	c.Move(tokens[3])

	start, end, ok := c.Range()
	if !ok || start != 0.6 || end != 2.3 {
		t.Fatalf("preview range = (%v, %v, %v), want (0.6, 2.3, true)", start, end, ok)
	}
	if !c.InPreview(tokens[2]) {
		t.Error("token 2 should be inside the selection preview")
	}
	if c.InPreview(tokens[4]) {
		t.Error("token 4 is outside the selection preview")
	}

	newSet, iv, committed := c.End(nil, used)
	if !committed {
		t.Fatal("valid selection should commit")
	}
	if iv.Start != 0.6 || iv.End != 2.3 {
		t.Errorf("committed bounds = [%v, %v], want [0.6, 2.3]", iv.Start, iv.End)
	}
	if len(newSet) != 1 {
		t.Errorf("expected 1 interval, got %d", len(newSet))
	}
	if c.Active() {
		t.Error("selection state must clear after End")
	}
}

// TestSelectionSweepLeftThenBack verifies that the range shrinks back toward
// the anchor when the pointer returns.
func TestSelectionSweepLeftThenBack(t *testing.T) {
	tokens := sampleTokens()
	var c SelectionController

	c.Begin(tokens[4], nil)
	c.Move(tokens[1]) // sweep left
	start, end, _ := c.Range()
	if start != 0.6 || end != 2.6 {
		t.Errorf("leftward range = (%v, %v), want (0.6, 2.6)", start, end)
	}

	c.Move(tokens[3]) // back toward the anchor
	start, end, _ = c.Range()
	if start != 2.0 || end != 2.6 {
		t.Errorf("shrunk range = (%v, %v), want (2.0, 2.6)", start, end)
	}
}

// TestSelectionDiscardsOnOverlap verifies the silent-rejection policy: a
// selection sweeping over a committed highlight ends as a no-op.
func TestSelectionDiscardsOnOverlap(t *testing.T) {
	tokens := sampleTokens()
	set := []Interval{{ID: "h1", Start: 2.0, End: 2.3, Color: "#58a6ff"}}
	used := map[string]bool{"#58a6ff": true}
	var c SelectionController

	c.Begin(tokens[1], set)
	c.Move(tokens[4]) // sweeps across h1

	newSet, _, committed := c.End(set, used)
	if committed {
		t.Error("overlapping selection must not commit")
	}
	if len(newSet) != 1 {
		t.Errorf("set must be unchanged, got %d intervals", len(newSet))
	}
	if c.Active() {
		t.Error("selection state must clear even on discard")
	}
}

// TestSelectionBeginRefusesCoveredToken verifies gesture routing: selection
// never starts on a token that belongs to a highlight.
func TestSelectionBeginRefusesCoveredToken(t *testing.T) {
	tokens := sampleTokens()
	set := []Interval{{ID: "h1", Start: 2.0, End: 2.3, Color: "#58a6ff"}}
	var c SelectionController

	if c.Begin(tokens[3], set) {
		t.Error("Begin must refuse a covered token")
	}
}

// TestSelectionDiscardsNaNRange verifies that a sweep through a token with
// malformed (NaN) timestamps poisons the pending range and End discards it
// silently instead of committing garbage bounds.
func TestSelectionDiscardsNaNRange(t *testing.T) {
	tokens := sampleTokens()
	bad := Token{Index: 7, Text: "???", Start: math.NaN(), End: math.NaN()}
	set := []Interval{{ID: "h1", Start: 5.0, End: 6.0, Color: "#58a6ff"}}
	used := map[string]bool{"#58a6ff": true}
	var c SelectionController

	c.Begin(tokens[1], set)
	c.Move(bad)

	newSet, _, committed := c.End(set, used)
	if committed {
		t.Fatal("a NaN-poisoned selection must not commit")
	}
	if &newSet[0] != &set[0] {
		t.Error("discard must return the caller's set unchanged")
	}
	if c.Active() {
		t.Error("selection state must clear after a NaN discard")
	}
}

// TestSelectionEndWithoutBegin verifies that End on an idle controller is a
// harmless no-op.
func TestSelectionEndWithoutBegin(t *testing.T) {
	var c SelectionController
	newSet, _, committed := c.End(nil, map[string]bool{})
	if committed || newSet != nil {
		t.Error("End on idle controller must be a no-op")
	}
}
