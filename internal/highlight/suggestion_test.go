package highlight

import "testing"

func suggestionFixture() ([]Suggestion, *TokenIndex) {
	overlay := []Suggestion{
		{ID: "s1", StartToken: 1, EndToken: 3, Text: "quick brown fox", Color: "#bc8cff"},
		{ID: "s2", StartToken: 5, EndToken: 6, Text: "over lazily", Color: ""},
	}
	return overlay, NewTokenIndex(sampleTokens())
}

// TestFindSuggestionForToken verifies inclusive token-range lookup.
func TestFindSuggestionForToken(t *testing.T) {
	overlay, _ := suggestionFixture()

	if s, ok := FindSuggestionForToken(2, overlay); !ok || s.ID != "s1" {
		t.Errorf("token 2 should resolve to s1, got %+v ok=%v", s, ok)
	}
	if s, ok := FindSuggestionForToken(5, overlay); !ok || s.ID != "s2" {
		t.Errorf("token 5 should resolve to s2, got %+v ok=%v", s, ok)
	}
	if _, ok := FindSuggestionForToken(4, overlay); ok {
		t.Error("token 4 is covered by no suggestion")
	}
}

// TestAcceptSuggestion verifies the token-index → timestamp conversion at the
// accept boundary and removal from the overlay.
func TestAcceptSuggestion(t *testing.T) {
	overlay, tokens := suggestionFixture()
	used := map[string]bool{}

	newSet, newOverlay, iv, ok := AcceptSuggestion(overlay[0], overlay, nil, tokens, used)
	if !ok {
		t.Fatal("accept with no conflicts should succeed")
	}
	if iv.Start != 0.6 || iv.End != 2.3 {
		t.Errorf("materialized bounds = [%v, %v], want [0.6, 2.3]", iv.Start, iv.End)
	}
	if iv.Color != "#bc8cff" {
		t.Errorf("suggestion color should carry over, got %s", iv.Color)
	}
	if len(newSet) != 1 {
		t.Errorf("expected 1 interval, got %d", len(newSet))
	}
	if len(newOverlay) != 1 || newOverlay[0].ID != "s2" {
		t.Errorf("s1 should leave the overlay, got %+v", newOverlay)
	}
	if len(overlay) != 2 {
		t.Error("input overlay mutated by accept")
	}
}

// TestAcceptSuggestionConflictKeepsSuggestion verifies that an accept whose
// range overlaps a committed highlight is rejected and the suggestion stays
// for manual resolution.
func TestAcceptSuggestionConflictKeepsSuggestion(t *testing.T) {
	overlay, tokens := suggestionFixture()
	set := []Interval{{ID: "h1", Start: 1.5, End: 2.5, Color: "#58a6ff"}}
	used := map[string]bool{"#58a6ff": true}

	newSet, newOverlay, _, ok := AcceptSuggestion(overlay[0], overlay, set, tokens, used)
	if ok {
		t.Error("conflicting accept must fail")
	}
	if len(newSet) != 1 {
		t.Errorf("interval set must be unchanged, got %d", len(newSet))
	}
	if len(newOverlay) != 2 {
		t.Errorf("suggestion must stay in the overlay, got %d", len(newOverlay))
	}
}

// TestRejectSuggestionIdempotent verifies that rejecting twice is a no-op,
// not an error.
func TestRejectSuggestionIdempotent(t *testing.T) {
	overlay, _ := suggestionFixture()

	once := RejectSuggestion("s1", overlay)
	if len(once) != 1 {
		t.Fatalf("expected 1 suggestion after reject, got %d", len(once))
	}
	twice := RejectSuggestion("s1", once)
	if len(twice) != 1 {
		t.Errorf("second reject must be a no-op, got %d", len(twice))
	}
	if &twice[0] != &once[0] {
		t.Error("no-op reject should return the input overlay unchanged")
	}
	if len(overlay) != 2 {
		t.Error("input overlay mutated by reject")
	}
}
