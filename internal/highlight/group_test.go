package highlight

import "testing"

// TestGroupMergesRuns verifies the grouping example: seven tokens with
// highlights over tokens 1–2 and 5–6 produce exactly five entries.
func TestGroupMergesRuns(t *testing.T) {
	tokens := sampleTokens()
	set := []Interval{
		{ID: "h1", Start: 0.6, End: 1.8, Color: "#58a6ff"}, // quick brown
		{ID: "h2", Start: 2.7, End: 3.3, Color: "#3fb950"}, // over lazily
	}

	entries := Group(tokens, set)
	if len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(entries))
	}

	wantKinds := []EntryKind{EntryToken, EntryInterval, EntryToken, EntryToken, EntryInterval}
	for i, want := range wantKinds {
		if entries[i].Kind != want {
			t.Errorf("entry %d: kind = %v, want %v", i, entries[i].Kind, want)
		}
	}

	if entries[1].Interval.ID != "h1" || entries[1].StartIndex != 1 || len(entries[1].Members) != 2 {
		t.Errorf("entry 1 should be the h1 run over tokens 1-2, got %+v", entries[1])
	}
	if entries[4].Interval.ID != "h2" || entries[4].StartIndex != 5 || len(entries[4].Members) != 2 {
		t.Errorf("entry 4 should be the h2 run over tokens 5-6, got %+v", entries[4])
	}

	// count(groups) == count(tokens) − Σ(members − 1)
	merged := 0
	for _, e := range entries {
		if e.Kind == EntryInterval {
			merged += len(e.Members) - 1
		}
	}
	if len(entries) != len(tokens)-merged {
		t.Errorf("group count formula broken: %d entries, %d tokens, %d merged",
			len(entries), len(tokens), merged)
	}
}

// TestGroupNoIntervals verifies that bare tokens come back as singleton
// entries in original order.
func TestGroupNoIntervals(t *testing.T) {
	tokens := sampleTokens()
	entries := Group(tokens, nil)

	if len(entries) != len(tokens) {
		t.Fatalf("expected %d entries, got %d", len(tokens), len(entries))
	}
	for i, e := range entries {
		if e.Kind != EntryToken || e.Index != i || e.Token.Index != i {
			t.Errorf("entry %d out of order: %+v", i, e)
		}
	}
}

// TestGroupAdjacentDistinctIntervals verifies that two different highlights
// on adjacent tokens stay separate entries.
func TestGroupAdjacentDistinctIntervals(t *testing.T) {
	tokens := sampleTokens()
	set := []Interval{
		{ID: "h1", Start: 0.6, End: 1.2, Color: "#58a6ff"}, // quick
		{ID: "h2", Start: 1.3, End: 1.8, Color: "#3fb950"}, // brown
	}

	entries := Group(tokens, set)
	if len(entries) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(entries))
	}
	if entries[1].Interval.ID != "h1" || entries[2].Interval.ID != "h2" {
		t.Errorf("adjacent distinct highlights merged: %+v / %+v", entries[1], entries[2])
	}
}

// TestGroupEmptyTokens verifies the degenerate input.
func TestGroupEmptyTokens(t *testing.T) {
	if entries := Group(nil, testSet()); entries != nil {
		t.Errorf("expected nil entries for empty tokens, got %+v", entries)
	}
}
