// Package importer brings externally produced transcripts into Scribemark.
//
// It parses whisper-style word-timestamped JSON — either a flat word list or
// segments carrying their own word lists — normalizes the timestamps, and
// loads the result into the project store. Malformed entries are repaired or
// dropped, never fatal: transcription tools disagree enough about edge cases
// that strictness here just loses data.
package importer

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/leomorpho/scribemark/internal/database"
	"github.com/leomorpho/scribemark/internal/highlight"
)

// wireWord is one timestamped word as transcription tools emit it.
type wireWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// transcriptFile accepts the two common shapes: a top-level word list, or
// whisper's segments each carrying words.
type transcriptFile struct {
	Words    []wireWord `json:"words"`
	Segments []struct {
		Words []wireWord `json:"words"`
	} `json:"segments"`
}

// ParseTranscript decodes transcript JSON into a normalized token sequence.
func ParseTranscript(data []byte) ([]highlight.Token, error) {
	var tf transcriptFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing transcript JSON: %w", err)
	}

	words := tf.Words
	if len(words) == 0 {
		for _, seg := range tf.Segments {
			words = append(words, seg.Words...)
		}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("transcript contains no timestamped words")
	}

	return Normalize(words), nil
}

// Normalize repairs and orders raw words into engine tokens:
//
//   - blank words are dropped
//   - negative timestamps clamp to 0
//   - a reversed word (end before start) collapses to its start
//   - words sort by start time and are re-indexed sequentially
//
// The resulting indices are the token-index coordinate system the rest of
// the application relies on, so they must be dense and ordered.
func Normalize(words []wireWord) []highlight.Token {
	cleaned := make([]wireWord, 0, len(words))
	for _, w := range words {
		text := strings.TrimSpace(w.Word)
		if text == "" {
			continue
		}
		if w.Start < 0 {
			w.Start = 0
		}
		if w.End < w.Start {
			w.End = w.Start
		}
		w.Word = text
		cleaned = append(cleaned, w)
	}

	sort.SliceStable(cleaned, func(i, j int) bool {
		return cleaned[i].Start < cleaned[j].Start
	})

	tokens := make([]highlight.Token, len(cleaned))
	for i, w := range cleaned {
		tokens[i] = highlight.Token{
			Index: i,
			Text:  w.Word,
			Start: w.Start,
			End:   w.End,
		}
	}
	return tokens
}

// ImportFile parses a transcript file and creates a new project holding its
// tokens. Returns the created project.
func ImportFile(store database.Store, name, path string) (*database.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading transcript %s: %w", path, err)
	}

	tokens, err := ParseTranscript(data)
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", path, err)
	}

	p := &database.Project{
		ProjectID: uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UnixNano(),
	}
	if err := store.CreateProject(p); err != nil {
		return nil, err
	}
	if err := store.ReplaceTokens(p.ProjectID, tokens); err != nil {
		return nil, fmt.Errorf("storing tokens for %s: %w", p.ProjectID, err)
	}
	return p, nil
}

// ImportSuggestions parses a suggestion file in wire shape and replaces the
// project's overlay. Suggestions with missing IDs get generated ones; token
// ranges are clamped into the project's token count.
func ImportSuggestions(store database.Store, projectID, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading suggestions %s: %w", path, err)
	}

	ss, err := highlight.DecodeWireSuggestions(data)
	if err != nil {
		return 0, fmt.Errorf("parsing suggestions %s: %w", path, err)
	}

	tokens, err := store.LoadTokens(projectID)
	if err != nil {
		return 0, err
	}

	cleaned := make([]highlight.WireSuggestion, 0, len(ss))
	for _, sg := range ss {
		if sg.ID == "" {
			sg.ID = uuid.NewString()
		}
		if n := len(tokens); n > 0 {
			sg.Start = clamp(sg.Start, 0, n-1)
			sg.End = clamp(sg.End, 0, n-1)
		}
		if sg.End < sg.Start {
			sg.Start, sg.End = sg.End, sg.Start
		}
		cleaned = append(cleaned, sg)
	}

	if err := store.ReplaceSuggestions(projectID, cleaned); err != nil {
		return 0, err
	}
	return len(cleaned), nil
}

// ImportHighlights restores a project's highlight list from an exported
// JSON file, the inverse of the CLI export. Entries are sanitized on the
// way in: missing IDs are generated, missing colors allocated, degenerate
// or malformed ranges dropped, and an entry overlapping an already-kept one
// is dropped so the stored set keeps the non-overlap invariant.
func ImportHighlights(store database.Store, projectID, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading highlights %s: %w", path, err)
	}

	// Accept either a bare highlight array or the export envelope.
	ws, err := highlight.DecodeWireIntervals(data)
	if err != nil {
		var envelope struct {
			Highlights []highlight.WireInterval `json:"highlights"`
		}
		if envErr := json.Unmarshal(data, &envelope); envErr != nil || envelope.Highlights == nil {
			return 0, fmt.Errorf("parsing highlights %s: %w", path, err)
		}
		ws = envelope.Highlights
	}

	used := make(map[string]bool)
	var kept []highlight.Interval
	cleaned := make([]highlight.WireInterval, 0, len(ws))
	for _, w := range ws {
		if math.IsNaN(w.Start) || math.IsNaN(w.End) || w.End <= w.Start {
			continue
		}
		if highlight.CheckOverlap(w.Start, w.End, kept, "") {
			continue
		}
		if w.ID == "" {
			w.ID = uuid.NewString()
		}
		if w.Color == "" {
			w.Color = highlight.AllocateColor(used)
		}
		used[w.Color] = true
		kept = append(kept, highlight.Interval{ID: w.ID, Start: w.Start, End: w.End, Color: w.Color})
		cleaned = append(cleaned, w)
	}

	if err := store.ReplaceHighlights(projectID, cleaned); err != nil {
		return 0, err
	}
	return len(cleaned), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
