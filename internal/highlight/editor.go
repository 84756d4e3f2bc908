package highlight

// Editor is the session boundary around the pure engine. It owns the current
// interval slice, the used-color set, and the suggestion overlay, routes the
// three gesture primitives to the right controller, and notifies the host
// once per committed change — never for intermediate preview states.
//
// At most one gesture is active at a time; Begin while a gesture is live is
// ignored. The Editor is single-threaded by contract, like the rest of the
// engine.
type Editor struct {
	tokens      *TokenIndex
	intervals   []Interval
	suggestions []Suggestion
	usedColors  map[string]bool

	selection SelectionController
	drag      BoundaryDragController

	// OnIntervalsChanged receives the full current highlight list in
	// persisted shape, once per committed create/update/delete.
	OnIntervalsChanged func([]WireInterval)
	// OnSuggestionAccept and OnSuggestionReject inform the host after the
	// overlay's local accept/reject behavior has run.
	OnSuggestionAccept func(id string)
	OnSuggestionReject func(id string)
}

// NewEditor creates an editor over an ordered token sequence with no
// highlights and no suggestions. Each editor owns its own color pool; two
// editors never contend.
func NewEditor(tokens []Token) *Editor {
	return &Editor{
		tokens:     NewTokenIndex(tokens),
		usedColors: make(map[string]bool),
	}
}

// LoadIntervals replaces the highlight state from persisted wire shape,
// rebuilding the used-color set. No change notification fires: this is
// ingress, not a user edit.
func (e *Editor) LoadIntervals(ws []WireInterval) {
	e.intervals = make([]Interval, 0, len(ws))
	e.usedColors = make(map[string]bool, len(ws))
	for _, w := range ws {
		iv := fromWireInterval(w)
		e.intervals = append(e.intervals, iv)
		if iv.Color != "" {
			e.usedColors[iv.Color] = true
		}
	}
}

// LoadSuggestions replaces the suggestion overlay wholesale from wire shape.
func (e *Editor) LoadSuggestions(ws []WireSuggestion) {
	e.suggestions = make([]Suggestion, 0, len(ws))
	for _, w := range ws {
		e.suggestions = append(e.suggestions, fromWireSuggestion(w))
	}
}

// Tokens returns the editor's token index.
func (e *Editor) Tokens() *TokenIndex { return e.tokens }

// Intervals returns the current committed highlight set.
func (e *Editor) Intervals() []Interval { return e.intervals }

// Suggestions returns the current suggestion overlay.
func (e *Editor) Suggestions() []Suggestion { return e.suggestions }

// WireIntervals returns the committed set in persisted shape.
func (e *Editor) WireIntervals() []WireInterval { return toWire(e.intervals) }

// GestureActive reports whether either gesture controller is live.
func (e *Editor) GestureActive() bool {
	return e.selection.Active() || e.drag.Active()
}

// Begin starts a gesture at the given token index. A token already covered
// by a highlight arms a boundary drag; an uncovered token starts a range
// selection. Out-of-range indices are ignored.
func (e *Editor) Begin(tokenIdx int) {
	if e.GestureActive() {
		return
	}
	tok, ok := e.tokens.At(tokenIdx)
	if !ok {
		return
	}
	if _, covered := FindCovering(tok, e.intervals); covered {
		e.drag.Begin(tok, e.intervals)
		return
	}
	e.selection.Begin(tok, e.intervals)
}

// Move forwards pointer movement to whichever gesture is active.
func (e *Editor) Move(tokenIdx int) {
	tok, ok := e.tokens.At(tokenIdx)
	if !ok {
		return
	}
	switch {
	case e.selection.Active():
		e.selection.Move(tok)
	case e.drag.Active():
		e.drag.Move(tok)
	}
}

// End completes the active gesture. A commit fires one change notification;
// a revert or discard fires none.
func (e *Editor) End() {
	switch {
	case e.selection.Active():
		newSet, iv, committed := e.selection.End(e.intervals, e.usedColors)
		if committed {
			e.intervals = newSet
			e.usedColors[iv.Color] = true
			e.notifyChanged()
		}
	case e.drag.Active():
		newSet, committed := e.drag.End(e.intervals)
		if committed {
			e.intervals = newSet
			e.notifyChanged()
		}
	}
}

// Cancel abandons the active gesture without committing anything. The
// committed set is untouched and no notification fires.
func (e *Editor) Cancel() {
	e.selection = SelectionController{}
	e.drag = BoundaryDragController{}
}

// DoubleActivate is the direct action on a single token: if a suggestion
// covers the token it is accepted — suggestion precedence over interval
// creation. Otherwise, an uncovered token becomes a single-token highlight,
// subject to the usual overlap check.
func (e *Editor) DoubleActivate(tokenIdx int) {
	tok, ok := e.tokens.At(tokenIdx)
	if !ok {
		return
	}
	if s, found := FindSuggestionForToken(tokenIdx, e.suggestions); found {
		e.AcceptSuggestion(s.ID)
		return
	}
	if _, covered := FindCovering(tok, e.intervals); covered {
		return
	}
	if CheckOverlap(tok.Start, tok.End, e.intervals, "") {
		return
	}
	newSet, iv := Add(e.intervals, tok.Start, tok.End, e.usedColors, "")
	e.intervals = newSet
	e.usedColors[iv.Color] = true
	e.notifyChanged()
}

// AcceptSuggestion materializes the suggestion with the given ID. On success
// the suggestion leaves the overlay, the host's accept handler (if any) is
// informed, and one change notification fires. On overlap conflict nothing
// changes and the suggestion stays.
func (e *Editor) AcceptSuggestion(id string) {
	var s Suggestion
	found := false
	for i := range e.suggestions {
		if e.suggestions[i].ID == id {
			s = e.suggestions[i]
			found = true
			break
		}
	}
	if !found {
		return
	}
	newSet, newOverlay, iv, ok := AcceptSuggestion(s, e.suggestions, e.intervals, e.tokens, e.usedColors)
	if !ok {
		return
	}
	e.intervals = newSet
	e.suggestions = newOverlay
	e.usedColors[iv.Color] = true
	if e.OnSuggestionAccept != nil {
		e.OnSuggestionAccept(id)
	}
	e.notifyChanged()
}

// RejectSuggestion discards the suggestion with the given ID. Rejecting an
// already-removed ID is a no-op. No interval is created and no interval
// change notification fires.
func (e *Editor) RejectSuggestion(id string) {
	newOverlay := RejectSuggestion(id, e.suggestions)
	if len(newOverlay) == len(e.suggestions) {
		return
	}
	e.suggestions = newOverlay
	if e.OnSuggestionReject != nil {
		e.OnSuggestionReject(id)
	}
}

// DeleteInterval removes a highlight and recycles its color. Deleting an
// unknown ID is a no-op.
func (e *Editor) DeleteInterval(id string) {
	var color string
	found := false
	for i := range e.intervals {
		if e.intervals[i].ID == id {
			color = e.intervals[i].Color
			found = true
			break
		}
	}
	if !found {
		return
	}
	e.intervals = Remove(e.intervals, id)
	delete(e.usedColors, color)
	e.notifyChanged()
}

// Group returns the current display runs over the committed set.
func (e *Editor) Group() []Entry {
	return Group(e.tokens.Tokens(), e.intervals)
}

// InSelectionPreview reports whether tok is inside a live selection range.
func (e *Editor) InSelectionPreview(tok Token) bool {
	return e.selection.InPreview(tok)
}

// InExpansionPreview reports whether a live drag would add tok.
func (e *Editor) InExpansionPreview(tok Token) bool {
	return e.drag.InExpansionPreview(tok)
}

// InContractionPreview reports whether a live drag would remove tok.
func (e *Editor) InContractionPreview(tok Token) bool {
	return e.drag.InContractionPreview(tok)
}

// DragTarget exposes the live drag target for renderers.
func (e *Editor) DragTarget() (DragTarget, bool) {
	return e.drag.Target()
}

func (e *Editor) notifyChanged() {
	if e.OnIntervalsChanged != nil {
		e.OnIntervalsChanged(toWire(e.intervals))
	}
}
