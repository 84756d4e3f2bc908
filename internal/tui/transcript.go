package tui

import (
	"strings"

	"github.com/leomorpho/scribemark/internal/highlight"

	"github.com/charmbracelet/lipgloss"
)

// renderTranscript lays the token flow out as wrapped, styled text and
// reports which line the cursor token landed on so the viewport can
// follow it.
//
// Highlighted runs render as contiguous words sharing the interval's
// own background color. Live gesture previews restyle the affected
// words without touching committed state.
func renderTranscript(ed *highlight.Editor, cursor, width int) (string, int) {
	if ed.Tokens().Len() == 0 {
		return emptyStateStyle.Render("This project has no tokens."), 0
	}
	if width < 10 {
		width = 10
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	cursorLine := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}

	appendWord := func(styled string, plainWidth, tokenIdx int) {
		if lineWidth > 0 && lineWidth+1+plainWidth > width {
			flush()
		}
		if lineWidth > 0 {
			line.WriteString(" ")
			lineWidth++
		}
		line.WriteString(styled)
		lineWidth += plainWidth
		if tokenIdx == cursor {
			cursorLine = len(lines)
		}
	}

	for _, entry := range ed.Group() {
		switch entry.Kind {
		case highlight.EntryInterval:
			for _, tok := range entry.Members {
				st := styleForHighlighted(ed, entry.Interval, tok)
				if tok.Index == cursor {
					st = st.Reverse(true).Bold(true)
				}
				appendWord(st.Render(tok.Text), len([]rune(tok.Text)), tok.Index)
			}
		case highlight.EntryToken:
			tok := entry.Token
			st := styleForPlain(ed, tok)
			if tok.Index == cursor {
				st = st.Reverse(true).Bold(true)
			}
			appendWord(st.Render(tok.Text), len([]rune(tok.Text)), tok.Index)
		}
	}
	if lineWidth > 0 {
		flush()
	}

	return strings.Join(lines, "\n"), cursorLine
}

// styleForHighlighted styles a word inside a committed highlight run. A
// live drag that would shed the word overrides the run's background.
func styleForHighlighted(ed *highlight.Editor, iv highlight.Interval, tok highlight.Token) lipgloss.Style {
	if ed.InContractionPreview(tok) {
		return contractPreviewStyle
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(iv.Color)).
		Foreground(colorBg)
}

// styleForPlain styles an uncovered word: gesture previews first, then
// the suggestion overlay, then plain text.
func styleForPlain(ed *highlight.Editor, tok highlight.Token) lipgloss.Style {
	if ed.InSelectionPreview(tok) {
		return selectionPreviewStyle
	}
	if ed.InExpansionPreview(tok) {
		return expandPreviewStyle
	}
	if s, found := highlight.FindSuggestionForToken(tok.Index, ed.Suggestions()); found {
		st := suggestionWordStyle
		if s.Color != "" {
			st = st.Foreground(lipgloss.Color(s.Color))
		} else {
			st = st.Foreground(colorYellow)
		}
		return st
	}
	return wordStyle
}
