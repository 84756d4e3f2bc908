package tui

import (
	"fmt"
	"strings"

	"github.com/leomorpho/scribemark/internal/analysis"
	"github.com/leomorpho/scribemark/internal/highlight"
	"github.com/leomorpho/scribemark/pkg/timeutil"

	"github.com/charmbracelet/lipgloss"
)

// renderSidebar renders the right pane: the committed highlight list,
// the pending suggestion queue, and a coverage summary.
func renderSidebar(m *Model, width, height int) string {
	ed := m.editor
	var lines []string

	// ── Highlights ──

	intervals := ed.Intervals()
	lines = append(lines, panelTitleStyle.Render("Highlights")+
		sidebarDimStyle.Render(fmt.Sprintf("  %d", len(intervals))))
	lines = append(lines, "")

	runs := ed.Group()
	shown := 0
	maxHighlights := maxInt(3, (height-10)/2)
	for _, entry := range runs {
		if entry.Kind != highlight.EntryInterval {
			continue
		}
		if shown >= maxHighlights {
			lines = append(lines, sidebarDimStyle.Render(
				fmt.Sprintf("  … %d more", len(intervals)-shown)))
			break
		}
		shown++

		swatch := swatchStyle.
			Foreground(lipgloss.Color(entry.Interval.Color)).
			Render("■")
		span := sidebarDimStyle.Render(
			timeutil.FormatRange(entry.Interval.Start, entry.Interval.End))
		lines = append(lines, fmt.Sprintf("%s %s", swatch, span))

		var words []string
		for _, tok := range entry.Members {
			words = append(words, tok.Text)
		}
		excerpt := truncate(strings.Join(words, " "), width-4)
		lines = append(lines, "  "+sidebarValueStyle.Render(excerpt))
	}
	if len(intervals) == 0 {
		lines = append(lines, sidebarDimStyle.Render("  none yet"))
	}

	// ── Suggestions ──

	suggestions := ed.Suggestions()
	lines = append(lines, "")
	lines = append(lines, panelTitleStyle.Render("Suggestions")+
		sidebarDimStyle.Render(fmt.Sprintf("  %d", len(suggestions))))
	lines = append(lines, "")

	maxSuggestions := 4
	for i, s := range suggestions {
		if i >= maxSuggestions {
			lines = append(lines, sidebarDimStyle.Render(
				fmt.Sprintf("  … %d more", len(suggestions)-i)))
			break
		}
		label := s.Text
		if label == "" {
			label = fmt.Sprintf("tokens %d–%d", s.StartToken, s.EndToken)
		}
		lines = append(lines, "  "+suggestionTextStyle.Render(truncate(label, width-4)))
	}
	if len(suggestions) == 0 {
		lines = append(lines, sidebarDimStyle.Render("  none"))
	}

	// ── Coverage ──

	report := analysis.Coverage(ed.Tokens().Tokens(), intervals)
	lines = append(lines, "")
	lines = append(lines, panelTitleStyle.Render("Coverage"))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  %s %s",
		sidebarLabelStyle.Render("marked"),
		sidebarValueStyle.Render(fmt.Sprintf("%.1f%%", report.CoverageRatio*100))))
	lines = append(lines, fmt.Sprintf("  %s %s",
		sidebarLabelStyle.Render("tokens"),
		sidebarValueStyle.Render(fmt.Sprintf("%d / %d", report.MarkedTokens, report.TokenCount))))
	lines = append(lines, fmt.Sprintf("  %s %s",
		sidebarLabelStyle.Render("time  "),
		sidebarValueStyle.Render(timeutil.FormatSeconds(report.MarkedDuration))))

	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
