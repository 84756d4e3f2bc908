package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader produces the top bar:
//
//	SCRIBEMARK  |  interview-04  |  412 tokens  |  6 highlights
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("SCRIBEMARK")
	sep := headerSepStyle.Render(" │ ")

	var parts []string
	parts = append(parts, brand)

	if m.screen == screenEditor && m.project != nil {
		parts = append(parts, sep)
		parts = append(parts, headerMetaStyle.Render(m.project.Name))
		parts = append(parts, sep)
		parts = append(parts, headerMetaStyle.Render(
			fmt.Sprintf("%d tokens", m.editor.Tokens().Len())))
		parts = append(parts, sep)
		parts = append(parts, headerMetaStyle.Render(
			fmt.Sprintf("%d highlights", len(m.editor.Intervals()))))
	} else {
		parts = append(parts, sep)
		parts = append(parts, headerMetaStyle.Render("Projects"))
	}

	content := strings.Join(parts, "")

	return headerBarStyle.Width(m.width).Render(content)
}

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model) string {
	var left, right string

	if m.statusMsg != "" {
		if m.err != nil {
			left = statusErrStyle.Render(m.statusMsg)
		} else {
			left = statusStyle.Render(m.statusMsg)
		}
	}

	switch {
	case m.screen == screenProjects:
		right = renderHints([]hint{
			{"↑↓", "navigate"},
			{"enter", "open"},
			{"r", "reload"},
			{"q", "quit"},
		})
	case m.editor != nil && m.editor.GestureActive():
		right = renderHints([]hint{
			{"←→", "extend"},
			{"v/enter", "commit"},
			{"esc", "cancel"},
		})
	default:
		right = renderHints([]hint{
			{"←→", "move"},
			{"v", "highlight"},
			{"enter", "mark word"},
			{"x", "delete"},
			{"a/r", "suggestion"},
			{"esc", "back"},
			{"q", "quit"},
		})
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		Render(bar)
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
