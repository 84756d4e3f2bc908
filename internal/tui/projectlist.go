package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/leomorpho/scribemark/pkg/timeutil"

	"github.com/charmbracelet/lipgloss"
)

// renderProjectList renders the project selection screen.
func renderProjectList(m *Model) string {
	if len(m.projects) == 0 {
		empty := emptyStateStyle.Render(
			"No projects found.\n\n" +
				"Import a transcript first:\n" +
				"  scribemark import --name my-interview transcript.json")
		return lipgloss.Place(
			m.width,
			m.height-3, // minus header + footer
			lipgloss.Center,
			lipgloss.Center,
			empty,
		)
	}

	title := panelTitleStyle.Render("Projects")
	count := projectDimStyle.Render(fmt.Sprintf("  %d total", len(m.projects)))
	heading := title + count

	var lines []string
	lines = append(lines, heading)
	lines = append(lines, "")

	// Visible range for scrolling
	maxVisible := m.height - 6
	if maxVisible < 5 {
		maxVisible = 5
	}

	startIdx := 0
	if m.selectedProject >= maxVisible {
		startIdx = m.selectedProject - maxVisible + 1
	}
	endIdx := startIdx + maxVisible
	if endIdx > len(m.projects) {
		endIdx = len(m.projects)
	}

	for i := startIdx; i < endIdx; i++ {
		p := m.projects[i]

		id := projectDimStyle.Render(shortID(p.ProjectID, 8))
		age := projectDimStyle.Render(timeutil.RelativeTime(time.Unix(0, p.CreatedAt)))

		content := fmt.Sprintf("%s  %s  %s", p.Name, id, age)

		if i == m.selectedProject {
			lines = append(lines, projectSelectedStyle.Width(m.width-4).Render(content))
		} else {
			lines = append(lines, projectItemStyle.Width(m.width-4).Render(content))
		}
	}

	return strings.Join(lines, "\n")
}
