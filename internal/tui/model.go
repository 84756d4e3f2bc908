package tui

import (
	"fmt"

	"github.com/leomorpho/scribemark/internal/database"
	"github.com/leomorpho/scribemark/internal/highlight"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// Screens
// ────────────────────────────────────────────────────────────

// screen represents which top-level view is showing.
type screen int

const (
	screenProjects screen = iota
	screenEditor
)

// sidebarWidth is the fixed width of the right pane; below
// compactWidth the sidebar is hidden entirely.
const (
	sidebarWidth = 38
	compactWidth = 80
)

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// pendingChanges collects editor commit notifications between Update
// cycles. The editor callbacks fire synchronously inside key handling;
// the model drains this into store commands afterwards. It is a pointer
// so the closures survive BubbleTea's model copying.
type pendingChanges struct {
	intervals          []highlight.WireInterval
	dirty              bool
	removedSuggestions []string
}

// Model is the root BubbleTea model for the Scribemark TUI.
// State is organized by concern; rendering is delegated
// to component functions in separate files.
type Model struct {
	store database.Store

	// Data
	projects []*database.Project
	project  *database.Project
	editor   *highlight.Editor
	pending  *pendingChanges

	// UI state
	screen          screen
	selectedProject int
	cursor          int
	viewport        viewport.Model
	viewportReady   bool
	width           int
	height          int

	// Status
	statusMsg string
	err       error
}

// NewModel creates a new TUI model backed by the given store.
func NewModel(store database.Store) Model {
	return Model{
		store:     store,
		screen:    screenProjects,
		statusMsg: "Loading projects...",
	}
}

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type projectsLoadedMsg []*database.Project

type projectOpenedMsg struct {
	project *database.Project
	editor  *highlight.Editor
	pending *pendingChanges
}

type savedMsg struct{ highlights int }

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return m.loadProjects()
}

func (m Model) loadProjects() tea.Cmd {
	return func() tea.Msg {
		projects, err := m.store.ListProjects()
		if err != nil {
			return errMsg{err}
		}
		return projectsLoadedMsg(projects)
	}
}

// openProject loads a project's tokens, highlights, and suggestions
// and assembles the editor around them.
func (m Model) openProject(projectID string) tea.Cmd {
	return func() tea.Msg {
		project, err := m.store.GetProject(projectID)
		if err != nil {
			return errMsg{err}
		}
		tokens, err := m.store.LoadTokens(projectID)
		if err != nil {
			return errMsg{err}
		}
		highlights, err := m.store.LoadHighlights(projectID)
		if err != nil {
			return errMsg{err}
		}
		suggestions, err := m.store.LoadSuggestions(projectID)
		if err != nil {
			return errMsg{err}
		}

		ed := highlight.NewEditor(tokens)
		ed.LoadIntervals(highlights)
		ed.LoadSuggestions(suggestions)

		pending := &pendingChanges{}
		ed.OnIntervalsChanged = func(ws []highlight.WireInterval) {
			pending.intervals = ws
			pending.dirty = true
		}
		// Accepted and rejected suggestions both leave the overlay for
		// good, so either way the stored row goes away.
		ed.OnSuggestionAccept = func(id string) {
			pending.removedSuggestions = append(pending.removedSuggestions, id)
		}
		ed.OnSuggestionReject = func(id string) {
			pending.removedSuggestions = append(pending.removedSuggestions, id)
		}

		return projectOpenedMsg{project: project, editor: ed, pending: pending}
	}
}

// flushPending turns buffered editor commits into store commands.
func (m *Model) flushPending() tea.Cmd {
	if m.pending == nil {
		return nil
	}
	var cmds []tea.Cmd

	if m.pending.dirty {
		projectID := m.project.ProjectID
		ws := m.pending.intervals
		m.pending.dirty = false
		cmds = append(cmds, func() tea.Msg {
			if err := m.store.ReplaceHighlights(projectID, ws); err != nil {
				return errMsg{err}
			}
			return savedMsg{highlights: len(ws)}
		})
	}

	for _, id := range m.pending.removedSuggestions {
		projectID := m.project.ProjectID
		suggestionID := id
		cmds = append(cmds, func() tea.Msg {
			if err := m.store.DeleteSuggestion(projectID, suggestionID); err != nil {
				return errMsg{err}
			}
			return nil
		})
	}
	m.pending.removedSuggestions = nil

	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		if m.screen == screenEditor {
			m.refreshTranscript()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case projectsLoadedMsg:
		m.projects = []*database.Project(msg)
		if len(m.projects) > 0 {
			m.statusMsg = fmt.Sprintf("%d projects", len(m.projects))
		} else {
			m.statusMsg = "No projects"
		}
		return m, nil

	case projectOpenedMsg:
		m.project = msg.project
		m.editor = msg.editor
		m.pending = msg.pending
		m.cursor = 0
		m.screen = screenEditor
		m.resizeViewport()
		m.refreshTranscript()
		m.statusMsg = fmt.Sprintf("%d tokens  %d highlights  %d suggestions",
			m.editor.Tokens().Len(), len(m.editor.Intervals()),
			len(m.editor.Suggestions()))
		return m, nil

	case savedMsg:
		m.statusMsg = fmt.Sprintf("Saved  %d highlights", msg.highlights)
		return m, nil

	case errMsg:
		m.err = msg.err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input based on current screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// ── Global ──

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	if m.screen == screenProjects {
		return m.handleProjectListKey(key)
	}
	return m.handleEditorKey(key)
}

func (m Model) handleProjectListKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if m.selectedProject < len(m.projects)-1 {
			m.selectedProject++
		}
	case "k", "up":
		if m.selectedProject > 0 {
			m.selectedProject--
		}
	case "enter":
		if m.selectedProject < len(m.projects) {
			return m, m.openProject(m.projects[m.selectedProject].ProjectID)
		}
	case "r":
		return m, m.loadProjects()
	}
	return m, nil
}

func (m Model) handleEditorKey(key string) (tea.Model, tea.Cmd) {
	ed := m.editor

	switch key {

	case "esc":
		if ed.GestureActive() {
			ed.Cancel()
			m.refreshTranscript()
			m.statusMsg = "Gesture canceled"
			return m, nil
		}
		m.screen = screenProjects
		m.statusMsg = ""
		return m, m.loadProjects()

	// ── Cursor movement ──

	case "h", "left":
		m.moveCursor(-1)
		return m, nil
	case "l", "right":
		m.moveCursor(1)
		return m, nil
	case "w":
		m.moveCursor(5)
		return m, nil
	case "b":
		m.moveCursor(-5)
		return m, nil
	case "g", "home":
		m.setCursor(0)
		return m, nil
	case "G", "end":
		m.setCursor(ed.Tokens().Len() - 1)
		return m, nil
	case "j", "down":
		m.viewport.LineDown(1)
		return m, nil
	case "k", "up":
		m.viewport.LineUp(1)
		return m, nil

	// ── Gestures ──

	case "v":
		if ed.GestureActive() {
			ed.End()
		} else {
			ed.Begin(m.cursor)
			if !ed.GestureActive() {
				m.statusMsg = "Cannot start a highlight here"
			}
		}
		m.refreshTranscript()
		return m, m.flushPending()

	case "enter":
		if ed.GestureActive() {
			ed.End()
		} else {
			ed.DoubleActivate(m.cursor)
		}
		m.refreshTranscript()
		return m, m.flushPending()

	case " ", "space":
		ed.DoubleActivate(m.cursor)
		m.refreshTranscript()
		return m, m.flushPending()

	// ── Highlight + suggestion actions ──

	case "x":
		if tok, ok := ed.Tokens().At(m.cursor); ok {
			if iv, covered := highlight.FindCovering(tok, ed.Intervals()); covered {
				ed.DeleteInterval(iv.ID)
				m.refreshTranscript()
				return m, m.flushPending()
			}
		}
		return m, nil

	case "a":
		if s, found := highlight.FindSuggestionForToken(m.cursor, ed.Suggestions()); found {
			before := len(ed.Intervals())
			ed.AcceptSuggestion(s.ID)
			if len(ed.Intervals()) == before {
				m.statusMsg = "Suggestion conflicts with an existing highlight"
			}
			m.refreshTranscript()
			return m, m.flushPending()
		}
		return m, nil

	case "r":
		if s, found := highlight.FindSuggestionForToken(m.cursor, ed.Suggestions()); found {
			ed.RejectSuggestion(s.ID)
			m.refreshTranscript()
			return m, m.flushPending()
		}
		return m, nil
	}

	return m, nil
}

// moveCursor shifts the token cursor, feeding the new position to a
// live gesture so previews track the pointer.
func (m *Model) moveCursor(delta int) {
	m.setCursor(m.cursor + delta)
}

func (m *Model) setCursor(idx int) {
	n := m.editor.Tokens().Len()
	if n == 0 {
		return
	}
	m.cursor = clamp(idx, 0, n-1)
	if m.editor.GestureActive() {
		m.editor.Move(m.cursor)
	}
	m.refreshTranscript()
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)

	var body string
	if m.screen == screenProjects {
		body = renderProjectList(&m)
	} else {
		body = m.renderEditorLayout()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderEditorLayout assembles the transcript pane and, when the
// terminal is wide enough, the sidebar.
func (m Model) renderEditorLayout() string {
	bodyHeight := m.height - 2 // header + footer

	transcript := panelStyle.
		Width(m.transcriptWidth()).
		Height(bodyHeight).
		Render(m.viewport.View())

	if m.width < compactWidth {
		return transcript
	}

	sidebar := panelStyle.
		Width(sidebarWidth).
		Height(bodyHeight).
		Render(renderSidebar(&m, sidebarWidth-2, bodyHeight-1))

	return lipgloss.JoinHorizontal(lipgloss.Top, transcript, sidebar)
}

// transcriptWidth is the outer width of the transcript panel.
func (m Model) transcriptWidth() int {
	if m.width < compactWidth {
		return m.width
	}
	return m.width - sidebarWidth
}

func (m *Model) resizeViewport() {
	w := m.transcriptWidth() - 2 // panel padding
	h := m.height - 3            // header, footer, panel border
	if w < 10 {
		w = 10
	}
	if h < 3 {
		h = 3
	}
	if !m.viewportReady {
		m.viewport = viewport.New(w, h)
		m.viewportReady = true
		return
	}
	m.viewport.Width = w
	m.viewport.Height = h
}

// refreshTranscript re-renders the token flow and keeps the cursor
// line inside the viewport.
func (m *Model) refreshTranscript() {
	if m.editor == nil || !m.viewportReady {
		return
	}
	content, cursorLine := renderTranscript(m.editor, m.cursor, m.viewport.Width)
	m.viewport.SetContent(content)

	if cursorLine < m.viewport.YOffset {
		m.viewport.SetYOffset(cursorLine)
	} else if cursorLine >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(cursorLine - m.viewport.Height + 1)
	}
}
