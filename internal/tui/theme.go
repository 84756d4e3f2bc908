package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette — GitHub Dark aesthetic
// ────────────────────────────────────────────────────────────
//
// Chrome colors are defined here. Highlight backgrounds are NOT:
// those come from each interval's own persisted color, so the
// transcript view builds its styles at render time.

var (
	// Base
	colorBg        = lipgloss.Color("#0d1117")
	colorBgSurface = lipgloss.Color("#1c2128")

	// Text
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")

	// Accents
	colorBlue   = lipgloss.Color("#58a6ff")
	colorGreen  = lipgloss.Color("#3fb950")
	colorRed    = lipgloss.Color("#f85149")
	colorYellow = lipgloss.Color("#d29922")

	// Structural
	colorDivider   = lipgloss.Color("#30363d")
	colorHighlight = lipgloss.Color("#1f6feb")
)

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// Panel chrome
var (
	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.Border{
			Top:    "─",
			Bottom: "",
			Left:   "",
			Right:  "",
		}).
		BorderForeground(colorDivider)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)
)

// Transcript flow
var (
	wordStyle = lipgloss.NewStyle().
			Foreground(colorText)

	selectionPreviewStyle = lipgloss.NewStyle().
				Background(colorHighlight).
				Foreground(colorText)

	expandPreviewStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Underline(true)

	contractPreviewStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Strikethrough(true)

	suggestionWordStyle = lipgloss.NewStyle().
				Underline(true)
)

// Sidebar
var (
	sidebarLabelStyle = lipgloss.NewStyle().
				Foreground(colorBlue)

	sidebarValueStyle = lipgloss.NewStyle().
				Foreground(colorText)

	sidebarDimStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	swatchStyle = lipgloss.NewStyle().
			Bold(true)

	suggestionTextStyle = lipgloss.NewStyle().
				Foreground(colorYellow)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Padding(2, 4)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Background(colorBgSurface).
			Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)

// Project list
var (
	projectItemStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Padding(0, 1)

	projectSelectedStyle = lipgloss.NewStyle().
				Background(colorHighlight).
				Foreground(colorText).
				Bold(true).
				Padding(0, 1)

	projectDimStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)
