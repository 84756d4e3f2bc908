// Package tui implements the Scribemark terminal user interface.
//
// This is a keyboard-driven transcript highlighter built with
// Charmbracelet's BubbleTea, Lipgloss, and Bubbles libraries.
//
// Component architecture:
//
//	model.go       — root model, message routing, Init/Update
//	theme.go       — centralized color + style definitions
//	header.go      — top bar + status line with keyboard hints
//	transcript.go  — token flow with highlight runs and gesture previews
//	sidebar.go     — highlight list, suggestion queue, coverage summary
//	projectlist.go — project selector (initial screen)
//	helpers.go     — wrapping, truncation, etc.
package tui
