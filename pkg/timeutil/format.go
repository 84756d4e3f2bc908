// Package timeutil provides time formatting utilities for Scribemark.
//
// All transcript timestamps are stored as seconds from the start of the
// audio (float64). This package handles conversion to human-readable
// formats for the TUI and report generation.
package timeutil

import (
	"fmt"
	"time"
)

// FormatSeconds formats a duration given in seconds to a compact
// human-readable string. Examples: "450ms", "1.2s", "2m 15.3s", "1h 04m".
func FormatSeconds(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	switch {
	case seconds < 1:
		return fmt.Sprintf("%dms", int(seconds*1000))
	case seconds < 60:
		return fmt.Sprintf("%.1fs", seconds)
	case seconds < 3600:
		minutes := int(seconds / 60)
		remaining := seconds - float64(minutes*60)
		return fmt.Sprintf("%dm %.1fs", minutes, remaining)
	default:
		hours := int(seconds / 3600)
		minutes := int(seconds/60) % 60
		return fmt.Sprintf("%dh %02dm", hours, minutes)
	}
}

// FormatClock formats a position in the audio as a clock offset.
// Format: "MM:SS.m" below an hour, "H:MM:SS.m" above.
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	tenths := int(seconds*10) % 10
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d.%d", h, m, s, tenths)
	}
	return fmt.Sprintf("%02d:%02d.%d", m, s, tenths)
}

// FormatRange formats a time span within the audio.
// Example: "00:02.0 – 00:02.8".
func FormatRange(start, end float64) string {
	return fmt.Sprintf("%s – %s", FormatClock(start), FormatClock(end))
}

// RelativeTime returns a human-readable relative time string for
// wall-clock timestamps, used in the project list.
// Examples: "just now", "5s ago", "2m ago", "1h ago"
func RelativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Second:
		return "just now"
	case diff < time.Minute:
		return fmt.Sprintf("%ds ago", int(diff.Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%dd ago", days)
	}
}
