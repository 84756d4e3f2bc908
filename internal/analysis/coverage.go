// Package analysis provides lightweight, deterministic reporting over a
// project's highlight state. All analysis is pure arithmetic over tokens and
// intervals — no I/O is involved.
//
// Key capabilities:
//   - Highlight coverage: how much of the speech time is marked
//   - Per-color run accounting
//   - Largest unmarked gap detection, for "did I miss anything?" review
package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/leomorpho/scribemark/internal/highlight"
	"github.com/leomorpho/scribemark/pkg/timeutil"
)

// ColorUsage accounts for one highlight color in a project.
type ColorUsage struct {
	Color    string  `json:"color"`
	Runs     int     `json:"runs"`
	Duration float64 `json:"duration_seconds"`
}

// CoverageReport summarizes how a transcript has been annotated.
type CoverageReport struct {
	TokenCount       int          `json:"token_count"`
	HighlightCount   int          `json:"highlight_count"`
	SpeechDuration   float64      `json:"speech_duration_seconds"`
	MarkedDuration   float64      `json:"marked_duration_seconds"`
	CoverageRatio    float64      `json:"coverage_ratio"`
	MarkedTokens     int          `json:"marked_tokens"`
	LargestGapStart  float64      `json:"largest_gap_start"`
	LargestGapEnd    float64      `json:"largest_gap_end"`
	LargestGapTokens int          `json:"largest_gap_tokens"`
	Colors           []ColorUsage `json:"colors"`
}

// Coverage computes the annotation report for a token sequence and its
// committed highlight set. Because committed highlights never overlap, the
// marked duration is a plain sum.
func Coverage(tokens []highlight.Token, set []highlight.Interval) *CoverageReport {
	report := &CoverageReport{
		TokenCount:     len(tokens),
		HighlightCount: len(set),
	}
	if len(tokens) == 0 {
		return report
	}

	report.SpeechDuration = tokens[len(tokens)-1].End - tokens[0].Start

	for _, iv := range set {
		report.MarkedDuration += iv.End - iv.Start
	}
	if report.SpeechDuration > 0 {
		ratio := report.MarkedDuration / report.SpeechDuration
		report.CoverageRatio = math.Round(ratio*1000) / 1000
	}

	// Walk the display runs once: marked token counts, per-color usage, and
	// the largest contiguous unmarked token gap all fall out of the same scan.
	usage := make(map[string]*ColorUsage)
	gapStartIdx := -1
	flushGap := func(endIdx int) {
		if gapStartIdx < 0 {
			return
		}
		n := endIdx - gapStartIdx
		if n > report.LargestGapTokens {
			report.LargestGapTokens = n
			report.LargestGapStart = tokens[gapStartIdx].Start
			report.LargestGapEnd = tokens[endIdx-1].End
		}
		gapStartIdx = -1
	}

	for _, e := range highlight.Group(tokens, set) {
		switch e.Kind {
		case highlight.EntryToken:
			if gapStartIdx < 0 {
				gapStartIdx = e.Index
			}
		case highlight.EntryInterval:
			flushGap(e.StartIndex)
			report.MarkedTokens += len(e.Members)
			u, ok := usage[e.Interval.Color]
			if !ok {
				u = &ColorUsage{Color: e.Interval.Color}
				usage[e.Interval.Color] = u
			}
			u.Runs++
			u.Duration += e.Interval.End - e.Interval.Start
		}
	}
	flushGap(len(tokens))

	for _, u := range usage {
		report.Colors = append(report.Colors, *u)
	}
	sort.Slice(report.Colors, func(i, j int) bool {
		return report.Colors[i].Duration > report.Colors[j].Duration
	})

	return report
}

// FormatReport generates a human-readable markdown report for the CLI.
func FormatReport(name string, report *CoverageReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# Scribemark Coverage Report — %s\n\n", name))
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| Tokens | %d |\n", report.TokenCount))
	b.WriteString(fmt.Sprintf("| Highlights | %d |\n", report.HighlightCount))
	b.WriteString(fmt.Sprintf("| Speech duration | %s |\n", timeutil.FormatSeconds(report.SpeechDuration)))
	b.WriteString(fmt.Sprintf("| Marked duration | %s |\n", timeutil.FormatSeconds(report.MarkedDuration)))
	b.WriteString(fmt.Sprintf("| Coverage | %.1f%% |\n", report.CoverageRatio*100))
	b.WriteString(fmt.Sprintf("| Marked tokens | %d / %d |\n\n", report.MarkedTokens, report.TokenCount))

	if report.LargestGapTokens > 0 {
		b.WriteString(fmt.Sprintf("Largest unmarked stretch: %d tokens, %s\n\n",
			report.LargestGapTokens,
			timeutil.FormatRange(report.LargestGapStart, report.LargestGapEnd)))
	}

	if len(report.Colors) > 0 {
		b.WriteString("## Colors\n\n")
		b.WriteString("| Color | Runs | Duration |\n")
		b.WriteString("|-------|------|----------|\n")
		for _, u := range report.Colors {
			b.WriteString(fmt.Sprintf("| %s | %d | %s |\n",
				u.Color, u.Runs, timeutil.FormatSeconds(u.Duration)))
		}
	}

	return b.String()
}
