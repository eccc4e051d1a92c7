// Package render turns computed report values into text. Two fixed output
// formats exist, a styled terminal form and a plain markdown form, switched
// as a closed tagged union rather than an open interface; JSON output is
// handled separately by the commands since it encodes the value structs
// directly.
package render

import (
	"fmt"

	"github.com/blackwell-systems/trackdown/internal/report"
	"github.com/blackwell-systems/trackdown/internal/track"
)

// Format selects the output renderer.
type Format int

const (
	Text Format = iota
	Markdown
)

func (f Format) String() string {
	if f == Markdown {
		return "markdown"
	}
	return "text"
}

// ParseFormat reads a format name as given on the command line or in the
// config file.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text":
		return Text, nil
	case "markdown", "md":
		return Markdown, nil
	}
	return 0, fmt.Errorf("invalid format %q (want text or markdown)", s)
}

// Report bundles everything a flat report shows. Optional sections are nil
// when not requested.
type Report struct {
	Title    string
	Period   *report.TrackingPeriod
	Total    int
	Average  int
	Totals   []report.TimeTotal
	Outcomes []report.TagUsage
	Details  []report.TagDetails
	Errors   []track.Located
}

// Breakdown bundles a rendered breakdown tree.
type Breakdown struct {
	Title  string
	Groups []report.BreakdownGroup
	Errors []track.Located
}

// RenderReport renders a flat report in the given format.
func RenderReport(f Format, r Report) string {
	if f == Markdown {
		return markdownReport(r)
	}
	return textReport(r)
}

// RenderBreakdown renders a breakdown tree in the given format.
func RenderBreakdown(f Format, b Breakdown) string {
	if f == Markdown {
		return markdownBreakdown(b)
	}
	return textBreakdown(b)
}

// FormatMinutes renders a minute count in the log's own units, dropping
// zero parts: "2h 30m", "45m", "8h", "0m".
func FormatMinutes(m int) string {
	h, rem := m/60, m%60
	switch {
	case m == 0:
		return "0m"
	case h == 0:
		return fmt.Sprintf("%dm", rem)
	case rem == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, rem)
	}
}
