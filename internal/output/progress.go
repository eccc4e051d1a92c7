package output

import (
	"fmt"
	"strings"
)

// ShareBar renders a visual bar for a 0-100 percentage share.
// Example: "████░░░░░░ 42%"
func ShareBar(percentage int, width int) string {
	if width <= 0 {
		width = 10
	}
	filled := (percentage * width) / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := StyleTag.Render(strings.Repeat("█", filled)) +
		StyleMuted.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %s", bar, StyleMuted.Render(fmt.Sprintf("%d%%", percentage)))
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
