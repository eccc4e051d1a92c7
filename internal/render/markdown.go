package render

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/trackdown/internal/report"
	"github.com/blackwell-systems/trackdown/internal/track"
)

func markdownReport(r Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", r.Title)
	if r.Period != nil {
		span := fmt.Sprintf("%s to %s", r.Period.Start, r.Period.End)
		if r.Period.Start == r.Period.End {
			span = r.Period.Start.String()
		}
		days := "day"
		if r.Period.Days != 1 {
			days = "days"
		}
		fmt.Fprintf(&sb, "%s, %d %s tracked\n\n", span, r.Period.Days, days)
	}

	if len(r.Totals) == 0 {
		sb.WriteString("No entries in this period.\n")
	} else {
		sb.WriteString("| Project | Time | Share |\n")
		sb.WriteString("| --- | ---: | ---: |\n")
		for _, row := range r.Totals {
			fmt.Fprintf(&sb, "| %s | %s | %d%% |\n", row.Label, FormatMinutes(row.Minutes), row.Percentage)
		}
		fmt.Fprintf(&sb, "\n**Total:** %s", FormatMinutes(r.Total))
		if r.Average > 0 {
			fmt.Fprintf(&sb, " (%s per tracked day)", FormatMinutes(r.Average))
		}
		sb.WriteString("\n")
	}

	if len(r.Outcomes) > 0 {
		sb.WriteString("\n## Outcomes\n\n")
		sb.WriteString("| Tag | Entries | Time | Share |\n")
		sb.WriteString("| --- | ---: | ---: | ---: |\n")
		for _, row := range r.Outcomes {
			fmt.Fprintf(&sb, "| %s | %d | %s | %d%% |\n", row.Tag, row.Count, FormatMinutes(row.Minutes), row.Percentage)
		}
	}

	for _, details := range r.Details {
		fmt.Fprintf(&sb, "\n## %s\n\n", details.Tag)
		sb.WriteString("| Task | Time | Share |\n")
		sb.WriteString("| --- | ---: | ---: |\n")
		for _, task := range details.Tasks {
			fmt.Fprintf(&sb, "| %s | %s | %d%% |\n", task.Description, FormatMinutes(task.Minutes), task.Percentage)
		}
	}

	markdownErrors(&sb, r.Errors)
	return sb.String()
}

func markdownBreakdown(b Breakdown) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", b.Title)
	if len(b.Groups) == 0 {
		sb.WriteString("No entries in this period.\n")
	} else {
		markdownGroups(&sb, b.Groups, 0)
	}

	markdownErrors(&sb, b.Errors)
	return sb.String()
}

func markdownGroups(sb *strings.Builder, groups []report.BreakdownGroup, depth int) {
	for _, g := range groups {
		indent := strings.Repeat("  ", depth)
		label := g.Label
		if depth == 0 {
			label = "**" + label + "**"
		}
		fmt.Fprintf(sb, "%s- %s: %s\n", indent, label, FormatMinutes(g.Minutes))
		markdownGroups(sb, g.Children, depth+1)
	}
}

func markdownErrors(sb *strings.Builder, errs []track.Located) {
	if len(errs) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n## Problems (%d)\n\n", len(errs))
	for _, e := range errs {
		fmt.Fprintf(sb, "- %s\n", e.Error())
	}
}
