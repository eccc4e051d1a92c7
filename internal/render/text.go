package render

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/trackdown/internal/output"
	"github.com/blackwell-systems/trackdown/internal/report"
	"github.com/blackwell-systems/trackdown/internal/track"
)

const shareBarWidth = 10

func textReport(r Report) string {
	var sb strings.Builder

	sb.WriteString(output.Section(r.Title))
	sb.WriteString("\n")
	writeTrackingLine(&sb, r)

	if len(r.Totals) == 0 {
		sb.WriteString("\n " + output.StyleMuted.Render("no entries in this period") + "\n")
	} else {
		sb.WriteString("\n")
		tbl := output.NewTable("Project", "Time", "Share").AlignRight(1)
		for _, row := range r.Totals {
			tbl.AddRow(
				output.StyleTag.Render(row.Label),
				output.StyleBold.Render(FormatMinutes(row.Minutes)),
				output.ShareBar(row.Percentage, shareBarWidth),
			)
		}
		sb.WriteString(indent(tbl.Render()))
		sb.WriteString(fmt.Sprintf(" %s %s",
			output.StyleMuted.Render("total"),
			output.StyleBold.Render(FormatMinutes(r.Total))))
		if r.Average > 0 {
			sb.WriteString(output.StyleMuted.Render(fmt.Sprintf(" (%s per tracked day)", FormatMinutes(r.Average))))
		}
		sb.WriteString("\n")
	}

	if len(r.Outcomes) > 0 {
		sb.WriteString(output.Section("Outcomes"))
		sb.WriteString("\n\n")
		tbl := output.NewTable("Tag", "Entries", "Time", "Share").AlignRight(1, 2)
		for _, row := range r.Outcomes {
			tbl.AddRow(
				output.StyleTag.Render(row.Tag),
				fmt.Sprintf("%d", row.Count),
				output.StyleBold.Render(FormatMinutes(row.Minutes)),
				output.ShareBar(row.Percentage, shareBarWidth),
			)
		}
		sb.WriteString(indent(tbl.Render()))
	}

	for _, details := range r.Details {
		sb.WriteString(output.Section(details.Tag))
		sb.WriteString("\n\n")
		tbl := output.NewTable("Task", "Time", "Share").AlignRight(1)
		for _, task := range details.Tasks {
			tbl.AddRow(
				task.Description,
				output.StyleBold.Render(FormatMinutes(task.Minutes)),
				output.ShareBar(task.Percentage, shareBarWidth),
			)
		}
		sb.WriteString(indent(tbl.Render()))
	}

	writeErrors(&sb, r.Errors)
	return sb.String()
}

func textBreakdown(b Breakdown) string {
	var sb strings.Builder

	sb.WriteString(output.Section(b.Title))
	sb.WriteString("\n")

	if len(b.Groups) == 0 {
		sb.WriteString("\n " + output.StyleMuted.Render("no entries in this period") + "\n")
	} else {
		sb.WriteString("\n")
		tbl := output.NewTable("Period", "Time").AlignRight(1)
		addBreakdownRows(tbl, b.Groups, 0)
		sb.WriteString(indent(tbl.Render()))
	}

	writeErrors(&sb, b.Errors)
	return sb.String()
}

func addBreakdownRows(tbl *output.Table, groups []report.BreakdownGroup, depth int) {
	for _, g := range groups {
		label := strings.Repeat("  ", depth) + g.Label
		if depth == 0 {
			label = output.StyleTag.Render(label)
		}
		tbl.AddRow(label, output.StyleBold.Render(FormatMinutes(g.Minutes)))
		addBreakdownRows(tbl, g.Children, depth+1)
	}
}

func writeTrackingLine(sb *strings.Builder, r Report) {
	if r.Period == nil {
		return
	}
	span := fmt.Sprintf("%s to %s", r.Period.Start, r.Period.End)
	if r.Period.Start == r.Period.End {
		span = r.Period.Start.String()
	}
	days := "day"
	if r.Period.Days != 1 {
		days = "days"
	}
	sb.WriteString(fmt.Sprintf(" %s\n",
		output.StyleMuted.Render(fmt.Sprintf("%s, %d %s tracked", span, r.Period.Days, days))))
}

func writeErrors(sb *strings.Builder, errs []track.Located) {
	if len(errs) == 0 {
		return
	}
	sb.WriteString(output.Section(fmt.Sprintf("Problems (%d)", len(errs))))
	sb.WriteString("\n\n")
	for _, e := range errs {
		sb.WriteString(" " + output.StyleError.Render(e.Error()) + "\n")
	}
}

// indent shifts a rendered block one space right to line up with section
// headers.
func indent(block string) string {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	for i, line := range lines {
		lines[i] = " " + line
	}
	return strings.Join(lines, "\n") + "\n"
}
