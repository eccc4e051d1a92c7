package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/blackwell-systems/trackdown/internal/date"
	"github.com/blackwell-systems/trackdown/internal/period"
	"github.com/blackwell-systems/trackdown/internal/track"
)

// Unit is the top-level grouping granularity of a breakdown tree.
type Unit int

const (
	UnitDay Unit = iota
	UnitWeek
	UnitMonth
	UnitYear
)

func (u Unit) String() string {
	switch u {
	case UnitDay:
		return "day"
	case UnitWeek:
		return "week"
	case UnitMonth:
		return "month"
	case UnitYear:
		return "year"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// ParseUnit reads a unit name as given on the command line.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "day":
		return UnitDay, nil
	case "week":
		return UnitWeek, nil
	case "month":
		return UnitMonth, nil
	case "year":
		return UnitYear, nil
	}
	return 0, fmt.Errorf("invalid unit %q (want day, week, month or year)", s)
}

// AutoUnit picks the grouping one level above a period's own granularity: a
// day report breaks into weeks holding day leaves, a week report into
// months holding week leaves, and so on. Years have no level above and stay
// years. The engine itself is granularity-agnostic; this is caller policy.
func AutoUnit(k period.Kind) Unit {
	switch k {
	case period.Day, period.FromDate:
		return UnitWeek
	case period.WeekOf:
		return UnitMonth
	default:
		return UnitYear
	}
}

// BreakdownGroup is one node of the recursive period tree. A parent's
// minutes always equal the sum of its children's; leaves have no children.
type BreakdownGroup struct {
	Label    string           `json:"label"`
	Minutes  int              `json:"minutes"`
	Children []BreakdownGroup `json:"children,omitempty"`
}

// Breakdown groups the result's dated minutes at the given granularity.
// Groups and children are chronological; dates whose entries sum to zero
// minutes are omitted entirely rather than kept as empty leaves.
func Breakdown(res track.ParseResult, unit Unit) []BreakdownGroup {
	days := dayTotals(res)
	switch unit {
	case UnitWeek:
		return weekGroups(days)
	case UnitMonth:
		return monthGroups(days)
	case UnitYear:
		return yearGroups(days)
	default:
		return dayLeaves(days)
	}
}

type dayTotal struct {
	date    date.Date
	minutes int
}

func dayTotals(res track.ParseResult) []dayTotal {
	var days []dayTotal
	for _, d := range res.Dates() {
		minutes := 0
		for _, e := range res.Entries[d] {
			minutes += e.Minutes
		}
		if minutes == 0 {
			continue
		}
		days = append(days, dayTotal{date: d, minutes: minutes})
	}
	return days
}

func dayLeaves(days []dayTotal) []BreakdownGroup {
	groups := make([]BreakdownGroup, 0, len(days))
	for _, d := range days {
		groups = append(groups, BreakdownGroup{Label: dayLabel(d.date), Minutes: d.minutes})
	}
	return groups
}

// weekGroups walks the chronological day list and opens a new ISO week
// group whenever the week label changes; sorted input means each week
// appears exactly once. An ISO week that spans a year boundary keeps both
// years' dates under the same label.
func weekGroups(days []dayTotal) []BreakdownGroup {
	var out []BreakdownGroup
	for _, d := range days {
		label := weekLabel(d.date.ISOWeek())
		if len(out) == 0 || out[len(out)-1].Label != label {
			out = append(out, BreakdownGroup{Label: label})
		}
		week := &out[len(out)-1]
		week.Minutes += d.minutes
		week.Children = append(week.Children, BreakdownGroup{Label: dayLabel(d.date), Minutes: d.minutes})
	}
	return out
}

// monthGroups nests ISO week leaves under calendar months. A week that
// straddles a month boundary shows up under both months, each side counting
// only its own dates, so parent sums stay exact.
func monthGroups(days []dayTotal) []BreakdownGroup {
	var out []BreakdownGroup
	for _, d := range days {
		label := monthLabel(d.date.Year, d.date.Month)
		if len(out) == 0 || out[len(out)-1].Label != label {
			out = append(out, BreakdownGroup{Label: label})
		}
		month := &out[len(out)-1]
		month.Minutes += d.minutes
		addLeaf(&month.Children, weekLabel(d.date.ISOWeek()), d.minutes)
	}
	return out
}

func yearGroups(days []dayTotal) []BreakdownGroup {
	var out []BreakdownGroup
	for _, d := range days {
		label := yearLabel(d.date.Year)
		if len(out) == 0 || out[len(out)-1].Label != label {
			out = append(out, BreakdownGroup{Label: label})
		}
		year := &out[len(out)-1]
		year.Minutes += d.minutes
		addLeaf(&year.Children, monthLabel(d.date.Year, d.date.Month), d.minutes)
	}
	return out
}

// addLeaf accumulates minutes into the trailing child, opening a new leaf
// when the label changes. Chronological input keeps labels in runs.
func addLeaf(children *[]BreakdownGroup, label string, minutes int) {
	if n := len(*children); n == 0 || (*children)[n-1].Label != label {
		*children = append(*children, BreakdownGroup{Label: label})
	}
	(*children)[len(*children)-1].Minutes += minutes
}

func dayLabel(d date.Date) string {
	return fmt.Sprintf("%s (%s)", d, d.Weekday())
}

func weekLabel(year, week int) string {
	return fmt.Sprintf("%d-W%02d", year, week)
}

func monthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%d-%02d", year, int(month))
}

func yearLabel(year int) string {
	return strconv.Itoa(year)
}
