package report

import (
	"reflect"
	"testing"

	"github.com/blackwell-systems/trackdown/internal/period"
)

func TestBreakdownByDay(t *testing.T) {
	res := parseFixture(t, `
# TT 2020-07-13
- #a 1h
- #b 30m
# TT 2020-07-15
- #a 0m
# TT 2020-07-14
- #a 2h
`)
	got := Breakdown(res, UnitDay)
	want := []BreakdownGroup{
		{Label: "2020-07-13 (Monday)", Minutes: 90},
		{Label: "2020-07-14 (Tuesday)", Minutes: 120},
		// 2020-07-15 summed to zero minutes and is omitted.
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Breakdown(day) = %v, want %v", got, want)
	}
}

func TestBreakdownWeekSpansYearBoundary(t *testing.T) {
	res := parseFixture(t, "## TT 2020-12-28\n- #t 1h\n## TT 2021-01-01\n- #t 1h")
	got := Breakdown(res, UnitWeek)
	if len(got) != 1 {
		t.Fatalf("got %d week groups, want 1: %v", len(got), got)
	}
	week := got[0]
	if week.Label != "2020-W53" {
		t.Errorf("Label = %q, want %q", week.Label, "2020-W53")
	}
	if week.Minutes != 120 {
		t.Errorf("Minutes = %d, want 120", week.Minutes)
	}
	if len(week.Children) != 2 {
		t.Fatalf("got %d day children, want 2", len(week.Children))
	}
	if week.Children[0].Label != "2020-12-28 (Monday)" || week.Children[1].Label != "2021-01-01 (Friday)" {
		t.Errorf("children = %v, want both dates under the same week", week.Children)
	}
}

func TestBreakdownByWeek(t *testing.T) {
	res := parseFixture(t, `
# TT 2020-07-13
- #a 1h
# TT 2020-07-14
- #a 2h
# TT 2020-07-20
- #a 30m
`)
	got := Breakdown(res, UnitWeek)
	want := []BreakdownGroup{
		{
			Label:   "2020-W29",
			Minutes: 180,
			Children: []BreakdownGroup{
				{Label: "2020-07-13 (Monday)", Minutes: 60},
				{Label: "2020-07-14 (Tuesday)", Minutes: 120},
			},
		},
		{
			Label:   "2020-W30",
			Minutes: 30,
			Children: []BreakdownGroup{
				{Label: "2020-07-20 (Monday)", Minutes: 30},
			},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Breakdown(week) = %v, want %v", got, want)
	}
}

func TestBreakdownByMonthSplitsStraddlingWeek(t *testing.T) {
	// Week 2020-W05 runs Monday Jan 27 through Sunday Feb 2.
	res := parseFixture(t, `
# TT 2020-01-31
- #a 1h
# TT 2020-02-01
- #a 2h
`)
	got := Breakdown(res, UnitMonth)
	want := []BreakdownGroup{
		{
			Label:   "2020-01",
			Minutes: 60,
			Children: []BreakdownGroup{
				{Label: "2020-W05", Minutes: 60},
			},
		},
		{
			Label:   "2020-02",
			Minutes: 120,
			Children: []BreakdownGroup{
				{Label: "2020-W05", Minutes: 120},
			},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Breakdown(month) = %v, want %v", got, want)
	}
}

func TestBreakdownByYear(t *testing.T) {
	res := parseFixture(t, `
# TT 2020-11-10
- #a 1h
# TT 2020-12-01
- #a 2h
# TT 2021-01-05
- #a 30m
`)
	got := Breakdown(res, UnitYear)
	want := []BreakdownGroup{
		{
			Label:   "2020",
			Minutes: 180,
			Children: []BreakdownGroup{
				{Label: "2020-11", Minutes: 60},
				{Label: "2020-12", Minutes: 120},
			},
		},
		{
			Label:   "2021",
			Minutes: 30,
			Children: []BreakdownGroup{
				{Label: "2021-01", Minutes: 30},
			},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Breakdown(year) = %v, want %v", got, want)
	}
}

func TestBreakdownParentSums(t *testing.T) {
	res := parseFixture(t, `
# TT 2020-01-15
- #a 1h
- #b 45m
# TT 2020-03-02
- #a 2h
# TT 2020-12-31
- #a 15m
# TT 2021-06-01
- #a 3h
`)
	total := res.TotalMinutes()
	for _, unit := range []Unit{UnitDay, UnitWeek, UnitMonth, UnitYear} {
		groups := Breakdown(res, unit)
		sum := 0
		for _, g := range groups {
			sum += g.Minutes
			checkParentSums(t, unit, g)
		}
		if sum != total {
			t.Errorf("unit %v: top-level sum = %d, want %d", unit, sum, total)
		}
	}
}

func checkParentSums(t *testing.T, unit Unit, g BreakdownGroup) {
	t.Helper()
	if len(g.Children) == 0 {
		return
	}
	sum := 0
	for _, c := range g.Children {
		sum += c.Minutes
		checkParentSums(t, unit, c)
	}
	if sum != g.Minutes {
		t.Errorf("unit %v: group %q minutes = %d, children sum to %d", unit, g.Label, g.Minutes, sum)
	}
}

func TestParseUnit(t *testing.T) {
	for name, want := range map[string]Unit{
		"day": UnitDay, "week": UnitWeek, "month": UnitMonth, "year": UnitYear,
	} {
		got, err := ParseUnit(name)
		if err != nil || got != want {
			t.Errorf("ParseUnit(%q) = %v, %v, want %v", name, got, err, want)
		}
	}
	if _, err := ParseUnit("decade"); err == nil {
		t.Error("ParseUnit(decade) succeeded, want error")
	}
}

func TestAutoUnit(t *testing.T) {
	tests := []struct {
		kind period.Kind
		want Unit
	}{
		{period.Day, UnitWeek},
		{period.FromDate, UnitWeek},
		{period.WeekOf, UnitMonth},
		{period.MonthOf, UnitYear},
		{period.YearOf, UnitYear},
	}
	for _, tt := range tests {
		if got := AutoUnit(tt.kind); got != tt.want {
			t.Errorf("AutoUnit(%v) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
