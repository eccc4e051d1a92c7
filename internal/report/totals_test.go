package report

import (
	"reflect"
	"testing"

	"github.com/blackwell-systems/trackdown/internal/track"
)

func parseFixture(t *testing.T, text string) track.ParseResult {
	t.Helper()
	res := track.Parse(text, nil, "fixture.md")
	if len(res.Errors) != 0 {
		t.Fatalf("fixture parse errors: %v", res.Errors)
	}
	return res
}

func TestTotals(t *testing.T) {
	res := parseFixture(t, `
# TT 2020-01-01
- #prj-web 2h design
- #meetings 1h standup
# TT 2020-01-02
- #prj-web 1h fixes
- #writing 1h blog post
`)
	got := Totals(res)
	want := []TimeTotal{
		{Label: "prj-web", Minutes: 180, Percentage: 60},
		{Label: "meetings", Minutes: 60, Percentage: 20},
		{Label: "writing", Minutes: 60, Percentage: 20},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Totals() = %v, want %v", got, want)
	}
}

func TestTotalsPercentagesRoughlySumTo100(t *testing.T) {
	res := parseFixture(t, `
# TT 2020-01-01
- #a 1h
- #b 1h
- #c 1h
`)
	sum := 0
	for _, row := range Totals(res) {
		sum += row.Percentage
	}
	// Three times 33.3 rounds to 33 each.
	if sum < 98 || sum > 102 {
		t.Errorf("percentage sum = %d, want within rounding of 100", sum)
	}
}

func TestTotalsZeroMinutes(t *testing.T) {
	res := parseFixture(t, "# TT 2020-01-01\n- #a 0m\n- #b 0m")
	for _, row := range Totals(res) {
		if row.Percentage != 0 {
			t.Errorf("Percentage = %d for %q, want 0 when total is 0", row.Percentage, row.Label)
		}
	}
}

func TestTotalsEmptyResult(t *testing.T) {
	if got := Totals(track.NewParseResult()); len(got) != 0 {
		t.Errorf("Totals(empty) = %v, want none", got)
	}
}

func TestLimitTotals(t *testing.T) {
	tests := []struct {
		name      string
		totals    []TimeTotal
		threshold float64
		wantLen   int
	}{
		{
			// 60+30 = 90 stays under 90.01, so the 10 crosses and is kept.
			name: "default threshold keeps an exact ninety percent run",
			totals: []TimeTotal{
				{Label: "a", Minutes: 60, Percentage: 60},
				{Label: "b", Minutes: 30, Percentage: 30},
				{Label: "c", Minutes: 10, Percentage: 10},
			},
			threshold: 90.01,
			wantLen:   3,
		},
		{
			name: "crossing row is included then truncation stops",
			totals: []TimeTotal{
				{Label: "a", Minutes: 50, Percentage: 50},
				{Label: "b", Minutes: 45, Percentage: 45},
				{Label: "c", Minutes: 5, Percentage: 5},
			},
			threshold: 90.01,
			wantLen:   2,
		},
		{
			name: "low threshold keeps only the first row",
			totals: []TimeTotal{
				{Label: "a", Minutes: 50, Percentage: 50},
				{Label: "b", Minutes: 45, Percentage: 45},
			},
			threshold: 40,
			wantLen:   1,
		},
		{
			name:      "empty input",
			totals:    nil,
			threshold: 90.01,
			wantLen:   0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LimitTotals(tt.totals, tt.threshold)
			if len(got) != tt.wantLen {
				t.Errorf("LimitTotals() kept %d rows, want %d", len(got), tt.wantLen)
			}
			if !reflect.DeepEqual(got, tt.totals[:tt.wantLen]) {
				t.Errorf("LimitTotals() = %v, want prefix %v", got, tt.totals[:tt.wantLen])
			}
		})
	}
}

func TestOutcomeTotals(t *testing.T) {
	res := parseFixture(t, `
# TT 2020-01-01
- #prj-web #design #review 2h
- #prj-web #design 1h
- #prj-api 1h
`)
	got := OutcomeTotals(res)
	want := []TagUsage{
		{Tag: "design", Count: 2, Minutes: 180, Percentage: 75},
		{Tag: "review", Count: 1, Minutes: 120, Percentage: 50},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OutcomeTotals() = %v, want %v", got, want)
	}
}

func TestTaskDetails(t *testing.T) {
	res := parseFixture(t, `
# TT 2020-01-01
- #prj-web 2h landing page
- #prj-web 1h landing page
- #prj-web 1h
- #other #prj-web 1h tagged anywhere
- #other 5h unrelated
`)
	got := TaskDetails(res, track.ProjectTag("web"))
	want := []TaskSummary{
		{Description: "landing page", Minutes: 180, Percentage: 60},
		{Description: NoDescription, Minutes: 60, Percentage: 20},
		{Description: "tagged anywhere", Minutes: 60, Percentage: 20},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TaskDetails() = %v, want %v", got, want)
	}
}

func TestDetailsFollowsTotalsOrder(t *testing.T) {
	res := parseFixture(t, `
# TT 2020-01-01
- #small 1h
- #big 3h thing one
- #big 2h thing two
`)
	got := Details(res)
	if len(got) != 2 {
		t.Fatalf("got %d tags, want 2", len(got))
	}
	if got[0].Tag != "big" || got[1].Tag != "small" {
		t.Errorf("tag order = [%s, %s], want [big, small]", got[0].Tag, got[1].Tag)
	}
	if got[0].Minutes != 300 {
		t.Errorf("big minutes = %d, want 300", got[0].Minutes)
	}
	if len(got[0].Tasks) != 2 {
		t.Errorf("big has %d tasks, want 2", len(got[0].Tasks))
	}
}

func TestTracking(t *testing.T) {
	res := parseFixture(t, `
# TT 2020-03-10
- #a 1h
# TT 2020-01-05
- #a 2h
# TT 2020-02-01
- #a 30m
`)
	tp, ok := Tracking(res)
	if !ok {
		t.Fatal("Tracking() ok = false, want true")
	}
	if tp.Start.String() != "2020-01-05" || tp.End.String() != "2020-03-10" {
		t.Errorf("span = %v to %v, want 2020-01-05 to 2020-03-10", tp.Start, tp.End)
	}
	if tp.Days != 3 {
		t.Errorf("Days = %d, want 3", tp.Days)
	}
}

func TestTrackingNoData(t *testing.T) {
	if _, ok := Tracking(track.NewParseResult()); ok {
		t.Error("Tracking(empty) ok = true, want false")
	}
}

func TestAveragePerDay(t *testing.T) {
	res := parseFixture(t, `
# TT 2020-01-01
- #a 2h
# TT 2020-01-10
- #a 1h
`)
	// 180 minutes over two tracked days; the gap days in between do not
	// count.
	if got := AveragePerDay(res); got != 90 {
		t.Errorf("AveragePerDay() = %d, want 90", got)
	}
	if got := AveragePerDay(track.NewParseResult()); got != 0 {
		t.Errorf("AveragePerDay(empty) = %d, want 0", got)
	}
}
