package period

import (
	"errors"
	"testing"
	"time"

	"github.com/blackwell-systems/trackdown/internal/date"
)

// midJuly is a Wednesday in the middle of 2020.
var midJuly = date.Date{Year: 2020, Month: time.July, Day: 15}

func d(y int, m time.Month, day int) date.Date {
	return date.Date{Year: y, Month: m, Day: day}
}

func TestParseKeywords(t *testing.T) {
	clock := Fixed(midJuly)
	tests := []struct {
		expr      string
		wantKind  Kind
		wantStart date.Date
		wantEnd   date.Date
	}{
		{"today", Day, d(2020, time.July, 15), d(2020, time.July, 15)},
		{"t", Day, d(2020, time.July, 15), d(2020, time.July, 15)},
		{"yesterday", Day, d(2020, time.July, 14), d(2020, time.July, 14)},
		{"y", Day, d(2020, time.July, 14), d(2020, time.July, 14)},
		{"this-week", WeekOf, d(2020, time.July, 13), d(2020, time.July, 19)},
		{"tw", WeekOf, d(2020, time.July, 13), d(2020, time.July, 19)},
		{"last-week", WeekOf, d(2020, time.July, 6), d(2020, time.July, 12)},
		{"lw", WeekOf, d(2020, time.July, 6), d(2020, time.July, 12)},
		{"this-month", MonthOf, d(2020, time.July, 1), d(2020, time.July, 31)},
		{"tm", MonthOf, d(2020, time.July, 1), d(2020, time.July, 31)},
		{"last-month", MonthOf, d(2020, time.June, 1), d(2020, time.June, 30)},
		{"lm", MonthOf, d(2020, time.June, 1), d(2020, time.June, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			p, err := Parse(tt.expr, clock)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.expr, err)
			}
			if p.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", p.Kind, tt.wantKind)
			}
			r := p.DateRange()
			if r.Start != tt.wantStart || r.End != tt.wantEnd {
				t.Errorf("DateRange() = %v, want %v to %v", r, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestParseLastMonthAcrossYearBoundary(t *testing.T) {
	p, err := Parse("last-month", Fixed(d(2021, time.January, 10)))
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	r := p.DateRange()
	if r.Start != d(2020, time.December, 1) || r.End != d(2020, time.December, 31) {
		t.Errorf("DateRange() = %v, want December 2020", r)
	}
}

func TestParseCodedForms(t *testing.T) {
	clock := Fixed(midJuly)
	tests := []struct {
		expr      string
		wantKind  Kind
		wantStart date.Date
		wantEnd   date.Date
	}{
		{"month-2", MonthOf, d(2020, time.February, 1), d(2020, time.February, 29)},
		{"m-2", MonthOf, d(2020, time.February, 1), d(2020, time.February, 29)},
		{"m-12", MonthOf, d(2020, time.December, 1), d(2020, time.December, 31)},
		{"2020-02", MonthOf, d(2020, time.February, 1), d(2020, time.February, 29)},
		{"2019-2", MonthOf, d(2019, time.February, 1), d(2019, time.February, 28)},
		{"2020-w01", WeekOf, d(2019, time.December, 30), d(2020, time.January, 5)},
		{"2020-w3", WeekOf, d(2020, time.January, 13), d(2020, time.January, 19)},
		{"2021-w01", WeekOf, d(2021, time.January, 4), d(2021, time.January, 10)},
		{"2020", YearOf, d(2020, time.January, 1), d(2020, time.December, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			p, err := Parse(tt.expr, clock)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.expr, err)
			}
			if p.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", p.Kind, tt.wantKind)
			}
			r := p.DateRange()
			if r.Start != tt.wantStart || r.End != tt.wantEnd {
				t.Errorf("DateRange() = %v, want %v to %v", r, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestParseExactDateIsOpenEnded(t *testing.T) {
	p, err := Parse("2020-07-15", Fixed(midJuly))
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if p.Kind != FromDate {
		t.Fatalf("Kind = %v, want FromDate", p.Kind)
	}
	r := p.DateRange()
	if r.Start != midJuly {
		t.Errorf("Start = %v, want %v", r.Start, midJuly)
	}
	if !r.Open() {
		t.Error("range should be open-ended")
	}
	if !r.Contains(d(2037, time.June, 1)) {
		t.Error("open range should cover far-future dates")
	}
}

func TestParseInvalid(t *testing.T) {
	exprs := []string{
		"",
		"banana",
		"tomorrow",
		"month-0",
		"month-13",
		"m-120",
		"2020-00",
		"2020-13",
		"2020-w00",
		"2020-w53", // 52 is the cap even in 53-week years
		"0999-05",
		"0999",
		"99999",
		"2020-02-30",
		"2020-1-1",
		"2020-W03", // the week marker is lowercase
	}
	for _, expr := range exprs {
		if _, err := Parse(expr, Fixed(midJuly)); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", expr)
		} else {
			var inv *InvalidError
			if !errors.As(err, &inv) {
				t.Errorf("Parse(%q) error = %T, want *InvalidError", expr, err)
			}
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("valid override", func(t *testing.T) {
		t.Setenv(EnvToday, "2020-07-15")
		if got := FromEnv().Today(); got != midJuly {
			t.Errorf("Today() = %v, want %v", got, midJuly)
		}
	})
	t.Run("garbage falls back to system clock", func(t *testing.T) {
		t.Setenv(EnvToday, "not-a-date")
		got := FromEnv().Today()
		if got != date.FromTime(time.Now()) {
			t.Errorf("Today() = %v, want the system date", got)
		}
	})
}
