package period

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/blackwell-systems/trackdown/internal/date"
)

// Kind discriminates the period variants.
type Kind int

const (
	// Day covers exactly the anchor date.
	Day Kind = iota
	// FromDate covers the anchor date onward, with no upper bound.
	FromDate
	// WeekOf covers the Monday-Sunday week containing the anchor.
	WeekOf
	// MonthOf covers the calendar month containing the anchor.
	MonthOf
	// YearOf covers the calendar year containing the anchor.
	YearOf
)

func (k Kind) String() string {
	switch k {
	case Day:
		return "day"
	case FromDate:
		return "from-date"
	case WeekOf:
		return "week"
	case MonthOf:
		return "month"
	case YearOf:
		return "year"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Period is a resolved period request: a kind and the date anchoring it.
// The concrete range is derived on demand so the same Period can be
// inspected, stored, and widened without recomputation tricks.
type Period struct {
	Kind   Kind
	Anchor date.Date
}

// DateRange returns the inclusive range of dates the period covers.
func (p Period) DateRange() date.Range {
	switch p.Kind {
	case FromDate:
		return date.Range{Start: p.Anchor, End: date.Max}
	case WeekOf:
		monday := p.Anchor.StartOfWeek()
		return date.Range{Start: monday, End: monday.AddDays(6)}
	case MonthOf:
		return date.Range{Start: p.Anchor.StartOfMonth(), End: p.Anchor.EndOfMonth()}
	case YearOf:
		return date.Range{
			Start: date.Date{Year: p.Anchor.Year, Month: time.January, Day: 1},
			End:   date.Date{Year: p.Anchor.Year, Month: time.December, Day: 31},
		}
	default:
		return date.Range{Start: p.Anchor, End: p.Anchor}
	}
}

func (p Period) String() string {
	return fmt.Sprintf("%s of %s", p.Kind, p.Anchor)
}

// InvalidError reports an expression that matches no period form.
type InvalidError struct {
	Expr string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid period %q", e.Expr)
}

// The coded period forms, tried in this order after the keyword table.
// Years are four digits (1000-9999 by construction), weeks 1-52, months
// 1-12.
var (
	reMonthN = regexp.MustCompile(`^(?:month|m)-(\d{1,2})$`)
	reDate   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reMonth  = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
	reWeek   = regexp.MustCompile(`^(\d{4})-w(\d{1,2})$`)
	reYear   = regexp.MustCompile(`^(\d{4})$`)
)

// Parse resolves a period expression against the clock. Forms are tried in
// order and the first match wins; an expression matching a form but
// carrying an out-of-range component is invalid rather than falling
// through.
//
//	today t  yesterday y  this-week tw  last-week lw  this-month tm  last-month lm
//	month-N m-N             Nth month of the current year
//	YYYY-MM-DD              open-ended, from that date onward
//	YYYY-MM                 that calendar month
//	YYYY-wWW                that ISO week (1-52)
//	YYYY                    that calendar year
func Parse(expr string, clock Clock) (Period, error) {
	if p, ok := keyword(expr, clock); ok {
		return p, nil
	}
	if m := reMonthN.FindStringSubmatch(expr); m != nil {
		n, _ := strconv.Atoi(m[1])
		if n < 1 || n > 12 {
			return Period{}, &InvalidError{Expr: expr}
		}
		anchor := date.New(clock.Today().Year, time.Month(n), 1)
		return Period{Kind: MonthOf, Anchor: anchor}, nil
	}
	if reDate.MatchString(expr) {
		d, err := date.Parse(expr)
		if err != nil {
			return Period{}, &InvalidError{Expr: expr}
		}
		return Period{Kind: FromDate, Anchor: d}, nil
	}
	if m := reMonth.FindStringSubmatch(expr); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if year < 1000 || month < 1 || month > 12 {
			return Period{}, &InvalidError{Expr: expr}
		}
		return Period{Kind: MonthOf, Anchor: date.New(year, time.Month(month), 1)}, nil
	}
	if m := reWeek.FindStringSubmatch(expr); m != nil {
		year, _ := strconv.Atoi(m[1])
		week, _ := strconv.Atoi(m[2])
		if year < 1000 || week < 1 || week > 52 {
			return Period{}, &InvalidError{Expr: expr}
		}
		return Period{Kind: WeekOf, Anchor: date.ISOWeekStart(year, week)}, nil
	}
	if m := reYear.FindStringSubmatch(expr); m != nil {
		year, _ := strconv.Atoi(m[1])
		if year < 1000 {
			return Period{}, &InvalidError{Expr: expr}
		}
		return Period{Kind: YearOf, Anchor: date.New(year, time.January, 1)}, nil
	}
	return Period{}, &InvalidError{Expr: expr}
}

func keyword(expr string, clock Clock) (Period, bool) {
	today := clock.Today()
	switch expr {
	case "today", "t":
		return Period{Kind: Day, Anchor: today}, true
	case "yesterday", "y":
		return Period{Kind: Day, Anchor: today.AddDays(-1)}, true
	case "this-week", "tw":
		return Period{Kind: WeekOf, Anchor: today}, true
	case "last-week", "lw":
		return Period{Kind: WeekOf, Anchor: today.AddDays(-7)}, true
	case "this-month", "tm":
		return Period{Kind: MonthOf, Anchor: today}, true
	case "last-month", "lm":
		// The day before the first of this month, so December rolls back
		// into the previous year.
		return Period{Kind: MonthOf, Anchor: today.StartOfMonth().AddDays(-1)}, true
	}
	return Period{}, false
}
