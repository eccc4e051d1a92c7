// Package date provides the naive calendar date used throughout trackdown.
// A Date carries no time of day and no zone; log files name dates, dates key
// the parsed entry map, and all period arithmetic happens on whole days.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the wire form of a date everywhere in trackdown: section
// headers, period expressions, and rendered reports.
const Layout = "2006-01-02"

// Date is a naive calendar date. It is comparable and safe as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Max is the sentinel upper bound for open-ended ranges.
var Max = Date{Year: 9999, Month: time.December, Day: 31}

// New returns the given calendar date. Out-of-range components are
// normalized the way time.Date normalizes them.
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime truncates a time to its calendar date.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Parse reads a date in the YYYY-MM-DD form. Calendar-invalid values such
// as 2020-02-30 are rejected.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return d.Time().Format(Layout)
}

// MarshalJSON encodes the date in its wire form.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a date from its wire form.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// AddDays returns the date n days after d. n may be negative.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Weekday returns the day of week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// ISOWeek returns the ISO 8601 week-numbering year and week of d. The first
// week of a year is the one containing January 4th; a date in late December
// or early January may therefore belong to an adjacent week year.
func (d Date) ISOWeek() (year, week int) {
	return d.Time().ISOWeek()
}

// StartOfWeek returns the Monday on or before d. Weeks run Monday through
// Sunday.
func (d Date) StartOfWeek() Date {
	back := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-back)
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// EndOfMonth returns the last day of d's month. Day zero of the following
// month normalizes to exactly that.
func (d Date) EndOfMonth() Date {
	return New(d.Year, d.Month+1, 0)
}

// ISOWeekStart returns the Monday beginning the given ISO week. Week 1 is
// the week containing January 4th, so the result may fall in the previous
// calendar year.
func ISOWeekStart(year, week int) Date {
	jan4 := Date{Year: year, Month: time.January, Day: 4}
	return jan4.StartOfWeek().AddDays((week - 1) * 7)
}

// Range is an inclusive span of dates. End == Max marks an open-ended range.
type Range struct {
	Start Date
	End   Date
}

// Contains reports whether d falls within the range, bounds included.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Open reports whether the range has no upper bound.
func (r Range) Open() bool {
	return r.End == Max
}

func (r Range) String() string {
	if r.Open() {
		return fmt.Sprintf("%s onward", r.Start)
	}
	return fmt.Sprintf("%s to %s", r.Start, r.End)
}
