package track

import "github.com/blackwell-systems/trackdown/internal/date"

// Filter decides whether a successfully parsed entry is kept. Filtering
// happens during parsing, so a discarded entry never reaches the result and
// never creates a date key.
type Filter interface {
	Matches(e TimeEntry, d date.Date) bool
}

// ProjectFilter keeps entries tagged with the named project, whatever
// position the tag appears in.
type ProjectFilter struct {
	Name string
}

func (f ProjectFilter) Matches(e TimeEntry, _ date.Date) bool {
	return e.HasTag(ProjectTag(f.Name))
}

// RangeFilter keeps entries whose section date falls inside the range.
type RangeFilter struct {
	Range date.Range
}

func (f RangeFilter) Matches(_ TimeEntry, d date.Date) bool {
	return f.Range.Contains(d)
}

// And combines filters conjunctively. With no arguments it matches
// everything, which makes it a convenient accumulator for optional CLI
// filters.
func And(filters ...Filter) Filter {
	return andFilter(filters)
}

// Or combines filters disjunctively. With no arguments it matches nothing.
func Or(filters ...Filter) Filter {
	return orFilter(filters)
}

type andFilter []Filter

func (f andFilter) Matches(e TimeEntry, d date.Date) bool {
	for _, sub := range f {
		if !sub.Matches(e, d) {
			return false
		}
	}
	return true
}

type orFilter []Filter

func (f orFilter) Matches(e TimeEntry, d date.Date) bool {
	for _, sub := range f {
		if sub.Matches(e, d) {
			return true
		}
	}
	return false
}
