package track

import (
	"sort"

	"github.com/blackwell-systems/trackdown/internal/date"
)

// ParseResult is the outcome of parsing one or more sources: entries
// grouped by section date, plus every error encountered. A result with an
// empty entry map may still carry errors; callers distinguish "no data"
// from "nothing but errors" that way.
type ParseResult struct {
	Entries map[date.Date][]TimeEntry
	Errors  []Located
}

// NewParseResult returns an empty result ready to accumulate entries.
func NewParseResult() ParseResult {
	return ParseResult{Entries: make(map[date.Date][]TimeEntry)}
}

func (r *ParseResult) add(d date.Date, e TimeEntry) {
	if r.Entries == nil {
		r.Entries = make(map[date.Date][]TimeEntry)
	}
	r.Entries[d] = append(r.Entries[d], e)
}

func (r *ParseResult) addError(source string, line int, err *ParseError) {
	r.Errors = append(r.Errors, Located{Source: source, Line: line, Err: err})
}

// Merge combines two results into a fresh one. Entry lists for shared dates
// are concatenated and error lists appended, so merging is associative and,
// up to within-date entry order, commutative; aggregation does not depend
// on entry order.
func (r ParseResult) Merge(other ParseResult) ParseResult {
	merged := ParseResult{
		Entries: make(map[date.Date][]TimeEntry, len(r.Entries)+len(other.Entries)),
	}
	for d, entries := range r.Entries {
		merged.Entries[d] = append(merged.Entries[d], entries...)
	}
	for d, entries := range other.Entries {
		merged.Entries[d] = append(merged.Entries[d], entries...)
	}
	merged.Errors = append(merged.Errors, r.Errors...)
	merged.Errors = append(merged.Errors, other.Errors...)
	return merged
}

// Days returns the number of distinct dates that retained at least one
// entry. Dates whose entries were all filtered out or malformed do not
// count.
func (r ParseResult) Days() int {
	return len(r.Entries)
}

// Empty reports whether the result holds no entries at all.
func (r ParseResult) Empty() bool {
	return len(r.Entries) == 0
}

// TotalMinutes sums the minutes of every entry in the result.
func (r ParseResult) TotalMinutes() int {
	total := 0
	for _, entries := range r.Entries {
		for _, e := range entries {
			total += e.Minutes
		}
	}
	return total
}

// EntryCount returns the number of entries across all dates.
func (r ParseResult) EntryCount() int {
	n := 0
	for _, entries := range r.Entries {
		n += len(entries)
	}
	return n
}

// Dates returns every entry date in ascending order.
func (r ParseResult) Dates() []date.Date {
	dates := make([]date.Date, 0, len(r.Entries))
	for d := range r.Entries {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
