package track

import "strings"

// TimeEntry is one parsed bullet line: its tags in source order, the summed
// minutes of every time token on the line, and the remaining free text.
type TimeEntry struct {
	Tags        []Tag
	Minutes     int
	Description string
}

// MainTag returns the first tag on the line. Flat reports group by it when
// no project filter narrows the data. Every parsed entry has at least one
// tag, so this is always valid.
func (e TimeEntry) MainTag() Tag {
	return e.Tags[0]
}

// OutcomeTags returns the tags after the main tag, in source order.
func (e TimeEntry) OutcomeTags() []Tag {
	if len(e.Tags) < 2 {
		return nil
	}
	return e.Tags[1:]
}

// HasTag reports whether the entry carries the given tag anywhere in its
// tag list.
func (e TimeEntry) HasTag(t Tag) bool {
	for _, have := range e.Tags {
		if have == t {
			return true
		}
	}
	return false
}

func (e TimeEntry) String() string {
	var b strings.Builder
	for i, t := range e.Tags {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('#')
		b.WriteString(t.Raw())
	}
	if e.Description != "" {
		b.WriteByte(' ')
		b.WriteString(e.Description)
	}
	return b.String()
}
