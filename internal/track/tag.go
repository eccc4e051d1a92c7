// Package track parses plain-text time logs into dated time entries.
//
// A log is a line-oriented markdown-like file. Section headers of the form
// "# TT 2020-01-01" open a dated section; bullet lines starting with "- #"
// inside a section record entries made of tags, time tokens, and free text:
//
//	## TT 2020-07-13
//	- #prj-website #design 2h 30m reworked the landing page
//	- #meetings 45m weekly sync
//
// Parsing never aborts: malformed lines are collected as located errors and
// the rest of the file still parses.
package track

import "strings"

// projectPrefix marks a tag as naming a project rather than a context.
const projectPrefix = "prj-"

// TagKind discriminates project tags from context tags.
type TagKind int

const (
	// Project tags name a project; the prj- prefix is stripped from Name.
	Project TagKind = iota
	// Context tags classify an entry within a project (activity, outcome).
	Context
)

// Tag is one #-label on an entry line, without the leading '#'.
type Tag struct {
	Kind TagKind
	Name string
}

// ParseTag interprets the raw textual form of a tag. A "prj-" prefix makes
// it a project tag; everything else is a context tag. Tag text is
// case-sensitive and never empty here (the parser only passes non-empty
// text).
func ParseTag(raw string) Tag {
	if rest, ok := strings.CutPrefix(raw, projectPrefix); ok {
		return Tag{Kind: Project, Name: rest}
	}
	return Tag{Kind: Context, Name: raw}
}

// ProjectTag returns the project tag with the given name.
func ProjectTag(name string) Tag {
	return Tag{Kind: Project, Name: name}
}

// Raw returns the textual form of the tag as it appears in a log, without
// the leading '#'. ParseTag(t.Raw()) == t.
func (t Tag) Raw() string {
	if t.Kind == Project {
		return projectPrefix + t.Name
	}
	return t.Name
}

func (t Tag) String() string {
	return t.Raw()
}
