package track

import (
	"math"
	"strconv"
	"strings"

	"github.com/blackwell-systems/trackdown/internal/date"
)

// Parse scans the full text of one source and returns its entries and
// errors. filter may be nil to keep every entry; sourceName labels error
// locations. Parsing always completes: bad lines become errors, good lines
// still land.
func Parse(text string, filter Filter, sourceName string) ParseResult {
	p := parser{filter: filter, source: sourceName, result: NewParseResult()}
	for i, raw := range strings.Split(text, "\n") {
		p.line(i+1, raw)
	}
	return p.result
}

// ReadFailure returns a result holding only an ErrorReading error for the
// given source. Used when a source cannot be read at all.
func ReadFailure(sourceName string, err error) ParseResult {
	r := NewParseResult()
	r.addError(sourceName, 0, &ParseError{Kind: ErrorReading, Text: err.Error()})
	return r
}

type parser struct {
	filter Filter
	source string
	result ParseResult

	// current is the date of the open TT section; inDated is false before
	// the first TT header and after any header that fails or is not a TT
	// header.
	current date.Date
	inDated bool
}

func (p *parser) line(num int, raw string) {
	line := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(line, "#"):
		p.header(num, line)
	case isEntryLine(line):
		p.entry(num, line)
	}
	// Blank lines, prose, and plain bullets are not tracked content.
}

// header handles a markdown heading. Only "TT" headings open a dated
// section; any other heading closes the current one so later bullets are
// not misattributed to it.
func (p *parser) header(num int, line string) {
	p.inDated = false
	fields := strings.Fields(strings.TrimLeft(line, "#"))
	if len(fields) < 2 || fields[0] != "TT" {
		return
	}
	d, err := date.Parse(fields[1])
	if err != nil {
		p.result.addError(p.source, num, &ParseError{Kind: InvalidDate, Text: fields[1]})
		return
	}
	p.current = d
	p.inDated = true
}

func (p *parser) entry(num int, line string) {
	if !p.inDated {
		return
	}
	entry, perr := parseEntryLine(line)
	if perr != nil {
		p.result.addError(p.source, num, perr)
		return
	}
	if p.filter != nil && !p.filter.Matches(entry, p.current) {
		return
	}
	p.result.add(p.current, entry)
}

// isEntryLine reports whether a trimmed line is a tracking bullet: a dash
// whose first following token starts with '#'. Plain bullets without a tag
// are ordinary markdown and stay ignored.
func isEntryLine(line string) bool {
	rest, ok := strings.CutPrefix(line, "-")
	if !ok {
		return false
	}
	return strings.HasPrefix(strings.TrimLeft(rest, " \t"), "#")
}

// parseEntryLine splits a bullet into tags, time tokens, and description
// words. Tokens may appear in any order; only the relative order of tags is
// meaningful.
func parseEntryLine(line string) (TimeEntry, *ParseError) {
	body := strings.TrimPrefix(line, "-")
	var (
		entry   TimeEntry
		desc    []string
		sawTime bool
	)
	for _, tok := range strings.Fields(body) {
		switch {
		case len(tok) > 1 && tok[0] == '#':
			entry.Tags = append(entry.Tags, ParseTag(tok[1:]))
		case isTimeToken(tok):
			minutes, ok := timeTokenMinutes(tok)
			if !ok {
				return TimeEntry{}, &ParseError{Kind: InvalidTime, Text: tok}
			}
			entry.Minutes += minutes
			sawTime = true
		default:
			desc = append(desc, tok)
		}
	}
	if len(entry.Tags) == 0 {
		return TimeEntry{}, &ParseError{Kind: InvalidLineFormat, Text: line}
	}
	if !sawTime {
		return TimeEntry{}, &ParseError{Kind: MissingTime, Text: line}
	}
	entry.Description = strings.Join(desc, " ")
	return entry, nil
}

// isTimeToken reports whether tok has duration shape: a leading digit and a
// trailing unit letter. Shape alone decides; a token that looks like a
// duration but fails to parse is an InvalidTime error, not description
// text.
func isTimeToken(tok string) bool {
	if len(tok) < 2 {
		return false
	}
	if tok[0] < '0' || tok[0] > '9' {
		return false
	}
	switch tok[len(tok)-1] {
	case 'm', 'h', 'p':
		return true
	}
	return false
}

// timeTokenMinutes converts a duration token to minutes: m is a minute, p a
// 30-minute pomodoro, h an hour.
func timeTokenMinutes(tok string) (int, bool) {
	n, err := strconv.Atoi(tok[:len(tok)-1])
	if err != nil || n < 0 || n > math.MaxInt/60 {
		return 0, false
	}
	switch tok[len(tok)-1] {
	case 'm':
		return n, true
	case 'p':
		return n * 30, true
	case 'h':
		return n * 60, true
	}
	return 0, false
}
