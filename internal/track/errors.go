package track

import "fmt"

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// InvalidLineFormat marks an entry line that yielded no tags.
	InvalidLineFormat ErrorKind = iota
	// InvalidTime marks a time token whose numeric part did not parse.
	InvalidTime
	// InvalidDate marks a TT header whose date token is not a valid date.
	InvalidDate
	// MissingTime marks an entry line with tags but no time token.
	MissingTime
	// ErrorReading marks a source that could not be read at all.
	ErrorReading
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidLineFormat:
		return "invalid line format"
	case InvalidTime:
		return "invalid time"
	case InvalidDate:
		return "invalid date"
	case MissingTime:
		return "missing time"
	case ErrorReading:
		return "error reading"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// ParseError is one malformed construct, carrying the offending text: the
// whole line for line-level failures, the bad token for token-level ones.
type ParseError struct {
	Kind ErrorKind
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.Kind, e.Text)
}

// Located pins a ParseError to its source. Line is 1-based; 0 means the
// error concerns the whole source rather than one line.
type Located struct {
	Source string
	Line   int
	Err    *ParseError
}

func (l Located) Error() string {
	if l.Line == 0 {
		return fmt.Sprintf("%s: %s", l.Source, l.Err)
	}
	return fmt.Sprintf("%s:%d: %s", l.Source, l.Line, l.Err)
}

func (l Located) Unwrap() error {
	return l.Err
}
