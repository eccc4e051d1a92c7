// Package period resolves period expressions like "today", "last-week",
// "2020-07" or "2020-w03" into concrete date ranges. Resolution is relative
// to a Clock, never to the wall clock directly, so every expression stays
// reproducible under test and via the TRACKDOWN_TODAY override.
package period

import (
	"os"
	"time"

	"github.com/blackwell-systems/trackdown/internal/date"
)

// EnvToday is the environment variable that pins "today" for an entire run.
const EnvToday = "TRACKDOWN_TODAY"

// Clock reports the current date.
type Clock interface {
	Today() date.Date
}

// SystemClock returns a Clock backed by the local wall clock.
func SystemClock() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Today() date.Date {
	return date.FromTime(time.Now())
}

// Fixed returns a Clock pinned to the given date.
func Fixed(d date.Date) Clock {
	return fixedClock{today: d}
}

type fixedClock struct {
	today date.Date
}

func (c fixedClock) Today() date.Date {
	return c.today
}

// FromEnv returns the run's Clock: a fixed one when TRACKDOWN_TODAY holds a
// valid YYYY-MM-DD, the system clock otherwise.
func FromEnv() Clock {
	if v := os.Getenv(EnvToday); v != "" {
		if d, err := date.Parse(v); err == nil {
			return Fixed(d)
		}
	}
	return SystemClock()
}
