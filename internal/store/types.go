// Package store provides SQLite database access for trackdown's local usage log.
package store

import "time"

// Invocation is one recorded CLI run: which command ran, over which period
// expression, and what the parse produced. Recording is best-effort and
// never blocks a report.
type Invocation struct {
	ID          int64     `json:"id"`
	RunAt       time.Time `json:"run_at"`
	Command     string    `json:"command"`
	Period      string    `json:"period,omitempty"`
	Sources     int       `json:"sources"`
	Entries     int       `json:"entries"`
	ParseErrors int       `json:"parse_errors"`
	DurationMs  int64     `json:"duration_ms"`
	Version     string    `json:"version"`
}

// CommandCount aggregates how often each command has run.
type CommandCount struct {
	Command string `json:"command"`
	Runs    int    `json:"runs"`
}
