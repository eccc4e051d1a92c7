package store

import (
	"time"
)

// RecordInvocation inserts one run and returns its ID. A zero RunAt is
// filled with the current UTC time.
func (db *DB) RecordInvocation(inv *Invocation) (int64, error) {
	runAt := inv.RunAt
	if runAt.IsZero() {
		runAt = time.Now().UTC()
	}
	result, err := db.conn.Exec(
		`INSERT INTO invocations
		(run_at, command, period, sources, entries, parse_errors, duration_ms, version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runAt.Format(time.RFC3339), inv.Command, inv.Period, inv.Sources,
		inv.Entries, inv.ParseErrors, inv.DurationMs, inv.Version,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// RecentInvocations returns the latest n runs, newest first.
func (db *DB) RecentInvocations(n int) ([]Invocation, error) {
	rows, err := db.conn.Query(
		`SELECT id, run_at, command, period, sources, entries, parse_errors, duration_ms, version
		FROM invocations ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Invocation
	for rows.Next() {
		var inv Invocation
		var runAt string
		if err := rows.Scan(
			&inv.ID, &runAt, &inv.Command, &inv.Period, &inv.Sources,
			&inv.Entries, &inv.ParseErrors, &inv.DurationMs, &inv.Version,
		); err != nil {
			return nil, err
		}
		inv.RunAt, _ = time.Parse(time.RFC3339, runAt)
		out = append(out, inv)
	}
	return out, rows.Err()
}

// CommandCounts aggregates total runs per command, busiest first.
func (db *DB) CommandCounts() ([]CommandCount, error) {
	rows, err := db.conn.Query(
		`SELECT command, COUNT(*) FROM invocations GROUP BY command ORDER BY COUNT(*) DESC, command ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CommandCount
	for rows.Next() {
		var cc CommandCount
		if err := rows.Scan(&cc.Command, &cc.Runs); err != nil {
			return nil, err
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}
