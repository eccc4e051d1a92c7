package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/blackwell-systems/trackdown/internal/config"
	"github.com/blackwell-systems/trackdown/internal/period"
	"github.com/blackwell-systems/trackdown/internal/render"
	"github.com/blackwell-systems/trackdown/internal/store"
	"github.com/blackwell-systems/trackdown/internal/track"
)

// setup loads configuration and applies the global output settings.
func setup() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	setupColor(cfg)
	return cfg, nil
}

// resolveArgs splits the positional arguments of a report-style command into
// an input path and an optional period. With a configured input path, a
// single argument that parses as a period expression is taken as the period;
// otherwise it is the input path.
func resolveArgs(cfg *config.Config, args []string, clock period.Clock) (input, expr string, per *period.Period, err error) {
	input = cfg.Input
	switch len(args) {
	case 1:
		if input != "" {
			if p, perr := period.Parse(args[0], clock); perr == nil {
				return input, args[0], &p, nil
			}
		}
		input = args[0]
	case 2:
		input, expr = args[0], args[1]
	}
	if input == "" {
		return "", "", nil, fmt.Errorf("no input path: pass one as an argument or set 'input' in the config file")
	}
	if expr != "" {
		p, perr := period.Parse(expr, clock)
		if perr != nil {
			return "", "", nil, perr
		}
		per = &p
	}
	return input, expr, per, nil
}

// pickFormat resolves the output format from a --format flag value, falling
// back to the configured default.
func pickFormat(flagValue string, cfg *config.Config) (render.Format, error) {
	s := flagValue
	if s == "" {
		s = cfg.Output.Format
	}
	return render.ParseFormat(s)
}

// title builds a section title naming the data source and, when one was
// given, the period expression.
func title(kind, input, expr string) string {
	if expr == "" {
		return fmt.Sprintf("%s: %s", kind, input)
	}
	return fmt.Sprintf("%s: %s (%s)", kind, input, expr)
}

// recordUsage appends one row to the local usage database. Recording is
// best-effort: every failure is discarded so it can never break the command
// that did the real work.
func recordUsage(cfg *config.Config, command, periodExpr string, sources int, res track.ParseResult, started time.Time) {
	if !cfg.Usage.Enabled {
		return
	}
	db, err := store.Open(config.DBPath())
	if err != nil {
		return
	}
	defer func() { _ = db.Close() }()
	_, _ = db.RecordInvocation(&store.Invocation{
		Command:     command,
		Period:      periodExpr,
		Sources:     sources,
		Entries:     res.EntryCount(),
		ParseErrors: len(res.Errors),
		DurationMs:  time.Since(started).Milliseconds(),
		Version:     appVersion,
	})
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// errorStrings flattens located parse errors for JSON output.
func errorStrings(errs []track.Located) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}
