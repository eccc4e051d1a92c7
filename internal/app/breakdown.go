package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trackdown/internal/ingest"
	"github.com/blackwell-systems/trackdown/internal/period"
	"github.com/blackwell-systems/trackdown/internal/render"
	"github.com/blackwell-systems/trackdown/internal/report"
	"github.com/blackwell-systems/trackdown/internal/track"
)

var (
	breakdownUnit   string
	breakdownFormat string
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown [path] [period]",
	Short: "Show tracked time as a day/week/month/year tree",
	Long: `Parse the log at path and show when the time was spent, grouped
hierarchically down to tracked days: years contain months, months contain
ISO weeks, weeks contain days.

With --unit auto (the default) the tree starts one level above the requested
period: a day shows its week, a week its month, a month or year the whole
year. Without a period, auto groups by month.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runBreakdown,
}

func init() {
	breakdownCmd.Flags().StringVar(&breakdownUnit, "unit", "auto", "Top grouping unit: auto, day, week, month or year")
	breakdownCmd.Flags().StringVar(&breakdownFormat, "format", "", "Output format: text or markdown (default from config)")
	rootCmd.AddCommand(breakdownCmd)
}

// breakdownOutput is the JSON-serializable output for the breakdown command.
type breakdownOutput struct {
	Input   string                  `json:"input"`
	Period  string                  `json:"period,omitempty"`
	Unit    string                  `json:"unit"`
	Groups  []report.BreakdownGroup `json:"groups"`
	Sources int                     `json:"sources"`
	Errors  []string                `json:"errors,omitempty"`
}

func runBreakdown(cmd *cobra.Command, args []string) error {
	started := time.Now()

	cfg, err := setup()
	if err != nil {
		return err
	}
	input, expr, per, err := resolveArgs(cfg, args, period.FromEnv())
	if err != nil {
		return err
	}

	unit := report.UnitMonth
	if breakdownUnit != "auto" {
		if unit, err = report.ParseUnit(breakdownUnit); err != nil {
			return err
		}
	} else if per != nil {
		unit = report.AutoUnit(per.Kind)
	}

	var filter track.Filter
	if per != nil {
		filter = track.RangeFilter{Range: per.DateRange()}
	}

	res, sources, err := ingest.ParsePath(input, cfg.Extensions, filter)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	groups := report.Breakdown(res, unit)

	recordUsage(cfg, "breakdown", expr, sources, res, started)

	if flagJSON {
		return printJSON(breakdownOutput{
			Input:   input,
			Period:  expr,
			Unit:    unit.String(),
			Groups:  groups,
			Sources: sources,
			Errors:  errorStrings(res.Errors),
		})
	}

	format, err := pickFormat(breakdownFormat, cfg)
	if err != nil {
		return err
	}
	fmt.Print(render.RenderBreakdown(format, render.Breakdown{
		Title:  title("Breakdown", input, expr),
		Groups: groups,
		Errors: res.Errors,
	}))
	return nil
}
