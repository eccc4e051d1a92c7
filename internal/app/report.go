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
	reportProject  string
	reportDetails  string
	reportOutcomes bool
	reportLimit    bool
	reportFormat   string
)

var reportCmd = &cobra.Command{
	Use:   "report [path] [period]",
	Short: "Summarize tracked time per project",
	Long: `Parse the log at path (a single file, or a directory walked recursively)
and show total time per leading tag, with each tag's share of the whole.

The optional period narrows the report: today, yesterday, this-week,
last-week, this-month, last-month (or their t/y/tw/lw/tm/lm short forms),
month-N, a year (2025), a month (2025-07), an ISO week (2025-w29), or an
exact date (2025-07-14, meaning that date onward). When the input path is
configured, the period may be the only argument.

Parse problems never abort the report; they are listed after it.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportProject, "project", "", "Only count entries tagged #prj-<name>")
	reportCmd.Flags().StringVar(&reportDetails, "details", "", "Break one tag down into its tasks ('all' for every main tag)")
	reportCmd.Flags().BoolVar(&reportOutcomes, "outcomes", false, "Also total the tags entries carry beyond their first")
	reportCmd.Flags().BoolVar(&reportLimit, "limit", false, "Cut the list once the leading shares cover the configured threshold")
	reportCmd.Flags().StringVar(&reportFormat, "format", "", "Output format: text or markdown (default from config)")
	rootCmd.AddCommand(reportCmd)
}

// reportOutput is the JSON-serializable output for the report command.
type reportOutput struct {
	Input    string                 `json:"input"`
	Period   string                 `json:"period,omitempty"`
	Tracking *report.TrackingPeriod `json:"tracking,omitempty"`
	Total    int                    `json:"total_minutes"`
	Average  int                    `json:"average_per_day"`
	Totals   []report.TimeTotal     `json:"totals"`
	Outcomes []report.TagUsage      `json:"outcomes,omitempty"`
	Details  []report.TagDetails    `json:"details,omitempty"`
	Sources  int                    `json:"sources"`
	Errors   []string               `json:"errors,omitempty"`
}

func runReport(cmd *cobra.Command, args []string) error {
	started := time.Now()

	cfg, err := setup()
	if err != nil {
		return err
	}
	input, expr, per, err := resolveArgs(cfg, args, period.FromEnv())
	if err != nil {
		return err
	}

	var filters []track.Filter
	if per != nil {
		filters = append(filters, track.RangeFilter{Range: per.DateRange()})
	}
	if reportProject != "" {
		filters = append(filters, track.ProjectFilter{Name: reportProject})
	}
	var filter track.Filter
	if len(filters) > 0 {
		filter = track.And(filters...)
	}

	res, sources, err := ingest.ParsePath(input, cfg.Extensions, filter)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	totals := report.Totals(res)
	if reportLimit {
		totals = report.LimitTotals(totals, cfg.LimitThreshold)
	}

	rep := render.Report{
		Title:   title("Report", input, expr),
		Total:   res.TotalMinutes(),
		Average: report.AveragePerDay(res),
		Totals:  totals,
		Errors:  res.Errors,
	}
	if tp, ok := report.Tracking(res); ok {
		rep.Period = &tp
	}
	if reportOutcomes {
		rep.Outcomes = report.OutcomeTotals(res)
	}
	switch reportDetails {
	case "":
	case "all":
		rep.Details = report.Details(res)
	default:
		tag := track.ParseTag(reportDetails)
		tasks := report.TaskDetails(res, tag)
		minutes := 0
		for _, task := range tasks {
			minutes += task.Minutes
		}
		rep.Details = []report.TagDetails{{Tag: tag.Raw(), Minutes: minutes, Tasks: tasks}}
	}

	recordUsage(cfg, "report", expr, sources, res, started)

	if flagJSON {
		return printJSON(reportOutput{
			Input:    input,
			Period:   expr,
			Tracking: rep.Period,
			Total:    rep.Total,
			Average:  rep.Average,
			Totals:   rep.Totals,
			Outcomes: rep.Outcomes,
			Details:  rep.Details,
			Sources:  sources,
			Errors:   errorStrings(res.Errors),
		})
	}

	format, err := pickFormat(reportFormat, cfg)
	if err != nil {
		return err
	}
	fmt.Print(render.RenderReport(format, rep))
	return nil
}
