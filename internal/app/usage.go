package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trackdown/internal/config"
	"github.com/blackwell-systems/trackdown/internal/output"
	"github.com/blackwell-systems/trackdown/internal/store"
)

var usageLast int

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "List recorded invocations of this tool",
	Long: `Show the local usage log: when trackdown ran, which command, over which
period, and what the parse produced. Recording can be turned off with
'usage.enabled: false' in the config file.`,
	RunE: runUsage,
}

func init() {
	usageCmd.Flags().IntVar(&usageLast, "last", 10, "Number of recent invocations to show")
	rootCmd.AddCommand(usageCmd)
}

// usageOutput is the JSON-serializable output for the usage command.
type usageOutput struct {
	Invocations []store.Invocation   `json:"invocations"`
	Commands    []store.CommandCount `json:"commands"`
}

func runUsage(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening usage database: %w", err)
	}
	defer func() { _ = db.Close() }()

	invocations, err := db.RecentInvocations(usageLast)
	if err != nil {
		return fmt.Errorf("loading invocations: %w", err)
	}
	counts, err := db.CommandCounts()
	if err != nil {
		return fmt.Errorf("loading command counts: %w", err)
	}

	if flagJSON {
		return printJSON(usageOutput{Invocations: invocations, Commands: counts})
	}

	fmt.Println(output.Section("Recent Invocations"))
	fmt.Println()
	if len(invocations) == 0 {
		fmt.Println(" " + output.StyleMuted.Render("nothing recorded yet"))
		return nil
	}

	tbl := output.NewTable("When", "Command", "Period", "Sources", "Entries", "Problems", "Took").
		AlignRight(3, 4, 5, 6)
	for _, inv := range invocations {
		per := inv.Period
		if per == "" {
			per = "-"
		}
		problems := fmt.Sprintf("%d", inv.ParseErrors)
		if inv.ParseErrors > 0 {
			problems = output.StyleError.Render(problems)
		}
		tbl.AddRow(
			inv.RunAt.Local().Format("2006-01-02 15:04"),
			output.StyleTag.Render(inv.Command),
			per,
			fmt.Sprintf("%d", inv.Sources),
			fmt.Sprintf("%d", inv.Entries),
			problems,
			fmt.Sprintf("%dms", inv.DurationMs),
		)
	}
	tbl.Print()

	fmt.Println()
	fmt.Println(output.Section("Per Command"))
	fmt.Println()
	byCmd := output.NewTable("Command", "Runs").AlignRight(1)
	for _, c := range counts {
		byCmd.AddRow(output.StyleTag.Render(c.Command), fmt.Sprintf("%d", c.Runs))
	}
	byCmd.Print()

	return nil
}
