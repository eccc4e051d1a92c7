// Package app contains the Cobra command tree for trackdown.
package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trackdown/internal/config"
	"github.com/blackwell-systems/trackdown/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagConfig  string
	flagNoColor bool
	flagJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "trackdown",
	Short: "Time reports from plain-text work logs",
	Long: `trackdown reads markdown work logs with TT date sections and tagged
bullet entries, and reports where the time went.

Log format:

    ## TT 2025-07-14

    - #prj-website #design 2h wireframes for the landing page
    - #meeting 45m sprint planning

Run 'trackdown report <path> this-week' for a first look.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("trackdown", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  report     Summarize tracked time per project")
		fmt.Println("  breakdown  Show tracked time as a day/week/month/year tree")
		fmt.Println("  serve      Run the local HTML dashboard")
		fmt.Println("  usage      List recorded invocations of this tool")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/trackdown/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}

// setupColor disables styling when asked to, when configured off, or when
// stdout is not a terminal.
func setupColor(cfg *config.Config) {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if flagNoColor || !cfg.Output.Color || !tty {
		output.SetNoColor(true)
	}
}
