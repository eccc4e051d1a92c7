package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trackdown/internal/ingest"
	"github.com/blackwell-systems/trackdown/internal/output"
	"github.com/blackwell-systems/trackdown/internal/period"
	"github.com/blackwell-systems/trackdown/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve [path]",
	Short: "Run the local HTML dashboard",
	Long: `Serve the report and breakdown for the log at path as a local web page.
The page re-parses the log on every request, so edits show up on reload;
?period= and ?project= queries narrow it the same way the report flags do.

The dashboard binds to localhost and carries no authentication. Do not
point --addr at a public interface.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8427", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	started := time.Now()

	cfg, err := setup()
	if err != nil {
		return err
	}
	input := cfg.Input
	if len(args) == 1 {
		input = args[0]
	}
	if input == "" {
		return fmt.Errorf("no input path: pass one as an argument or set 'input' in the config file")
	}

	// Parse once up front so a bad input path fails here, not on the first
	// page load.
	res, sources, err := ingest.ParsePath(input, cfg.Extensions, nil)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	srv, err := web.NewServer(input, cfg.Extensions, cfg.LimitThreshold, period.FromEnv())
	if err != nil {
		return err
	}

	recordUsage(cfg, "serve", "", sources, res, started)

	fmt.Printf("%s http://%s\n",
		output.StyleHeader.Render("trackdown dashboard:"), serveAddr)
	fmt.Println(output.StyleMuted.Render("watching " + input + ", Ctrl-C to stop"))

	httpServer := &http.Server{
		Addr:              serveAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
