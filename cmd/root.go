package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jfmyers9/crate/pkg/discogs"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Global flags
var (
	flagLogLevel  string
	flagLogFile   string
	flagJSON      bool
	flagNoHistory bool
	flagTimeout   time.Duration
	flagUserAgent string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "crate",
	Short: "Command line client for the Discogs database",
	Long: `crate looks up releases, artists and labels in the Discogs database.

Lookups print a readable summary by default, or JSON with --json.
Every lookup is recorded in a local history database that can be
listed with 'crate history'.

Run 'crate auth' once to store your Discogs API key.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", errorMessage(err))
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error) (default from config: warn)")
	pf.StringVar(&flagLogFile, "log-file", "", "Also write JSON logs to this file, rotated by size")
	pf.BoolVar(&flagJSON, "json", false, "Print results as JSON")
	pf.BoolVar(&flagNoHistory, "no-history", false, "Do not record this lookup in the history")
	pf.DurationVar(&flagTimeout, "timeout", 0, "Request timeout, e.g. 10s (default from config: 60s)")
	pf.StringVar(&flagUserAgent, "user-agent", "", "Suffix appended to the User-Agent header")
}

// errorMessage turns SDK errors into a single line for the terminal
func errorMessage(err error) string {
	var apiErr *discogs.APIError
	var netErr *discogs.TransportError

	switch {
	case errors.As(err, &apiErr) && apiErr.Code != 0:
		return fmt.Sprintf("%s (HTTP %d)", apiErr.Message, apiErr.Code)
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.As(err, &netErr):
		return "network error: " + netErr.Message
	default:
		return err.Error()
	}
}
