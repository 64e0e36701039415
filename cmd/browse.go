package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jfmyers9/crate/internal/tui"
	"github.com/jfmyers9/crate/pkg/discogs"
	"github.com/spf13/cobra"
)

var browseType string

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog in a terminal UI",
	Long: `Open an interactive browser for the Discogs database.

Type a query and press Enter to search. Select a result with Enter to
show the release, artist or label it points to.

Keys:
  enter   search / open the selected result
  tab     move focus between search, results and details
  q, esc  quit (q only outside the search box)

Logs are only written when --log-file is given, so they do not
corrupt the screen.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringVarP(&browseType, "type", "t", discogs.SearchAll, "Search type used by the browser")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !validSearchType(browseType) {
		return fmt.Errorf("invalid search type %q (want one of %s)", browseType, strings.Join(searchTypes, ", "))
	}

	// the terminal belongs to the UI
	s, err := newSession(io.Discard)
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := tui.DefaultConfig()
	cfg.SearchType = browseType
	if s.timeout > 0 {
		cfg.Timeout = s.timeout
	}

	return tui.NewWithConfig(s.service, cfg).Run()
}
