package cmd

import (
	"fmt"
	"strings"

	"github.com/jfmyers9/crate/pkg/discogs"
	"github.com/spf13/cobra"
)

var (
	searchType string
	searchPage int
)

// searchTypes lists the values accepted by --type
var searchTypes = []string{
	discogs.SearchAll,
	discogs.SearchArtists,
	discogs.SearchLabels,
	discogs.SearchReleases,
	discogs.SearchCatNo,
}

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search the Discogs database",
	Long: `Search the Discogs database and list matching artists, labels and
releases. Exact matches are listed first.

The ID column can be passed straight to 'crate release', 'crate artist'
or 'crate label'.

Example:
  crate search Stockholm --type releases
  crate search "Warp" --page 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&searchType, "type", "t", discogs.SearchAll,
		"Search type ("+strings.Join(searchTypes, ", ")+")")
	searchCmd.Flags().IntVarP(&searchPage, "page", "p", 1, "Results page")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if !validSearchType(searchType) {
		return fmt.Errorf("invalid search type %q (want one of %s)", searchType, strings.Join(searchTypes, ", "))
	}
	if searchPage < 1 {
		return fmt.Errorf("page must be at least 1")
	}

	s, err := newSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	term := strings.Join(args, " ")
	results, err := s.service.Search(cmd.Context(), term, searchType, searchPage)
	if err != nil {
		return err
	}

	return s.print(cmd, results)
}

func validSearchType(t string) bool {
	for _, v := range searchTypes {
		if t == v {
			return true
		}
	}
	return false
}
