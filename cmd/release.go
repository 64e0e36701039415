package cmd

import (
	"github.com/spf13/cobra"
)

// releaseCmd represents the release command
var releaseCmd = &cobra.Command{
	Use:   "release <id>",
	Short: "Show a release",
	Long: `Fetch a release by its Discogs ID and print its details:
artists, labels, formats, genres, credits and tracklist.

Example:
  crate release 1
  crate release 1 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runRelease,
}

func init() {
	rootCmd.AddCommand(releaseCmd)
}

func runRelease(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	release, err := s.service.Release(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return s.print(cmd, release)
}
