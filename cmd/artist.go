package cmd

import (
	"github.com/spf13/cobra"
)

// artistCmd represents the artist command
var artistCmd = &cobra.Command{
	Use:   "artist <name>",
	Short: "Show an artist",
	Long: `Fetch an artist by name and print their real name, aliases,
links and releases.

Example:
  crate artist "Aphex Twin"`,
	Args: cobra.ExactArgs(1),
	RunE: runArtist,
}

func init() {
	rootCmd.AddCommand(artistCmd)
}

func runArtist(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	artist, err := s.service.Artist(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return s.print(cmd, artist)
}
