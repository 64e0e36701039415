package cmd

import (
	"github.com/spf13/cobra"
)

// labelCmd represents the label command
var labelCmd = &cobra.Command{
	Use:   "label <name>",
	Short: "Show a record label",
	Long: `Fetch a record label by name and print its profile, parent label,
sublabels and releases.

Example:
  crate label "Warp Records"`,
	Args: cobra.ExactArgs(1),
	RunE: runLabel,
}

func init() {
	rootCmd.AddCommand(labelCmd)
}

func runLabel(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	label, err := s.service.Label(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return s.print(cmd, label)
}
