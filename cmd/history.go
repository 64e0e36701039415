package cmd

import (
	"fmt"
	"time"

	"github.com/jfmyers9/crate/internal/config"
	"github.com/jfmyers9/crate/internal/history"
	"github.com/jfmyers9/crate/internal/render"
	"github.com/spf13/cobra"
)

var (
	historyLimit          int
	historyKind           string
	historySearch         string
	historyClearOlderThan time.Duration
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent lookups",
	Long: `List the lookups recorded in the local history database, newest first.

The database lives at ~/.local/share/crate/history.db unless history.path
is set in the config file.

Example:
  crate history --limit 50
  crate history --search warp --kind label
  crate history --clear-older-than 720h`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of entries to show (0 for all)")
	historyCmd.Flags().StringVar(&historyKind, "kind", "", "Only show one kind (release, artist, label, search)")
	historyCmd.Flags().StringVarP(&historySearch, "search", "s", "", "Only show entries whose query contains this text")
	historyCmd.Flags().DurationVar(&historyClearOlderThan, "clear-older-than", 0, "Delete entries older than this age, e.g. 720h")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := openHistory(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if historyClearOlderThan > 0 {
		deleted, err := store.Cleanup(ctx, historyClearOlderThan)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d entries older than %s\n", deleted, historyClearOlderThan)
		return nil
	}

	var entries []history.Entry
	if historySearch != "" || historyKind != "" {
		entries, err = store.Search(ctx, historyKind, historySearch)
		if err == nil && historyLimit > 0 && len(entries) > historyLimit {
			entries = entries[:historyLimit]
		}
	} else {
		entries, err = store.Recent(ctx, historyLimit)
	}
	if err != nil {
		return err
	}

	if flagJSON || cfg.OutputFormat == config.FormatJSON {
		if entries == nil {
			entries = []history.Entry{}
		}
		return render.JSON(out, entries)
	}
	if err := render.Text(out, entries); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	total, err := store.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d of %d lookups\n", len(entries), total)
	return nil
}
