package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jfmyers9/crate/internal/config"
	"github.com/jfmyers9/crate/pkg/discogs"
	"github.com/spf13/cobra"
)

var authSkipVerify bool

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Store your Discogs API key",
	Long: `Store your Discogs API key in the config file.

You'll be prompted for the key, which is checked against the API with a
single lookup before it is saved to ~/.config/crate/config.yaml.

You can get an API key from: https://www.discogs.com/settings/developers`,
	Args: cobra.NoArgs,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)

	authCmd.Flags().BoolVar(&authSkipVerify, "skip-verify", false, "Save the key without checking it")
}

func runAuth(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Fprintln(out, "Discogs Authentication")
	fmt.Fprintln(out, "======================")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "You can get an API key from: https://www.discogs.com/settings/developers")
	fmt.Fprintln(out)

	if cfg.Discogs.APIKey != "" {
		fmt.Fprintf(out, "Found existing API key: %s\n", maskKey(cfg.Discogs.APIKey))
		fmt.Fprint(out, "\nReplace it? [y/N]: ")
		response, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read response: %w", err)
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(out, "Keeping the existing key.")
			return nil
		}
	}

	fmt.Fprint(out, "Enter your Discogs API key: ")
	apiKey, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read API key: %w", err)
	}
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return fmt.Errorf("API key is required")
	}

	if !authSkipVerify {
		fmt.Fprintln(out, "\nChecking the key...")
		if err := verifyKey(cmd.Context(), cfg, apiKey); err != nil {
			return fmt.Errorf("key check failed: %w", err)
		}
	}

	cfg.Discogs.APIKey = apiKey
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(out, "\n✓ API key saved to %s/config.yaml\n", config.GetConfigDir())
	fmt.Fprintln(out, "\nTry it with: crate search \"Aphex Twin\"")

	return nil
}

// verifyKey makes one search with the key. Only an authorization failure
// rejects it.
func verifyKey(ctx context.Context, cfg *config.Config, apiKey string) error {
	client, err := discogs.NewClient(discogs.Config{
		APIKey:    apiKey,
		Timeout:   15 * time.Second,
		UserAgent: "crate/" + version,
		BaseURL:   cfg.Discogs.BaseURL,
	})
	if err != nil {
		return err
	}

	_, err = client.Search(ctx, "test", discogs.SearchArtists, 1)
	var apiErr *discogs.APIError
	if errors.As(err, &apiErr) && (apiErr.Code == 401 || apiErr.Code == 403) {
		return err
	}
	var netErr *discogs.TransportError
	if errors.As(err, &netErr) {
		return err
	}
	return nil
}

// maskKey shows only the last four characters of a key
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
