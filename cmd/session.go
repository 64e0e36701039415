package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jfmyers9/crate/internal/catalog"
	"github.com/jfmyers9/crate/internal/config"
	"github.com/jfmyers9/crate/internal/history"
	"github.com/jfmyers9/crate/internal/render"
	"github.com/jfmyers9/crate/pkg/discogs"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// session holds everything a lookup command needs
type session struct {
	cfg     *config.Config
	logger  zerolog.Logger
	service *catalog.Service
	store   *history.Store
	timeout time.Duration

	logCloser io.Closer
}

// newSession loads configuration, applies the global flags and builds the
// catalog service. console receives human readable log output.
func newSession(console io.Writer) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagJSON {
		cfg.OutputFormat = config.FormatJSON
	}
	if flagNoHistory {
		cfg.History.Enabled = false
	}
	if flagUserAgent != "" {
		cfg.Discogs.UserAgent = flagUserAgent
	}

	timeout := cfg.Discogs.TimeoutDuration()
	if flagTimeout > 0 {
		timeout = flagTimeout
	}

	if cfg.Discogs.APIKey == "" {
		return nil, fmt.Errorf("Discogs API key not configured. Run 'crate auth' or set CRATE_DISCOGS_API_KEY")
	}

	logger, logCloser := setupLogger(console, cfg.Log.File, cfg.Log.Level)

	userAgent := cfg.Discogs.UserAgent
	if userAgent == "" {
		userAgent = "crate/" + version
	}

	client, err := discogs.NewClient(discogs.Config{
		APIKey:    cfg.Discogs.APIKey,
		UserAgent: userAgent,
		BaseURL:   cfg.Discogs.BaseURL,
		RateLimit: cfg.Discogs.RateLimit,
		Logger: catalog.ZerologAdapter{
			Logger: logger.With().Str("component", "discogs").Logger(),
		},
	})
	if err != nil {
		closeQuietly(logCloser)
		return nil, fmt.Errorf("failed to create Discogs client: %w", err)
	}
	// zero means no deadline here, unlike in Config
	client.SetTimeout(timeout)

	s := &session{
		cfg:       cfg,
		logger:    logger,
		timeout:   timeout,
		logCloser: logCloser,
	}

	var recorder catalog.Recorder
	if cfg.History.Enabled {
		store, err := openHistory(cfg.History.Path)
		if err != nil {
			// history is best effort
			logger.Warn().Err(err).Str("path", cfg.History.Path).Msg("History disabled")
		} else {
			s.store = store
			recorder = store
		}
	}

	s.service = catalog.New(client, recorder, logger)
	return s, nil
}

// openHistory opens the history database, creating its directory
func openHistory(path string) (*history.Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	return history.Open(path)
}

// Close releases the history database and log file
func (s *session) Close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to close history")
		}
	}
	closeQuietly(s.logCloser)
}

// print writes v in the configured output format
func (s *session) print(cmd *cobra.Command, v any) error {
	if s.cfg.OutputFormat == config.FormatJSON {
		return render.JSON(cmd.OutOrStdout(), v)
	}
	return render.Text(cmd.OutOrStdout(), v)
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
