// Package catalog wraps the Discogs client with logging and lookup history.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jfmyers9/crate/internal/history"
	"github.com/jfmyers9/crate/pkg/discogs"
	"github.com/rs/zerolog"
)

// Client is the subset of *discogs.Client used by Service
type Client interface {
	GetRelease(ctx context.Context, id string) (*discogs.Release, error)
	GetArtist(ctx context.Context, name string) (*discogs.Artist, error)
	GetLabel(ctx context.Context, name string) (*discogs.Label, error)
	Search(ctx context.Context, term, searchType string, page int) (*discogs.SearchResults, error)
}

// Recorder stores lookup history. *history.Store implements it.
type Recorder interface {
	Add(ctx context.Context, e history.Entry) (int64, error)
}

// Service performs catalog lookups
type Service struct {
	client  Client
	history Recorder
	logger  zerolog.Logger
}

// New creates a Service. A nil hist disables history recording.
func New(client Client, hist Recorder, logger zerolog.Logger) *Service {
	return &Service{
		client:  client,
		history: hist,
		logger:  logger.With().Str("component", "catalog").Logger(),
	}
}

// Release fetches a release by ID
func (s *Service) Release(ctx context.Context, id string) (*discogs.Release, error) {
	s.logger.Debug().Str("id", id).Msg("Fetching release")

	start := time.Now()
	release, err := s.client.GetRelease(ctx, id)
	s.finish(ctx, history.KindRelease, id, start, err, func() string {
		return ReleaseSummary(release)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch release %s: %w", id, err)
	}

	return release, nil
}

// Artist fetches an artist by name
func (s *Service) Artist(ctx context.Context, name string) (*discogs.Artist, error) {
	s.logger.Debug().Str("name", name).Msg("Fetching artist")

	start := time.Now()
	artist, err := s.client.GetArtist(ctx, name)
	s.finish(ctx, history.KindArtist, name, start, err, func() string {
		if artist.RealName != "" && artist.RealName != artist.Name {
			return fmt.Sprintf("%s (%s)", artist.Name, artist.RealName)
		}
		return artist.Name
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch artist %q: %w", name, err)
	}

	return artist, nil
}

// Label fetches a label by name
func (s *Service) Label(ctx context.Context, name string) (*discogs.Label, error) {
	s.logger.Debug().Str("name", name).Msg("Fetching label")

	start := time.Now()
	label, err := s.client.GetLabel(ctx, name)
	s.finish(ctx, history.KindLabel, name, start, err, func() string {
		if label.ParentLabel != nil && *label.ParentLabel != "" {
			return fmt.Sprintf("%s (%s)", label.Name, *label.ParentLabel)
		}
		return label.Name
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch label %q: %w", name, err)
	}

	return label, nil
}

// Search runs a search query
func (s *Service) Search(ctx context.Context, term, searchType string, page int) (*discogs.SearchResults, error) {
	s.logger.Debug().
		Str("term", term).
		Str("type", searchType).
		Int("page", page).
		Msg("Searching")

	start := time.Now()
	results, err := s.client.Search(ctx, term, searchType, page)
	s.finish(ctx, history.KindSearch, term, start, err, func() string {
		return fmt.Sprintf("%d results", results.Total)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search for %q: %w", term, err)
	}

	return results, nil
}

// finish logs the outcome of a lookup and records it. summary is only
// called on success.
func (s *Service) finish(ctx context.Context, kind, query string, start time.Time, err error, summary func() string) {
	entry := history.Entry{
		Kind:    kind,
		Query:   query,
		Success: err == nil,
	}

	if err != nil {
		entry.Error = err.Error()
		s.logger.Warn().
			Err(err).
			Str("kind", kind).
			Str("query", query).
			Dur("elapsed", time.Since(start)).
			Msg("Lookup failed")
	} else {
		entry.Summary = summary()
		s.logger.Info().
			Str("kind", kind).
			Str("query", query).
			Str("summary", entry.Summary).
			Dur("elapsed", time.Since(start)).
			Msg("Lookup succeeded")
	}

	if s.history == nil {
		return
	}

	if _, herr := s.history.Add(ctx, entry); herr != nil {
		s.logger.Error().Err(herr).Str("kind", kind).Msg("Failed to record history")
	}
}

// ReleaseSummary formats a release as "Artist - Title".
func ReleaseSummary(r *discogs.Release) string {
	if len(r.Artists) == 0 {
		return r.Title
	}

	names := make([]string, 0, len(r.Artists))
	for _, a := range r.Artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ") + " - " + r.Title
}
