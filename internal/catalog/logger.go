package catalog

import "github.com/rs/zerolog"

// ZerologAdapter lets the Discogs client log through zerolog
type ZerologAdapter struct {
	Logger zerolog.Logger
}

// Debugf implements discogs.Logger
func (a ZerologAdapter) Debugf(format string, args ...interface{}) {
	a.Logger.Debug().Msgf(format, args...)
}
