package cmd

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log file rotation limits
const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
	logMaxAgeDays = 30
)

// setupLogger creates a logger with the specified configuration.
// Console output goes to console. With a log file, JSON lines are also
// written there and the returned closer must be closed on exit.
func setupLogger(console io.Writer, logFile, logLevel string) (zerolog.Logger, io.Closer) {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil || logLevel == "" {
		level = zerolog.WarnLevel
	}

	var output io.Writer = zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339}
	var closer io.Closer

	if logFile != "" {
		lj := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
		}
		output = zerolog.MultiLevelWriter(output, lj)
		closer = lj
	}

	logger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, closer
}

