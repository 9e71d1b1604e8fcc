package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type implLogger struct {
	logger zerolog.Logger
}

// New creates a Logger writing human-readable lines to stderr
func New(level string) Logger {
	return NewWithWriter(level, zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	})
}

// NewWithWriter creates a Logger writing JSON lines to w
func NewWithWriter(level string, w io.Writer) Logger {
	return &implLogger{
		logger: zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger(),
	}
}

// LevelForVerbosity raises the configured level by the -v count
func LevelForVerbosity(level string, verbosity int) string {
	switch {
	case verbosity >= 2:
		return "debug"
	case verbosity == 1 && parseLevel(level) > zerolog.InfoLevel:
		return "info"
	case verbosity == 1:
		return "debug"
	}
	return level
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Debug().Ctx(ctx).Msgf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Info().Ctx(ctx).Msgf(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Warn().Ctx(ctx).Msgf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Error().Ctx(ctx).Msgf(msg, args...)
}

// With returns a child logger tagged with a component name
func (l *implLogger) With(component string) Logger {
	return &implLogger{logger: l.logger.With().Str("component", component).Logger()}
}
