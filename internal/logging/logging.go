package logging

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

// New builds the application logger. FormatText renders human-readable
// console lines; anything else produces JSON.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	if format == FormatText {
		return slog.New(log.NewWithOptions(w, log.Options{
			Level:           charmLevel(level),
			Formatter:       log.TextFormatter,
			ReportTimestamp: true,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func charmLevel(level slog.Level) log.Level {
	switch {
	case level <= slog.LevelDebug:
		return log.DebugLevel
	case level <= slog.LevelInfo:
		return log.InfoLevel
	case level <= slog.LevelWarn:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}
