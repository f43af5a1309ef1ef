package logging

import (
	"log/slog"
	"os"
)

// New builds the process logger: text output on stderr with the given
// level, wrapped so that values of the named attribute keys never reach
// the log stream in the clear.
func New(level slog.Level, redactKeys []string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(NewRedactingHandler(handler, redactKeys))
}

// ParseLevel maps a config string to a slog level, defaulting to Info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
