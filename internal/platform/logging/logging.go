// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParseLevel maps LOG_LEVEL values to slog levels. Unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a JSON logger in gin release mode and a text logger otherwise.
func NewLogger(w io.Writer, level, ginMode string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if ginMode == gin.ReleaseMode {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup installs the logger as the slog default.
func Setup(w io.Writer, level string) *slog.Logger {
	l := NewLogger(w, level, gin.Mode())
	slog.SetDefault(l)
	return l
}
