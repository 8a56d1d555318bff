package core

import (
	"io"
	"log/slog"
	"strings"
)

func NewLogger(w io.Writer, cfg Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.DebugLogs {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// discardLogger is used when a caller does not supply one.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
