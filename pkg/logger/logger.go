// Package logger configures the process-wide slog logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// Log is the global logger instance
var Log = slog.Default()

// ParseLevel maps a config value such as "debug" or "WARN" to a slog level.
// Unknown values fall back to warn, so commands stay quiet on stderr.
func ParseLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelWarn
	}
	return level
}

// Init installs the global logger. Text goes to w at the given level. When
// file is set, records are also appended to it as JSON at debug level.
// The returned close function releases the file.
func Init(w io.Writer, level, file string) (closeFn func() error, err error) {
	closeFn = func() error { return nil }
	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}),
	}

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return closeFn, fmt.Errorf("logger: open %s: %w", file, err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		closeFn = f.Close
	}

	// Use multi-handler if we have multiple, otherwise use single
	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	Log = slog.New(handler)
	slog.SetDefault(Log)
	return closeFn, nil
}
