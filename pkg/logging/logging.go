// Package logging configures the process-wide slog logger. Logs go to a
// rotating file so they never mix with command output.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Level maps a config string to a slog level. Unknown values mean info.
func Level(s string) slog.Level {
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

// Setup installs a JSON logger writing to path, or discarding when path is
// empty, as the slog default. The returned closer releases the file.
func Setup(path, level string) (*slog.Logger, io.Closer) {
	var (
		writer io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if path != "" {
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, //days
			Compress:   true,
		}
		writer, closer = lj, lj
	}
	l := New(writer, level)
	slog.SetDefault(l)
	return l, closer
}

// New builds a JSON logger on w.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: Level(level),
	})).With("app", "journal")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
