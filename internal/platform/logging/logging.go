package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// ParseLevel maps a LOG_LEVEL value to a slog level. Unknown values mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// New builds the JSON logger. With a non-empty file, records also go to a
// rotating log file.
func New(level, file string) (*slog.Logger, io.Closer) {
	var out io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}

	if file != "" {
		rotating := rotatingFile(file)
		out = io.MultiWriter(os.Stdout, rotating)
		closer = rotating
	}

	return newWithWriter(out, ParseLevel(level)), closer
}

// NewFileOnly builds a JSON logger that writes to the rotating file alone,
// for commands whose stdout is their output.
func NewFileOnly(level, file string) (*slog.Logger, io.Closer) {
	rotating := rotatingFile(file)
	return newWithWriter(rotating, ParseLevel(level)), rotating
}

func rotatingFile(file string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename: file,
		MaxSize:  100, // megabytes
		MaxAge:   28,  // days
		Compress: true,
	}
}

func newWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
