package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the shared slog instance for the process
var Logger *slog.Logger

// Init configures the logger from LOG_LEVEL and LOG_FORMAT environment
// variables. Logs go to stderr so they never interleave with draft output
// on stdout. Format "json" gives structured logs; the default is text.
func Init() {
	InitWithWriter(os.Stderr)
}

// InitWithWriter is Init with an explicit destination, used by tests
func InitWithWriter(w io.Writer) {
	var level slog.Level
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// active returns the configured logger, falling back to slog's default so
// the package funcs are safe before Init runs
func active() *slog.Logger {
	if Logger != nil {
		return Logger
	}
	return slog.Default()
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	active().Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	active().Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	active().Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	active().Error(msg, args...)
}
