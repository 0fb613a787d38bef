package logger

import (
	"log/slog"
	"strings"
)

var Logger *slog.Logger

// InitLogger builds the process logger. With enableOTel the JSON stdout
// handler is fanned out to the OTel log pipeline as well.
func InitLogger(level string, enableOTel bool) *slog.Logger {
	lvl := ParseLevel(level)

	var handler slog.Handler
	if enableOTel {
		handler = NewMultiHandler(lvl)
	} else {
		handler = NewMultiHandlerStdoutOnly(lvl)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized", "level", lvl.String(), "otel_enabled", enableOTel)

	return Logger
}

// ParseLevel maps LOG_LEVEL values to slog levels, defaulting to info.
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
