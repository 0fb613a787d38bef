package logger

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log/global"
)

const otelScopeName = "dive-media"

// MultiHandler sends logs to multiple handlers
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler creates a handler that writes to both stdout and OTel
func NewMultiHandler(level slog.Level) *MultiHandler {
	return &MultiHandler{
		handlers: []slog.Handler{
			NewTraceContextHandler(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: level,
			})),
			otelslog.NewHandler(
				otelScopeName,
				otelslog.WithLoggerProvider(global.GetLoggerProvider()),
			),
		},
	}
}

// NewMultiHandlerStdoutOnly creates a handler that writes only to stdout (OTel disabled)
func NewMultiHandlerStdoutOnly(level slog.Level) *MultiHandler {
	return &MultiHandler{
		handlers: []slog.Handler{
			NewTraceContextHandler(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: level,
			})),
		},
	}
}

func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			_ = handler.Handle(ctx, r.Clone())
		}
	}
	return nil
}

func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &MultiHandler{handlers: newHandlers}
}

func (h *MultiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &MultiHandler{handlers: newHandlers}
}
