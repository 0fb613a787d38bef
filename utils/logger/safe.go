package logger

import (
	"context"
	"log/slog"
)

// current returns the package logger, falling back to slog.Default so that
// gateways and usecases can log before InitLogger runs (tests, CLI).
func current() *slog.Logger {
	if Logger != nil {
		return Logger
	}
	return slog.Default()
}

func withRequestID(ctx context.Context, l *slog.Logger) *slog.Logger {
	if ctx == nil {
		return l
	}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		return l.With("request_id", requestID)
	}
	return l
}

func SafeDebugContext(ctx context.Context, msg string, args ...any) {
	withRequestID(ctx, current()).DebugContext(ctx, msg, args...)
}

func SafeInfoContext(ctx context.Context, msg string, args ...any) {
	withRequestID(ctx, current()).InfoContext(ctx, msg, args...)
}

func SafeWarnContext(ctx context.Context, msg string, args ...any) {
	withRequestID(ctx, current()).WarnContext(ctx, msg, args...)
}

func SafeErrorContext(ctx context.Context, msg string, args ...any) {
	withRequestID(ctx, current()).ErrorContext(ctx, msg, args...)
}
