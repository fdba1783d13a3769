// Package logging configures log/slog for the application and carries
// correlation ids through contexts.
//
// HTTP requests are correlated by chi's RequestID middleware. Calls that do
// not come through HTTP (CLI commands, seeding) get an operation id from
// [WithOperation] instead.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type ctxKey struct{}

// Setup installs the default slog logger writing to stdout.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func Setup(level, format string) {
	SetupWriter(os.Stdout, level, format)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, level, format string) {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// ParseLevel converts a level name to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// WithOperation returns a context carrying a fresh operation id, unless ctx
// already has one.
func WithOperation(ctx context.Context) context.Context {
	if OperationID(ctx) != "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, uuid.NewString())
}

// OperationID returns the operation id stored by WithOperation, or "".
func OperationID(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// FromContext returns the default logger enriched with the request id or
// operation id found in ctx.
//
//	logger := logging.FromContext(r.Context())
//	logger.Info("customer found", "customer_id", id)
func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()

	if reqID := middleware.GetReqID(ctx); reqID != "" {
		logger = logger.With("request_id", reqID)
	}
	if opID := OperationID(ctx); opID != "" {
		logger = logger.With("op_id", opID)
	}

	return logger
}

// WithFields returns a context logger with additional structured fields.
func WithFields(ctx context.Context, args ...any) *slog.Logger {
	return FromContext(ctx).With(args...)
}

// LevelForStatus picks the level for a request log line: server errors log
// at error, client errors at warn, everything else at info.
func LevelForStatus(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
