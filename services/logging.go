package services

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "hotel-pricing/services"

func defaultLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}

func serviceLogger(base *slog.Logger, serviceName, operation string, attrs ...any) *slog.Logger {
	pairs := []any{"service", serviceName, "operation", operation}
	pairs = append(pairs, attrs...)
	return defaultLogger(base).With(pairs...)
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// finishOperation logs the outcome and closes the span. Client errors are
// logged at warn, anything unexpected at error.
func finishOperation(ctx context.Context, span trace.Span, logger *slog.Logger, err error, okMsg string) {
	defer span.End()

	if err == nil {
		logger.DebugContext(ctx, okMsg)
		return
	}

	code := ErrorCode(err)
	span.RecordError(err)
	span.SetStatus(codes.Error, code)

	if code == CodeInternal {
		logger.ErrorContext(ctx, "operation failed", "error", err, "error_code", code)
		return
	}
	logger.WarnContext(ctx, "operation rejected", "error", err, "error_code", code)
}
