package http

import (
	"context"
	"log/slog"
)

const serviceName = "taskdeck-auth"

func httpLogger() *slog.Logger {
	return slog.Default().With(
		"service", serviceName,
		"module", "http",
		"layer", "adapter",
	)
}

// securityEvent is the adapter-side structured security log. Middleware calls
// it for policy denials (CSRF failure, rate limiting) so alerting can key on
// the security_event field regardless of which layer raised it.
func securityEvent(ctx context.Context, event string, fields ...any) {
	args := append([]any{
		"security_event", event,
		"outcome", "blocked",
		"request_id", requestIDFromContext(ctx),
	}, fields...)
	httpLogger().WarnContext(ctx, "security event", args...)
}

func logHTTPOperationError(ctx context.Context, operation string, statusCode int, code, message string, err error) {
	fields := []any{
		"operation", operation,
		"outcome", "failure",
		"status_code", statusCode,
		"error_code", code,
		"message", message,
		"request_id", requestIDFromContext(ctx),
	}
	if err != nil {
		fields = append(fields, "error", err.Error())
	}
	if statusCode >= 500 {
		httpLogger().ErrorContext(ctx, "http operation failed", fields...)
		return
	}
	httpLogger().WarnContext(ctx, "http operation failed", fields...)
}
