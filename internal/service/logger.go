package service

import (
	"context"
	"log/slog"

	"n5_vocab_study/internal/middleware"
)

// contextLogger はリクエストスコープのロガーを優先し、なければサービスのロガーを使います
func contextLogger(ctx context.Context, fallback *slog.Logger, service, method string) *slog.Logger {
	logger := fallback
	if l, ok := middleware.LoggerFromContext(ctx); ok {
		logger = l
	}
	return logger.With(slog.String("service", service), slog.String("method", method))
}
