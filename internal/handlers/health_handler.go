// internal/handlers/health_handler.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
)

// Pinger はDB接続の死活確認
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{db: db, logger: logger}
}

// GetHealth はDBにpingできれば OK を返すハンドラ
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.db.PingContext(ctx); err != nil {
		h.logger.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
		http.Error(w, "Health check failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
