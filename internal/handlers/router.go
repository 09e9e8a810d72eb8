// internal/handlers/router.go
package handlers

import (
	"log/slog"
	"time"

	"n5_vocab_study/internal/middleware"
	"n5_vocab_study/internal/study"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// RouterConfig はルーター組み立てに必要なハンドラと設定
type RouterConfig struct {
	Words   *WordHandler
	Dataset *DatasetHandler
	Study   *StudyHandler
	Health  *HealthHandler

	CORS          cors.Options
	DetailLogging bool
	Timeout       time.Duration
	Logger        *slog.Logger
}

// NewRouter はミドルウェアとルートを登録したルーターを返します
func NewRouter(cfg RouterConfig) chi.Router {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	if cfg.DetailLogging {
		r.Use(middleware.DetailLoggingMiddleware())
	}
	r.Use(cors.New(cfg.CORS).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))

	r.Route("/api", func(r chi.Router) {
		if cfg.Words != nil {
			r.Get("/words", cfg.Words.GetWords)
		}
		if cfg.Dataset != nil {
			r.Get("/dataset", cfg.Dataset.GetDataset)
			r.Post("/handoffs", cfg.Dataset.PostHandoff)
		}
	})

	if cfg.Study != nil {
		r.Mount(study.RoutePrefix, cfg.Study.Routes())
	}

	if cfg.Health != nil {
		r.Get("/health", cfg.Health.GetHealth)
	}
	return r
}
