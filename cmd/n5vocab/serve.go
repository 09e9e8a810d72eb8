package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"n5_vocab_study/internal/config"
	"n5_vocab_study/internal/handlers"
	"n5_vocab_study/internal/imagesearch"
	"n5_vocab_study/internal/repository"
	"n5_vocab_study/internal/service"
	"n5_vocab_study/internal/study"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// openDB は設定のDBに接続し、テーブルを用意します。close は呼び出し側で必ず呼ぶ。
func openDB(logger *slog.Logger) (db *gorm.DB, closeFn func(), err error) {
	db, err = repository.NewDB(config.Cfg.Database.Driver, config.Cfg.Database.URL, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("getting underlying sql.DB: %w", err)
	}
	closeFn = func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Error closing database connection", slog.Any("error", err))
		} else {
			logger.Info("Database connection closed.")
		}
	}
	if err := repository.Migrate(db); err != nil {
		closeFn()
		return nil, nil, err
	}
	return db, closeFn, nil
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := slog.Default()
	logger.Info("Application starting...", slog.String("version", config.AppVersion))

	db, closeDB, err := openDB(logger)
	if err != nil {
		return err
	}
	defer closeDB()
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	// Dependency Injection
	wordRepo := repository.NewGormWordRepository()
	sentenceRepo := repository.NewGormSentenceRepository()
	handoffRepo := repository.NewGormHandoffRepository()

	wordService := service.NewWordService(db, wordRepo, logger)
	datasetService := service.NewDatasetService(db, wordRepo, sentenceRepo, logger)
	handoffService := service.NewHandoffService(db, handoffRepo, config.Cfg.Handoff.TTL, logger)
	registry := study.NewRegistry(config.Cfg.Study.SessionTTL)
	studyService := service.NewStudyService(handoffService, datasetService, registry, logger)

	searcher := imagesearch.NewClient(config.Cfg.Pexels.APIKey, imagesearch.WithBaseURL(config.Cfg.Pexels.BaseURL))

	r := handlers.NewRouter(handlers.RouterConfig{
		Words:   handlers.NewWordHandler(wordService, logger),
		Dataset: handlers.NewDatasetHandler(datasetService, handoffService, logger),
		Study:   handlers.NewStudyHandler(studyService, searcher, logger),
		Health:  handlers.NewHealthHandler(sqlDB, logger),
		CORS: cors.Options{
			AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
			AllowedMethods:   config.Cfg.CORS.AllowedMethods,
			AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
			ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
			AllowCredentials: config.Cfg.CORS.AllowCredentials,
			MaxAge:           config.Cfg.CORS.MaxAge,
		},
		DetailLogging: config.Cfg.Log.Detail,
		Timeout:       config.Cfg.Server.RequestTimeout,
		Logger:        logger,
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: config.Cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go runJanitor(janitorCtx, logger, config.Cfg.Handoff.PurgeInterval, handoffService, registry)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			return err
		}
	case <-ctx.Done():
	}

	// Graceful Shutdown
	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.Any("error", err))
		return err
	}
	logger.Info("Server exiting")
	return nil
}

// runJanitor は期限切れのハンドオフと放置されたセッションを定期的に掃除します
func runJanitor(ctx context.Context, logger *slog.Logger, interval time.Duration, handoffs service.HandoffService, registry *study.Registry) {
	if interval <= 0 {
		interval = config.DefaultHandoffPurgeInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := handoffs.PurgeExpired(ctx)
			if err != nil && ctx.Err() == nil {
				logger.Warn("Failed to purge expired handoffs", slog.Any("error", err))
			}
			swept := registry.Sweep()
			if purged > 0 || swept > 0 {
				logger.Debug("Janitor run", slog.Int64("handoffs_purged", purged), slog.Int("sessions_swept", swept))
			}
		}
	}
}
