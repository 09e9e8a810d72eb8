// internal/handlers/dataset_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"n5_vocab_study/internal/model"
	"n5_vocab_study/internal/service"
	"n5_vocab_study/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type DatasetHandler struct {
	datasets service.DatasetService
	handoffs service.HandoffService
	logger   *slog.Logger
}

func NewDatasetHandler(datasets service.DatasetService, handoffs service.HandoffService, logger *slog.Logger) *DatasetHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DatasetHandler{
		datasets: datasets,
		handoffs: handoffs,
		logger:   logger,
	}
}

// GetDataset は辞書全体と例文コーパスを返すハンドラ
func (h *DatasetHandler) GetDataset(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDataset"))

	ds, err := h.datasets.Load(r.Context())
	if err != nil {
		logger.Error("Error loading dataset in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Dataset loaded successfully",
		slog.Int("words", len(ds.Dictionary)),
		slog.Int("sentences", len(ds.ExampleSentences)),
	)
	webutil.RespondWithJSON(w, http.StatusOK, ds, logger)
}

// PostHandoff は学習ページへ渡す単語リストを保存し、トークンを返すハンドラ
func (h *DatasetHandler) PostHandoff(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostHandoff"))

	var req model.CreateHandoffRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "Request body is not valid JSON.", "", err))
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))
			webutil.HandleError(w, logger, webutil.NewValidationError(err))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	res, err := h.handoffs.Create(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating handoff in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Handoff created successfully", slog.String("token", res.Token.String()), slog.Int("words", len(req.Words)))
	webutil.RespondWithJSON(w, http.StatusCreated, res, logger)
}
