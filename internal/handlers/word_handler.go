// internal/handlers/word_handler.go
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

type WordHandler struct {
	service service.WordService
	logger  *slog.Logger
}

func NewWordHandler(s service.WordService, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		service: s,
		logger:  logger,
	}
}

// GetWords は lesson / search で単語を検索し、見出し語をキーにした辞書を返すハンドラ
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWords"))

	query := model.WordQuery{
		Lesson: r.URL.Query().Get("lesson"),
		Search: r.URL.Query().Get("search"),
	}
	// search があれば lesson は見ない
	if query.Search != "" {
		query.Lesson = ""
	}

	if err := webutil.Validator.Struct(query); err != nil {
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

	dict, err := h.service.QueryWords(r.Context(), &query)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			logger.Warn("Invalid word query", slog.Any("error", err))
		} else {
			logger.Error("Error querying words in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	if dict == nil {
		dict = model.Dictionary{}
	}
	logger.Info("Words queried successfully", slog.Int("count", len(dict)))
	webutil.RespondWithJSON(w, http.StatusOK, dict, logger)
}
