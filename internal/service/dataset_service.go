// internal/service/dataset_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"n5_vocab_study/internal/model"
	"n5_vocab_study/internal/repository"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

//go:generate mockery --name DatasetService --output ./mocks --outpkg mocks --case=underscore
type DatasetService interface {
	Load(ctx context.Context) (*model.Dataset, error)
	Import(ctx context.Context, ds *model.Dataset) (*model.ImportResult, error)
}

type datasetService struct {
	db           *gorm.DB
	wordRepo     repository.WordRepository
	sentenceRepo repository.SentenceRepository
	logger       *slog.Logger
}

func NewDatasetService(db *gorm.DB, wordRepo repository.WordRepository, sentenceRepo repository.SentenceRepository, logger *slog.Logger) DatasetService {
	if logger == nil {
		logger = slog.Default()
	}
	return &datasetService{
		db:           db,
		wordRepo:     wordRepo,
		sentenceRepo: sentenceRepo,
		logger:       logger,
	}
}

// Load は辞書全体と例文コーパスを読み込みます
func (s *datasetService) Load(ctx context.Context) (*model.Dataset, error) {
	logger := contextLogger(ctx, s.logger, "DatasetService", "Load")

	words, err := s.wordRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to load words", slog.Any("error", err))
		return nil, model.NewAppError("", MsgFetchFailed, "", fmt.Errorf("%w: %w", model.ErrInternalServer, err))
	}
	sentences, err := s.sentenceRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to load example sentences", slog.Any("error", err))
		return nil, model.NewAppError("", MsgFetchFailed, "", fmt.Errorf("%w: %w", model.ErrInternalServer, err))
	}
	if sentences == nil {
		sentences = []model.ExampleSentence{}
	}

	return &model.Dataset{
		Dictionary:       model.NewDictionary(words),
		ExampleSentences: sentences,
	}, nil
}

// Import は単語を見出し語で上書き登録し、例文コーパスを丸ごと置き換えます (1トランザクション)
func (s *datasetService) Import(ctx context.Context, ds *model.Dataset) (*model.ImportResult, error) {
	logger := contextLogger(ctx, s.logger, "DatasetService", "Import")
	if ds == nil || len(ds.Dictionary) == 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "dictionary must contain at least one entry.", "dictionary", model.ErrInvalidInput)
	}

	dict := make(model.Dictionary, len(ds.Dictionary))
	for term, entry := range ds.Dictionary {
		term = norm.NFC.String(strings.TrimSpace(term))
		entry.Meaning = norm.NFC.String(strings.TrimSpace(entry.Meaning))
		if term == "" || entry.Meaning == "" {
			return nil, model.NewAppError("VALIDATION_ERROR", fmt.Sprintf("entry %q has no term or meaning.", term), "dictionary", model.ErrInvalidInput)
		}
		dict[term] = entry
	}

	sentences := make([]model.ExampleSentence, 0, len(ds.ExampleSentences))
	for _, es := range ds.ExampleSentences {
		jp := norm.NFC.String(strings.TrimSpace(es.Japanese))
		if jp == "" {
			continue
		}
		sentences = append(sentences, model.ExampleSentence{Japanese: jp, Bangla: norm.NFC.String(strings.TrimSpace(es.Bangla))})
	}

	words := dict.Words()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.wordRepo.Upsert(ctx, tx, words); err != nil {
			return err
		}
		return s.sentenceRepo.ReplaceAll(ctx, tx, sentences)
	})
	if err != nil {
		logger.Error("Dataset import failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", model.ErrInternalServer, err)
	}

	logger.Info("Dataset imported", slog.Int("words", len(words)), slog.Int("sentences", len(sentences)))
	return &model.ImportResult{Words: len(words), Sentences: len(sentences)}, nil
}
