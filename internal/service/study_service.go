// internal/service/study_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"n5_vocab_study/internal/model"
	"n5_vocab_study/internal/study"

	"github.com/google/uuid"
)

//go:generate mockery --name StudyService --output ./mocks --outpkg mocks --case=underscore
type StudyService interface {
	StartFromHandoff(ctx context.Context, token uuid.UUID) (*study.Session, error)
	StartFromWords(ctx context.Context, words []string) (*study.Session, error)
	Session(ctx context.Context, id uuid.UUID) (*study.Session, error)
	End(ctx context.Context, id uuid.UUID) error
}

type studyService struct {
	handoffs HandoffService
	datasets DatasetService
	registry *study.Registry
	newRand  func() *rand.Rand
	logger   *slog.Logger
}

type StudyOption func(*studyService)

// WithStudyRand はドリルの乱数生成器の作り方を差し替えます (テスト用)
func WithStudyRand(newRand func() *rand.Rand) StudyOption {
	return func(s *studyService) {
		s.newRand = newRand
	}
}

func NewStudyService(handoffs HandoffService, datasets DatasetService, registry *study.Registry, logger *slog.Logger, opts ...StudyOption) StudyService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &studyService{
		handoffs: handoffs,
		datasets: datasets,
		registry: registry,
		newRand:  func() *rand.Rand { return nil },
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// noStudyListError は学習画面を出せない場合のページ単位のエラー
func noStudyListError(err error) error {
	return model.NewAppError("NO_STUDY_LIST", study.MsgNoStudyList, "", err)
}

// StartFromHandoff はハンドオフを消費してセッションを作ります。
// ハンドオフに辞書の部分集合があればそれを、なければ辞書全体を使う。
func (s *studyService) StartFromHandoff(ctx context.Context, token uuid.UUID) (*study.Session, error) {
	logger := contextLogger(ctx, s.logger, "StudyService", "StartFromHandoff")

	handoff, err := s.handoffs.Consume(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrExpired) {
			logger.Info("Handoff unavailable", slog.String("token", token.String()), slog.Any("error", err))
			return nil, noStudyListError(fmt.Errorf("%w: %w", model.ErrInvalidInput, err))
		}
		return nil, noStudyListError(err)
	}
	return s.start(ctx, logger, handoff.Words, handoff.Dictionary)
}

// StartFromWords は単語リストと辞書全体からセッションを作ります
func (s *studyService) StartFromWords(ctx context.Context, words []string) (*study.Session, error) {
	logger := contextLogger(ctx, s.logger, "StudyService", "StartFromWords")
	return s.start(ctx, logger, words, nil)
}

func (s *studyService) start(ctx context.Context, logger *slog.Logger, words []string, subset model.Dictionary) (*study.Session, error) {
	if len(words) == 0 {
		return nil, noStudyListError(model.ErrInvalidInput)
	}

	dataset, err := s.datasets.Load(ctx)
	if err != nil {
		return nil, noStudyListError(err)
	}
	dict := dataset.Dictionary
	if len(subset) > 0 {
		dict = subset
	}

	session, err := study.NewSession(study.Source{
		Words:      words,
		Dictionary: dict,
		Sentences:  dataset.ExampleSentences,
	}, s.newRand())
	if err != nil {
		return nil, noStudyListError(fmt.Errorf("%w: %w", model.ErrInvalidInput, err))
	}
	s.registry.Add(session)

	logger.Info("Study session started",
		slog.String("session_id", session.ID.String()),
		slog.Int("words", session.WordCount()),
		slog.Int("sentences", len(dataset.ExampleSentences)),
	)
	return session, nil
}

func (s *studyService) Session(ctx context.Context, id uuid.UUID) (*study.Session, error) {
	session, ok := s.registry.Get(id)
	if !ok {
		return nil, model.NewAppError("SESSION_NOT_FOUND", "Study session not found.", "", model.ErrNotFound)
	}
	return session, nil
}

// End はセッションを破棄します (ページを閉じたとき)
func (s *studyService) End(ctx context.Context, id uuid.UUID) error {
	logger := contextLogger(ctx, s.logger, "StudyService", "End")
	if !s.registry.Remove(id) {
		return model.NewAppError("SESSION_NOT_FOUND", "Study session not found.", "", model.ErrNotFound)
	}
	logger.Info("Study session ended", slog.String("session_id", id.String()))
	return nil
}
