// internal/service/handoff_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"n5_vocab_study/internal/model"
	"n5_vocab_study/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

//go:generate mockery --name HandoffService --output ./mocks --outpkg mocks --case=underscore
type HandoffService interface {
	Create(ctx context.Context, req *model.CreateHandoffRequest) (*model.HandoffResponse, error)
	Consume(ctx context.Context, token uuid.UUID) (*model.StudyHandoff, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

type handoffService struct {
	db     *gorm.DB
	repo   repository.HandoffRepository
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

type HandoffOption func(*handoffService)

// WithHandoffClock は現在時刻の取得関数を差し替えます (テスト用)
func WithHandoffClock(now func() time.Time) HandoffOption {
	return func(s *handoffService) {
		s.now = now
	}
}

func NewHandoffService(db *gorm.DB, repo repository.HandoffRepository, ttl time.Duration, logger *slog.Logger, opts ...HandoffOption) HandoffService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &handoffService{
		db:     db,
		repo:   repo,
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create は学習ページへの受け渡しデータを保存し、トークンを返します
func (s *handoffService) Create(ctx context.Context, req *model.CreateHandoffRequest) (*model.HandoffResponse, error) {
	logger := contextLogger(ctx, s.logger, "HandoffService", "Create")
	if req == nil || len(req.Words) == 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "words is required.", "words", model.ErrInvalidInput)
	}

	words := make([]string, 0, len(req.Words))
	for _, w := range req.Words {
		words = append(words, norm.NFC.String(w))
	}
	var dict model.Dictionary
	if len(req.Dictionary) > 0 {
		dict = make(model.Dictionary, len(req.Dictionary))
		for term, entry := range req.Dictionary {
			dict[norm.NFC.String(term)] = entry
		}
	}

	now := s.now()
	handoff := &model.StudyHandoff{
		Token:      uuid.New(),
		Words:      words,
		Dictionary: dict,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.ttl),
	}
	if err := s.repo.Create(ctx, s.db, handoff); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Failed to store handoff", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", model.ErrInternalServer, err)
	}

	logger.Debug("Handoff created", slog.String("token", handoff.Token.String()), slog.Int("words", len(words)))
	return &model.HandoffResponse{Token: handoff.Token, ExpiresAt: handoff.ExpiresAt}, nil
}

// Consume はハンドオフを読み出して削除します。期限切れなら削除したうえで ErrExpired。
func (s *handoffService) Consume(ctx context.Context, token uuid.UUID) (*model.StudyHandoff, error) {
	logger := contextLogger(ctx, s.logger, "HandoffService", "Consume")

	var handoff *model.StudyHandoff
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		h, err := s.repo.Find(ctx, tx, token)
		if err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, tx, token); err != nil {
			return err
		}
		handoff = h
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Failed to consume handoff", slog.Any("error", err), slog.String("token", token.String()))
		return nil, fmt.Errorf("%w: %w", model.ErrInternalServer, err)
	}

	if handoff.Expired(s.now()) {
		logger.Info("Handoff expired", slog.String("token", token.String()), slog.Time("expires_at", handoff.ExpiresAt))
		return nil, model.ErrExpired
	}
	return handoff, nil
}

// PurgeExpired は期限切れのハンドオフを削除します
func (s *handoffService) PurgeExpired(ctx context.Context) (int64, error) {
	logger := contextLogger(ctx, s.logger, "HandoffService", "PurgeExpired")
	n, err := s.repo.DeleteExpired(ctx, s.db, s.now())
	if err != nil {
		logger.Error("Failed to purge expired handoffs", slog.Any("error", err))
		return 0, err
	}
	if n > 0 {
		logger.Info("Expired handoffs purged", slog.Int64("count", n))
	}
	return n, nil
}
