//go:generate mockery --name HandoffRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"n5_vocab_study/internal/middleware"
	"n5_vocab_study/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HandoffRepository interface {
	Create(ctx context.Context, db *gorm.DB, handoff *model.StudyHandoff) error
	Find(ctx context.Context, db *gorm.DB, token uuid.UUID) (*model.StudyHandoff, error)
	Delete(ctx context.Context, db *gorm.DB, token uuid.UUID) error
	DeleteExpired(ctx context.Context, db *gorm.DB, now time.Time) (int64, error)
}

type gormHandoffRepository struct{}

func NewGormHandoffRepository() HandoffRepository {
	return &gormHandoffRepository{}
}

func (r *gormHandoffRepository) Create(ctx context.Context, db *gorm.DB, handoff *model.StudyHandoff) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(handoff).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.Warn("Duplicate handoff token", "token", handoff.Token.String())
			return model.ErrConflict
		}
		logger.Error("Failed to create study handoff", "error", err)
		return fmt.Errorf("gormHandoffRepository.Create: %w", err)
	}
	return nil
}

func (r *gormHandoffRepository) Find(ctx context.Context, db *gorm.DB, token uuid.UUID) (*model.StudyHandoff, error) {
	logger := middleware.GetLogger(ctx)
	var handoff model.StudyHandoff
	if err := db.WithContext(ctx).Where("token = ?", token).First(&handoff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Failed to find study handoff", "error", err, "token", token.String())
		return nil, fmt.Errorf("gormHandoffRepository.Find: %w", err)
	}
	return &handoff, nil
}

func (r *gormHandoffRepository) Delete(ctx context.Context, db *gorm.DB, token uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("token = ?", token).Delete(&model.StudyHandoff{})
	if result.Error != nil {
		logger.Error("Failed to delete study handoff", "error", result.Error, "token", token.String())
		return fmt.Errorf("gormHandoffRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// DeleteExpired は期限切れのハンドオフを掃除し、削除件数を返します
func (r *gormHandoffRepository) DeleteExpired(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.StudyHandoff{})
	if result.Error != nil {
		logger.Error("Failed to delete expired study handoffs", "error", result.Error)
		return 0, fmt.Errorf("gormHandoffRepository.DeleteExpired: %w", result.Error)
	}
	return result.RowsAffected, nil
}
