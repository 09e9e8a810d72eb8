//go:generate mockery --name SentenceRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"n5_vocab_study/internal/middleware"
	"n5_vocab_study/internal/model"

	"gorm.io/gorm"
)

type SentenceRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]model.ExampleSentence, error)
	ReplaceAll(ctx context.Context, tx *gorm.DB, sentences []model.ExampleSentence) error
}

type gormSentenceRepository struct{}

func NewGormSentenceRepository() SentenceRepository {
	return &gormSentenceRepository{}
}

func (r *gormSentenceRepository) FindAll(ctx context.Context, db *gorm.DB) ([]model.ExampleSentence, error) {
	logger := middleware.GetLogger(ctx)
	var sentences []model.ExampleSentence
	result := db.WithContext(ctx).Order("id ASC").Find(&sentences)
	if result.Error != nil {
		logger.Error("Error finding example sentences in DB", "error", result.Error)
		return nil, fmt.Errorf("gormSentenceRepository.FindAll: %w", result.Error)
	}
	return sentences, nil
}

// ReplaceAll は例文コーパスを丸ごと入れ替えます。トランザクション内で呼ぶこと。
func (r *gormSentenceRepository) ReplaceAll(ctx context.Context, tx *gorm.DB, sentences []model.ExampleSentence) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ExampleSentence{}).Error; err != nil {
		logger.Error("Error clearing example sentences in DB", "error", err)
		return fmt.Errorf("gormSentenceRepository.ReplaceAll: %w", err)
	}
	if len(sentences) == 0 {
		return nil
	}
	rows := make([]model.ExampleSentence, len(sentences))
	for i, s := range sentences {
		rows[i] = model.ExampleSentence{Japanese: s.Japanese, Bangla: s.Bangla}
	}
	if err := tx.WithContext(ctx).CreateInBatches(rows, 200).Error; err != nil {
		logger.Error("Error inserting example sentences in DB",
			"error", err,
			"count", len(rows),
		)
		return fmt.Errorf("gormSentenceRepository.ReplaceAll: %w", err)
	}
	return nil
}
