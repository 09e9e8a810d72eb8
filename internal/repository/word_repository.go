//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"strings"

	"n5_vocab_study/internal/middleware"
	"n5_vocab_study/internal/model"

	"golang.org/x/text/cases"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WordRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Word, error)
	FindByLesson(ctx context.Context, db *gorm.DB, lesson int) ([]*model.Word, error)
	FindByTerms(ctx context.Context, db *gorm.DB, terms []string) ([]*model.Word, error)
	Search(ctx context.Context, db *gorm.DB, term string) ([]*model.Word, error)
	Upsert(ctx context.Context, tx *gorm.DB, words []*model.Word) error
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

// 表示用の並び順 (見出し語の昇順)
const orderByTerm = "bangla ASC"

func (r *gormWordRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	result := db.WithContext(ctx).Order(orderByTerm).Find(&words)
	if result.Error != nil {
		logger.Error("Error finding all words in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWordRepository.FindAll: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) FindByLesson(ctx context.Context, db *gorm.DB, lesson int) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	result := db.WithContext(ctx).Where("lesson = ?", lesson).Order(orderByTerm).Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words by lesson in DB",
			"error", result.Error,
			"lesson", lesson,
		)
		return nil, fmt.Errorf("gormWordRepository.FindByLesson: %w", result.Error)
	}
	return words, nil
}

// FindByTerms は見出し語の完全一致で検索します。並び順はストアに任せる。
func (r *gormWordRepository) FindByTerms(ctx context.Context, db *gorm.DB, terms []string) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	if len(terms) == 0 {
		return words, nil
	}
	result := db.WithContext(ctx).Where("bangla IN ?", terms).Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words by terms in DB",
			"error", result.Error,
			"term_count", len(terms),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByTerms: %w", result.Error)
	}
	return words, nil
}

// Search は見出し語・日本語訳・英訳のいずれかに term を含む単語を返します (大文字小文字を区別しない)。
// SQLite の LOWER は ASCII しか畳まないので、比較はフォールド済みの列に対して行う。
func (r *gormWordRepository) Search(ctx context.Context, db *gorm.DB, term string) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	pattern := "%" + EscapeLike(FoldCase(term)) + "%"
	result := db.WithContext(ctx).
		Where(`bangla_fold LIKE ? ESCAPE '\' OR japanese_fold LIKE ? ESCAPE '\' OR english_fold LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern).
		Order(orderByTerm).
		Find(&words)
	if result.Error != nil {
		logger.Error("Error searching words in DB",
			"error", result.Error,
			"term", term,
		)
		return nil, fmt.Errorf("gormWordRepository.Search: %w", result.Error)
	}
	return words, nil
}

// Upsert は見出し語をキーに単語を作成または上書きします
func (r *gormWordRepository) Upsert(ctx context.Context, tx *gorm.DB, words []*model.Word) error {
	logger := middleware.GetLogger(ctx)
	if len(words) == 0 {
		return nil
	}
	for _, w := range words {
		setSearchKeys(w)
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "bangla"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"japanese", "english", "category", "lesson",
			"bangla_fold", "japanese_fold", "english_fold", "updated_at",
		}),
	}).CreateInBatches(words, 200)
	if result.Error != nil {
		logger.Error("Error upserting words in DB",
			"error", result.Error,
			"count", len(words),
		)
		return fmt.Errorf("gormWordRepository.Upsert: %w", result.Error)
	}
	return nil
}

// FoldCase は Unicode のケースフォールディングで大文字小文字の違いを畳みます (全角英字やアクセント付き文字も含む)
func FoldCase(s string) string {
	// Caser は状態を持つので呼び出しごとに作る
	return cases.Fold().String(s)
}

// setSearchKeys は検索用のフォールド列を埋めます
func setSearchKeys(w *model.Word) {
	w.BanglaFold = FoldCase(w.Bangla)
	w.JapaneseFold = FoldCase(w.Japanese)
	w.EnglishFold = ""
	if w.English != nil {
		w.EnglishFold = FoldCase(*w.English)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike は LIKE パターンのメタ文字をエスケープします
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
