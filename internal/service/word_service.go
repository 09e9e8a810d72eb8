// internal/service/word_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"n5_vocab_study/internal/model"
	"n5_vocab_study/internal/repository"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// MsgFetchFailed はストア障害時にクライアントへ返す固定メッセージ
const MsgFetchFailed = "Failed to connect to the database or fetch data."

//go:generate mockery --name WordService --output ./mocks --outpkg mocks --case=underscore
type WordService interface {
	QueryWords(ctx context.Context, q *model.WordQuery) (model.Dictionary, error)
}

type wordService struct {
	db       *gorm.DB
	wordRepo repository.WordRepository
	logger   *slog.Logger
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository, logger *slog.Logger) WordService {
	if logger == nil {
		logger = slog.Default()
	}
	return &wordService{
		db:       db,
		wordRepo: wordRepo,
		logger:   logger,
	}
}

// QueryWords は search / lesson / 指定なし の3通りで単語を引き、辞書の形に整えます。
// search と lesson の両方があれば search を優先する。
func (s *wordService) QueryWords(ctx context.Context, q *model.WordQuery) (model.Dictionary, error) {
	logger := contextLogger(ctx, s.logger, "WordService", "QueryWords")
	if q == nil {
		q = &model.WordQuery{}
	}

	var (
		words []*model.Word
		err   error
	)
	search := norm.NFC.String(q.Search)
	switch {
	case search != "" && strings.Contains(search, ","):
		terms := SplitTerms(search)
		if len(terms) == 0 {
			return model.Dictionary{}, nil
		}
		words, err = s.wordRepo.FindByTerms(ctx, s.db, terms)
	case search != "":
		words, err = s.wordRepo.Search(ctx, s.db, search)
	case q.Lesson != "":
		lesson, perr := ParseLesson(q.Lesson)
		if perr != nil {
			return nil, perr
		}
		words, err = s.wordRepo.FindByLesson(ctx, s.db, lesson)
	default:
		words, err = s.wordRepo.FindAll(ctx, s.db)
	}
	if err != nil {
		logger.Error("Failed to query words", slog.Any("error", err))
		return nil, model.NewAppError("", MsgFetchFailed, "", fmt.Errorf("%w: %w", model.ErrInternalServer, err))
	}

	logger.Debug("Words queried", slog.Int("count", len(words)))
	return model.NewDictionary(words), nil
}

// SplitTerms はカンマ区切りの単語リストを分割します。
// 前後の空白を除き、空の要素と重複は捨てる。各要素は NFC に正規化する。
func SplitTerms(s string) []string {
	parts := strings.Split(s, ",")
	terms := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		term := norm.NFC.String(strings.TrimSpace(p))
		if term == "" {
			continue
		}
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}
	return terms
}

// ParseLesson は lesson パラメータを正の整数として解釈します
func ParseLesson(s string) (int, error) {
	lesson, err := strconv.Atoi(s)
	if err != nil || lesson <= 0 || strings.TrimSpace(s) != s || strings.HasPrefix(s, "+") {
		return 0, model.NewAppError("VALIDATION_ERROR", "lesson must be a positive whole number.", "lesson", model.ErrInvalidInput)
	}
	return lesson, nil
}
