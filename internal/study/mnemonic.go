package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"n5_vocab_study/internal/imagesearch"
	"n5_vocab_study/internal/model"
)

//go:generate mockery --name ImageSearcher --output ./mocks --outpkg mocks --case underscore
type ImageSearcher interface {
	SearchOne(ctx context.Context, query string) (*imagesearch.Photo, error)
}

const (
	MsgNoEnglish      = "No English translation available to search for a mnemonic for this word."
	MsgMissingAPIKey  = "Pexels API Key not set."
	MsgImageLoadError = "Could not load a mnemonic image right now."
)

// MnemonicResult は記憶用画像検索の結果。
// ErrorMessage が空でなければモーダル内にエラーとして表示する。
type MnemonicResult struct {
	Word         string
	Meaning      string
	English      string
	Photo        *imagesearch.Photo
	NotFound     string
	ErrorMessage string
}

// LookupMnemonic は英訳で画像を1件検索します。
// 失敗はすべて結果のメッセージに変換し、エラーとしては返さない。
func LookupMnemonic(ctx context.Context, logger *slog.Logger, searcher ImageSearcher, word string, entry model.DictionaryEntry, found bool) MnemonicResult {
	result := MnemonicResult{Word: word, Meaning: entry.Meaning, English: entry.English}
	if !found || entry.English == "" {
		result.ErrorMessage = MsgNoEnglish
		return result
	}
	if searcher == nil {
		result.ErrorMessage = MsgMissingAPIKey
		return result
	}

	photo, err := searcher.SearchOne(ctx, entry.English)
	var statusErr *imagesearch.StatusError
	switch {
	case err == nil:
		result.Photo = photo
	case errors.Is(err, imagesearch.ErrMissingAPIKey):
		result.ErrorMessage = MsgMissingAPIKey
	case errors.Is(err, imagesearch.ErrNoResults):
		result.NotFound = fmt.Sprintf(`No image found for "%s".`, entry.English)
	case errors.As(err, &statusErr):
		logger.WarnContext(ctx, "Image search returned error status", slog.Int("status", statusErr.StatusCode), slog.String("query", entry.English))
		result.ErrorMessage = statusErr.Error()
	default:
		logger.ErrorContext(ctx, "Image search failed", slog.Any("error", err), slog.String("query", entry.English))
		result.ErrorMessage = MsgImageLoadError
	}
	return result
}
