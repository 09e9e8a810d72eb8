package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"n5_vocab_study/internal/model"
	"n5_vocab_study/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// setupTestDB はテストごとに独立したインメモリSQLiteを用意します
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to connect database for testing")
	require.NoError(t, repository.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// seedWords はテスト用の単語を登録します (検索用の列も埋まるようにリポジトリ経由)
func seedWords(t *testing.T, db *gorm.DB, words ...*model.Word) {
	t.Helper()
	require.NoError(t, repository.NewGormWordRepository().Upsert(context.Background(), db, words))
}
