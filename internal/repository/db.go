package repository

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"n5_vocab_study/internal/model"

	slogGorm "github.com/orandin/slog-gorm" // slogGormはエイリアス
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// NewDB は設定されたドライバで GORM の接続を開きます
func NewDB(driver, databaseURL string, appLogger *slog.Logger) (*gorm.DB, error) {
	if appLogger == nil {
		appLogger = slog.Default()
	}

	// 開発環境ではSQLもすべて出す
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)

	var dialector gorm.Dialector
	switch strings.ToLower(driver) {
	case DriverPostgres, "":
		dialector = postgres.Open(databaseURL)
	case DriverSQLite:
		dialector = sqlite.Open(databaseURL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: slogGormLogger.LogMode(gormLogLevel),
		// 一意制約違反を gorm.ErrDuplicatedKey に揃える (postgres/sqlite 共通)
		TranslateError: true,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	if dialector.Name() == DriverSQLite {
		// SQLite は書き込みが直列なので接続は1本に絞る
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	appLogger.Info("Database connection established with GORM", slog.String("driver", dialector.Name()))
	return db, nil
}

// Migrate はアプリケーションのテーブルを作成・更新します
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Word{}, &model.ExampleSentence{}, &model.StudyHandoff{}); err != nil {
		return fmt.Errorf("repository.Migrate: %w", err)
	}
	if err := backfillSearchKeys(db); err != nil {
		return fmt.Errorf("repository.Migrate: %w", err)
	}
	return nil
}

// backfillSearchKeys はフォールド列が空のまま残っている単語 (列追加前に登録された行) を埋めます
func backfillSearchKeys(db *gorm.DB) error {
	var stale []*model.Word
	if err := db.Where("bangla_fold = ?", "").Find(&stale).Error; err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, w := range stale {
			setSearchKeys(w)
			if err := tx.Model(w).
				Select("bangla_fold", "japanese_fold", "english_fold").
				Updates(w).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
