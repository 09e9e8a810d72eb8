// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "n5vocab"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultDatabaseDriver       = "sqlite"
	DefaultSQLiteURL            = "n5vocab.db"
	DefaultServerPort           = ":8080"
	DefaultRequestTimeout       = 60 * time.Second
	DefaultLogLevel             = "info"
	DefaultPexelsBaseURL        = "https://api.pexels.com/v1"
	DefaultHandoffTTL           = 10 * time.Second
	DefaultHandoffPurgeInterval = time.Minute
	DefaultSessionTTL           = 2 * time.Hour
)
