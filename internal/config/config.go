// internal/config/config.go
package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Driver string `mapstructure:"driver"` // postgres | sqlite
		URL    string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port           string        `mapstructure:"port"`
		RequestTimeout time.Duration `mapstructure:"request_timeout"`
	} `mapstructure:"server"`
	Log struct {
		Level  string `mapstructure:"level"`
		Detail bool   `mapstructure:"detail"` // リクエスト/レスポンスの詳細ログ
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Pexels struct {
		APIKey  string `mapstructure:"api_key"`
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"pexels"`
	Handoff struct {
		TTL           time.Duration `mapstructure:"ttl"`
		PurgeInterval time.Duration `mapstructure:"purge_interval"`
	} `mapstructure:"handoff"`
	Study struct {
		SessionTTL time.Duration `mapstructure:"session_ttl"`
	} `mapstructure:"study"`
}

var Cfg Config

func setDefaults() {
	viper.SetDefault("database.driver", DefaultDatabaseDriver)
	viper.SetDefault("database.url", "")
	viper.SetDefault("server.port", DefaultServerPort)
	viper.SetDefault("server.request_timeout", DefaultRequestTimeout)
	viper.SetDefault("log.level", DefaultLogLevel)
	viper.SetDefault("log.detail", false)
	viper.SetDefault("cors.allowed_origins", []string{"*"})
	viper.SetDefault("cors.allowed_methods", []string{"GET", "POST", "DELETE", "OPTIONS"})
	viper.SetDefault("cors.allowed_headers", []string{"Accept", "Content-Type", "X-Request-ID"})
	viper.SetDefault("cors.exposed_headers", []string{})
	viper.SetDefault("cors.allow_credentials", false)
	viper.SetDefault("cors.max_age", 300)
	viper.SetDefault("pexels.api_key", "")
	viper.SetDefault("pexels.base_url", DefaultPexelsBaseURL)
	viper.SetDefault("handoff.ttl", DefaultHandoffTTL)
	viper.SetDefault("handoff.purge_interval", DefaultHandoffPurgeInterval)
	viper.SetDefault("study.session_ttl", DefaultSessionTTL)
}

// LoadConfig は path と カレントディレクトリの config.yaml を読み、環境変数 (APP_*) で上書きします
func LoadConfig(path string) error {
	viper.Reset()
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 例: APP_DATABASE_URL -> database.url
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	// Pexels のキーは慣例の名前でも受け付ける
	viper.BindEnv("pexels.api_key", "APP_PEXELS_API_KEY", "PEXELS_API_KEY")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- 値の補正 ---
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	if cfg.Database.URL == "" {
		if cfg.Database.Driver == DefaultDatabaseDriver {
			log.Printf("Database URL not set, using default '%s'", DefaultSQLiteURL)
			cfg.Database.URL = DefaultSQLiteURL
		} else {
			log.Println("Warning: Database URL is not set in config.")
		}
	}
	if cfg.Handoff.TTL <= 0 {
		log.Printf("Handoff TTL not set or invalid, using default '%s'", DefaultHandoffTTL)
		cfg.Handoff.TTL = DefaultHandoffTTL
	}
	if cfg.Pexels.APIKey == "" {
		log.Println("Warning: Pexels API key is not set. Mnemonic images are disabled.")
	}

	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Database Driver: %s", Cfg.Database.Driver)
	log.Printf("Handoff TTL: %s", Cfg.Handoff.TTL)
	log.Printf("Session TTL: %s", Cfg.Study.SessionTTL)

	return nil
}
