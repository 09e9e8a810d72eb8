// cmd/n5vocab/main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"n5_vocab_study/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           config.AppName,
	Short:         "N5 vocabulary study server for Bangla speakers",
	Long:          "Serves the Bangla-Japanese word list API and the flashcard study page, and manages the dictionary store.",
	Version:       config.AppVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 設定ファイル読み込み用の一時的なロガー
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
		if err := config.LoadConfig(configPath); err != nil {
			return err
		}
		slog.SetDefault(newLogger(config.Cfg.Log.Level, os.Getenv("APP_ENV")))
		return nil
	},
	// サブコマンドなしは serve と同じ
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs", "directory containing config.yaml")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(wordsCmd)
}

func main() {
	// SIGINT / SIGTERM でコンテキストをキャンセルし、serve はグレースフルに止まる
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		slog.Error("Command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
