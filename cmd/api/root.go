package main

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"betagym/internal/config"
	"betagym/internal/database"
	"betagym/internal/domain/contact"
	"betagym/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:           "betagym",
	Short:         "Beta Gym marketing site",
	Long:          `Serves the server-rendered Beta Gym site and manages its contact submissions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command selected on the command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSlice("env-file", []string{".env"}, "dotenv files to load before reading the environment")
}

// app is what every subcommand needs: config, logger and the database.
type app struct {
	cfg   *config.SiteRuntimeConfig
	log   *zap.Logger
	db    *gorm.DB
	redis *redis.Client
}

func newApp(cmd *cobra.Command) (*app, error) {
	envFiles, _ := cmd.Flags().GetStringSlice("env-file")
	if err := config.LoadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	cfg, err := config.LoadSiteRuntimeConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	log, err := logging.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return &app{cfg: cfg, log: log, db: db}, nil
}

// guard picks the Redis guard when REDIS_URL is set so several replicas
// share one in-flight lock per visitor.
func (a *app) guard(ctx context.Context) (contact.Guard, error) {
	if a.cfg.RedisURL == "" {
		return contact.NewMemoryGuard(), nil
	}
	opts, err := redis.ParseURL(a.cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	a.redis = redis.NewClient(opts)
	if err := a.redis.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	a.log.Info("using redis submission guard", zap.String("addr", opts.Addr))
	return contact.NewRedisGuard(a.redis, a.cfg.RedisPrefix), nil
}

func (a *app) close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.log.Sync()
}
