package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"betagym/internal/config"
	"betagym/internal/database"
	"betagym/internal/domain/contact"
	"betagym/internal/logging"
)

// cleanup prunes contact submissions older than SUBMISSION_RETENTION.
// It is meant to run from cron.
func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("load env: %v", err)
	}
	cfg, err := config.LoadSiteRuntimeConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}

	svc := contact.NewService(contact.NewRepository(db), contact.WithServiceLogger(logger))
	n, err := svc.PruneOlderThan(context.Background(), cfg.SubmissionRetention)
	if err != nil {
		logger.Fatal("cleanup contact_submissions failed", zap.Error(err))
	}

	logger.Info("submission cleanup completed",
		zap.Int64("contact_submissions", n),
		zap.Duration("retention", cfg.SubmissionRetention),
	)
}
