package main

import (
	"context"
	"flag"
	"log"
	"time"

	"iamove/internal/adapter/translator"
	"iamove/internal/config"
	"iamove/internal/database"
	"iamove/internal/domain"
	"iamove/internal/logger"
	"iamove/internal/repository"
	"iamove/internal/service"

	"go.uber.org/zap"
)

// main drives the translation backfill for one site: it runs batches until
// nothing is missing, pausing between batches to stay inside provider quotas.
func main() {
	siteID := flag.String("site", "", "site to backfill (required)")
	pause := flag.Duration("pause", 2*time.Second, "delay between batches")
	flag.Parse()

	if *siteID == "" {
		log.Fatal("missing required -site flag")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	translatorClient, err := newTranslator(cfg)
	if err != nil {
		appLogger.Fatal("Failed to create translator", zap.Error(err))
	}

	backfill := service.NewBackfillService(
		repository.NewQuestionDatabaseAdapter(db),
		repository.NewTranslationDatabaseAdapter(db),
		repository.NewSiteDatabaseAdapter(db),
		translatorClient,
		cfg.Translation.BatchSize,
	)

	ctx := context.Background()

	status, err := backfill.CheckStatus(ctx, *siteID)
	if err != nil {
		appLogger.Fatal("Failed to check backfill status", zap.Error(err))
	}
	if status.IsComplete {
		appLogger.Info("Translations already complete", zap.String("site_id", *siteID))
		return
	}
	appLogger.Info("Starting backfill",
		zap.String("site_id", *siteID),
		zap.Int("missing", status.MissingCount))

	total := 0
	for {
		result, err := backfill.RunBatch(ctx, *siteID)
		if err != nil {
			appLogger.Fatal("Backfill batch failed", zap.Error(err))
		}
		total += result.TranslationsCreated
		appLogger.Info("Batch finished",
			zap.Int("created", result.TranslationsCreated),
			zap.Int("total", total),
			zap.Bool("has_more", result.HasMore))
		if !result.HasMore {
			break
		}
		time.Sleep(*pause)
	}

	appLogger.Info("Backfill complete",
		zap.String("site_id", *siteID),
		zap.Int("translations_created", total))
}

// newTranslator builds the configured translation backend.
func newTranslator(cfg *config.Config) (domain.Translator, error) {
	switch cfg.Translation.Source {
	case "ollama":
		return translator.NewOllamaTranslator(cfg.Translation.Ollama.ServerURL, cfg.Translation.Ollama.Model)
	default:
		return translator.NewDeepLTranslator(cfg.Translation.DeepL.APIKey, cfg.Translation.DeepL.BaseURL, cfg.Translation.RequestTimeout)
	}
}
