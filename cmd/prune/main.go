package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"pricingsite/internal/config"
	"pricingsite/internal/database"
	"pricingsite/internal/domain/content"
	"pricingsite/internal/pkg/logging"
)

// prune removes stored overrides for field keys that no longer exist
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("db connect failed")
	}

	svc, err := content.NewService(content.NewRepository(db), cfg.ContentCacheSize, nil, log)
	if err != nil {
		log.WithError(err).Fatal("content service")
	}

	n, err := svc.Prune(context.Background())
	if err != nil {
		log.WithError(err).Fatal("prune failed")
	}
	log.WithField("deleted", n).Info("prune completed")
}
