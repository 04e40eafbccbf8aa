package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"pricingsite/internal/config"
	"pricingsite/internal/database"
	"pricingsite/internal/domain/content"
	"pricingsite/internal/pkg/logging"
)

func main() {
	file := flag.String("file", "cmd/seed/sections.yaml", "YAML file with section content")
	editor := flag.String("editor", "seed", "name recorded as updated_by")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	seed, err := content.LoadSeedFile(*file)
	if err != nil {
		log.WithError(err).WithField("file", *file).Fatal("read seed file")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("db connect failed")
	}

	log.Info("running migrations")
	if err := database.Migrate(db, &content.FieldOverride{}); err != nil {
		log.WithError(err).Fatal("migrate failed")
	}

	svc, err := content.NewService(content.NewRepository(db), cfg.ContentCacheSize, nil, log)
	if err != nil {
		log.WithError(err).Fatal("content service")
	}

	n, err := svc.Seed(context.Background(), seed, *editor)
	if err != nil {
		log.WithError(err).WithField("written", n).Fatal("seed failed")
	}
	log.WithFields(logrus.Fields{"file": *file, "fields": n}).Info("seed completed")
}
