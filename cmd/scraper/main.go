// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/paksentiment/paksentiment/internal/adapter"
	"github.com/paksentiment/paksentiment/internal/config"
	"github.com/paksentiment/paksentiment/internal/logger"
	"github.com/paksentiment/paksentiment/internal/workers"
	"github.com/paksentiment/paksentiment/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("paksentiment-scraper")

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.GetScraperConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = log.WithLevel(cfg.LogLevel)

	sources := adapter.NewSources(cfg.Scraper, log)

	// without a server address posts are only logged
	var uploader adapter.ServerAdapter
	if cfg.ServerAddress != "" {
		uploader, err = adapter.NewHTTPServerAdapter(cfg.ServerAddress, cfg.RequestTimeout, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating server adapter")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scraper := workers.NewScrapeWorker(sources, uploader, cfg.Scraper, log)
	if err = workers.NewWorkers(scraper).Run(ctx); err != nil {
		log.Error().Err(err).Msg("scraper stopped with error")
		return
	}

	log.Info().Msg("scraper finished")
}
