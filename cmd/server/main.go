// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/paksentiment/paksentiment/internal/bootstrap"
	"github.com/paksentiment/paksentiment/internal/config"
	myHTTP "github.com/paksentiment/paksentiment/internal/handler/http"
	"github.com/paksentiment/paksentiment/internal/logger"
	"github.com/paksentiment/paksentiment/internal/service"
	"github.com/paksentiment/paksentiment/internal/store"
	"github.com/paksentiment/paksentiment/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("paksentiment-server")

	// a missing .env is fine, the process environment is used as is
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = log.WithLevel(cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	application, err := bootstrap.Bootstrap(myHTTP.NewHandler(services, log), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error bootstrapping application")
	}

	if err = application.Run(); err != nil {
		log.Fatal().Err(err).Msg("error running application")
	}
}
