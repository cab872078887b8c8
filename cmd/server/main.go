// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-restaurant-reviews/internal/config"
	"github.com/MKhiriev/go-restaurant-reviews/internal/handler"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/server"
	"github.com/MKhiriev/go-restaurant-reviews/internal/service"
	"github.com/MKhiriev/go-restaurant-reviews/internal/store"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("restaurant-reviews-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
