// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-restaurant-reviews/internal/adapter"
	"github.com/MKhiriev/go-restaurant-reviews/internal/client"
	"github.com/MKhiriev/go-restaurant-reviews/internal/config"
	"github.com/MKhiriev/go-restaurant-reviews/internal/gateway"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/metrics"
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
	os.Exit(run())
}

// run returns the exit code so that deferred closes happen before exit.
func run() int {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n%s", err, client.Usage())
		return 2
	}

	log := logger.NewClientLogger("restaurant-reviews-client", cfg.App.LogFile)
	logger.SetLevel(cfg.App.LogLevel)
	log.Info().Str("build", models.NewBuildInfo(buildVersion, buildDate, buildCommit).Version).Msg("client started")

	ctx := context.Background()

	opener := store.NewOpener(cfg.Storage.DB, log)
	storages, err := store.NewClientStorages(ctx, opener, log)
	if err != nil {
		log.Err(err).Msg("create local storage")
		fmt.Fprintf(os.Stderr, "local storage: %v\n", err)
		return 1
	}
	defer storages.Close()

	remote, err := adapter.NewHTTPRemoteAdapter(cfg.Adapter, log)
	if err != nil {
		log.Err(err).Msg("create remote adapter")
		fmt.Fprintf(os.Stderr, "remote adapter: %v\n", err)
		return 1
	}

	requests, err := gateway.NewRequestBuilder(cfg.Adapter.HTTPAddress)
	if err != nil {
		log.Err(err).Msg("create request builder")
		fmt.Fprintf(os.Stderr, "request builder: %v\n", err)
		return 1
	}

	registry := prometheus.NewRegistry()
	services := service.NewClientServices(storages, remote, requests, cfg.Workers, metrics.NewClientMetrics(registry), log)

	app, err := client.NewApp(services, cfg, metrics.Handler(registry), os.Stdout, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return 1
	}

	if err = app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}
