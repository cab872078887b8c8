// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

const (
	metricsReadHeaderTimeout = 5 * time.Second
	metricsShutdownTimeout   = 5 * time.Second
)

// watch runs the connectivity and refresh workers until ctx is done or the
// process is interrupted, then prints the connectivity state and the queue
// size.
func (a *App) watch(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return usageError("unexpected arguments %v", args)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metricsServer, err := a.serveMetrics()
	if err != nil {
		return err
	}

	workers := a.services.Workers()
	workers.Start(ctx)
	a.logger.Info().Msg("watching remote API, press Ctrl+C to stop")

	<-ctx.Done()

	workers.Stop()
	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		if err = metricsServer.Shutdown(shutdownCtx); err != nil {
			a.logger.Err(err).Str("func", "*App.watch").Msg("metrics server shutdown error")
		}
	}

	requests, err := a.services.PendingRequestService.ListPending(context.WithoutCancel(ctx))
	if err != nil {
		return err
	}

	view := watchView{
		Online:  a.services.ConnectivityJob.Online(),
		Pending: len(requests),
	}
	if report, ok := a.services.ConnectivityJob.LastReplay(); ok {
		last := newReplayView(report)
		view.LastReplay = &last
	}

	return a.print(view)
}

// serveMetrics starts the metrics endpoint when an address is configured.
func (a *App) serveMetrics() (*http.Server, error) {
	if a.metricsAddress == "" || a.metrics == nil {
		return nil, nil
	}

	listener, err := net.Listen("tcp", a.metricsAddress)
	if err != nil {
		return nil, fmt.Errorf("metrics listener %s: %w", a.metricsAddress, err)
	}

	server := &http.Server{
		Handler:           a.metrics,
		ReadHeaderTimeout: metricsReadHeaderTimeout,
	}

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Err(err).Str("func", "*App.serveMetrics").Msg("metrics server stopped with error")
		}
	}()
	a.logger.Info().Str("address", listener.Addr().String()).Msg("serving client metrics")

	return server, nil
}
