// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-restaurant-reviews/internal/config"
	"github.com/MKhiriev/go-restaurant-reviews/internal/handler"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer    *httpServer
	gRPCServer    *grpcServer
	metricsServer *httpServer

	shutdownOnce sync.Once
	logger       *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg *config.ServerConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.Server.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer("api", cfg.Server.HTTPAddress, handlers.HTTP.Init(), logger)
	}
	if cfg.Server.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg.Server.GRPCAddress, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	if cfg.App.MetricsAddress != "" && handlers.Metrics != nil {
		servers.metricsServer = newHTTPServer("metrics", cfg.App.MetricsAddress, handlers.Metrics, logger)
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	if err := s.listen(); err != nil {
		s.logger.Err(err).Str("func", "*server.Run").Msg("error binding servers")
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	// launch all created servers
	if s.httpServer != nil {
		g.Go(s.httpServer.serve)
	}
	if s.gRPCServer != nil {
		g.Go(func() error { return s.gRPCServer.serve(gctx) })
	}
	if s.metricsServer != nil {
		g.Go(s.metricsServer.serve)
	}

	// listen for stop signals or a failed server
	g.Go(func() error {
		<-gctx.Done()
		s.Shutdown()
		return nil
	})

	err := g.Wait()
	if err != nil {
		s.logger.Err(err).Str("func", "*server.Run").Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			s.httpServer.shutdown(ctx)
		}
		if s.gRPCServer != nil {
			s.gRPCServer.shutdown()
		}
		if s.metricsServer != nil {
			s.metricsServer.shutdown(ctx)
		}
	})
}

// listen binds every transport before any of them starts serving, so a
// taken port fails the whole run.
func (s *server) listen() error {
	var err error
	if s.httpServer != nil {
		err = s.httpServer.listen()
	}
	if err == nil && s.gRPCServer != nil {
		err = s.gRPCServer.listen()
	}
	if err == nil && s.metricsServer != nil {
		err = s.metricsServer.listen()
	}

	if err != nil {
		s.closeListeners()
	}
	return err
}

func (s *server) closeListeners() {
	if s.httpServer != nil {
		s.httpServer.close()
	}
	if s.gRPCServer != nil {
		s.gRPCServer.close()
	}
	if s.metricsServer != nil {
		s.metricsServer.close()
	}
}
