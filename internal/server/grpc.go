// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"

	myGRPC "github.com/MKhiriev/go-restaurant-reviews/internal/handler/grpc"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address         string
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: address,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) listen() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("%w: grpc %s: %w", ErrListen, g.address, err)
	}
	g.gRPCNetListener = listener
	return nil
}

func (g *grpcServer) addr() string {
	if g.gRPCNetListener == nil {
		return g.address
	}
	return g.gRPCNetListener.Addr().String()
}

// serve starts health probing and blocks in Serve. A server stopped before
// Serve ran is not an error.
func (g *grpcServer) serve(ctx context.Context) error {
	g.logger.Info().Str("address", g.addr()).Msg("launching gRPC server")
	g.handler.Start(ctx)

	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		g.logger.Err(err).Str("func", "*grpcServer.serve").Msg("gRPC server stopped with error")
		return fmt.Errorf("grpc: %w", err)
	}
	return nil
}

func (g *grpcServer) shutdown() {
	g.logger.Info().Msg("gRPC server shutdown")
	g.handler.Stop()
	g.server.GracefulStop()
}

func (g *grpcServer) close() {
	if g.gRPCNetListener != nil {
		_ = g.gRPCNetListener.Close()
	}
}
