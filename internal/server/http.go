// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
)

const readHeaderTimeout = 5 * time.Second

// httpServer serves one http.Handler. The API and the metrics endpoint
// each get their own.
type httpServer struct {
	name     string
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(name, address string, handler http.Handler, logger *logger.Logger) *httpServer {
	return &httpServer{
		name: name,
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) listen() error {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrListen, h.name, h.server.Addr, err)
	}
	h.listener = listener
	return nil
}

// addr is the bound address; it differs from the configured one for ":0".
func (h *httpServer) addr() string {
	if h.listener == nil {
		return h.server.Addr
	}
	return h.listener.Addr().String()
}

func (h *httpServer) serve() error {
	h.logger.Info().Str("server", h.name).Str("address", h.addr()).Msg("launching HTTP server")

	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Str("func", "*httpServer.serve").Str("server", h.name).Msg("HTTP server stopped with error")
		return fmt.Errorf("%s: %w", h.name, err)
	}
	return nil
}

func (h *httpServer) shutdown(ctx context.Context) {
	if err := h.server.Shutdown(ctx); err != nil {
		// ошибки закрытия Listener
		h.logger.Err(err).Str("func", "*httpServer.shutdown").Str("server", h.name).Msg("HTTP server shutdown error")
		return
	}
	h.logger.Info().Str("server", h.name).Msg("HTTP server shut down")
}

func (h *httpServer) close() {
	if h.listener != nil {
		_ = h.listener.Close()
	}
}
