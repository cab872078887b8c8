// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-restaurant-reviews/internal/config"
	"github.com/MKhiriev/go-restaurant-reviews/internal/handler"
	myGRPC "github.com/MKhiriev/go-restaurant-reviews/internal/handler/grpc"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/service"
	"github.com/MKhiriev/go-restaurant-reviews/internal/service/servicemock"
)

// freeAddress reserves a loopback port and releases it for the server.
func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	ctrl := gomock.NewController(t)

	appInfo := servicemock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3").AnyTimes()
	appInfo.EXPECT().CheckHealth(gomock.Any()).Return(nil).AnyTimes()

	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: appInfo}, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer_NoTransports(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, &config.ServerConfig{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_MetricsListenerIsOptional(t *testing.T) {
	cfg := &config.ServerConfig{Server: config.Server{HTTPAddress: "127.0.0.1:0"}}
	handlers := newTestHandlers(t, cfg.Server)

	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server)
	assert.NotNil(t, srv.httpServer)
	assert.Nil(t, srv.gRPCServer)
	assert.Nil(t, srv.metricsServer)
}

func TestRun_ServesAllTransportsUntilCanceled(t *testing.T) {
	cfg := &config.ServerConfig{
		App: config.App{MetricsAddress: freeAddress(t)},
		Server: config.Server{
			HTTPAddress: freeAddress(t),
			GRPCAddress: freeAddress(t),
		},
	}
	s, err := NewServer(newTestHandlers(t, cfg.Server), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// ── HTTP API ───────────────────────────────────────────────────────
	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.Server.HTTPAddress + "/version")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)
		body = string(raw)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, "1.2.3", body)

	// ── gRPC health ────────────────────────────────────────────────────
	conn, err := grpc.NewClient(cfg.Server.GRPCAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client := healthpb.NewHealthClient(conn)
	assert.Eventually(t, func() bool {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: myGRPC.ServiceName})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 2*time.Second, 20*time.Millisecond)

	// ── metrics ────────────────────────────────────────────────────────
	resp, err := http.Get("http://" + cfg.App.MetricsAddress + "/metrics")
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(raw), `route="/version"`)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get("http://" + cfg.Server.HTTPAddress + "/version")
	assert.Error(t, err, "API must be closed after shutdown")
}

func TestRun_TakenPortFailsBeforeServing(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	cfg := &config.ServerConfig{
		Server: config.Server{
			HTTPAddress: freeAddress(t),
			GRPCAddress: taken.Addr().String(),
		},
	}
	s, err := NewServer(newTestHandlers(t, cfg.Server), cfg, logger.Nop())
	require.NoError(t, err)

	err = s.Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrListen))

	// HTTP listener bound first must be released again.
	l, err := net.Listen("tcp", cfg.Server.HTTPAddress)
	require.NoError(t, err)
	l.Close()
}
