// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-restaurant-reviews/internal/config"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
)

// stubPinger отвечает на Ping заданной ошибкой.
type stubPinger struct {
	err   error
	calls int
}

func (p *stubPinger) Ping(context.Context) error {
	p.calls++
	return p.err
}

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, &stubPinger{}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: ""}, &stubPinger{}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "v1.2.3-beta+build.42"}, nil, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "v1.2.3-beta+build.42", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, nil, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

// ─────────────────────────────────────────────
// CheckHealth
// ─────────────────────────────────────────────

func TestCheckHealth_DatabaseUp(t *testing.T) {
	db := &stubPinger{}
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, db, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, svc.CheckHealth(context.Background()))
	assert.Equal(t, 1, db.calls)
}

func TestCheckHealth_DatabaseDown(t *testing.T) {
	pingErr := errors.New("connection refused")
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, &stubPinger{err: pingErr}, logger.Nop())
	require.NoError(t, err)

	err = svc.CheckHealth(context.Background())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, pingErr)
}

func TestCheckHealth_NoDatabase(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, nil, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, svc.CheckHealth(context.Background()))
}
