// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied by the client and server views.
const (
	DefaultRemoteAddress        = "http://localhost:1337"
	DefaultRemoteTimeout        = 10 * time.Second
	DefaultConnectivityInterval = 30 * time.Second
	DefaultClientDSN            = "restaurant_reviews.db"
	DefaultServerAddress        = "localhost:1337"
	DefaultServerRequestTimeout = 30 * time.Second
)

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     App
	Adapter Adapter
	Storage Storage
	Workers Workers

	// Args are the positional command arguments.
	Args []string
}

// ServerConfig is the reference server view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Server  Server
	Storage Storage
}

// GetClientConfig loads the merged configuration from the environment and
// args, applies the client defaults and validates the result.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// GetServerConfig loads the merged configuration from the environment and
// args, applies the server defaults and validates the result.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Storage: cfg.Storage,
		Workers: cfg.Workers,
		Args:    cfg.CommandArgs,
	}

	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = DefaultRemoteAddress
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRemoteTimeout
	}
	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = DefaultClientDSN
	}
	if clientCfg.Workers.ConnectivityInterval == 0 {
		clientCfg.Workers.ConnectivityInterval = DefaultConnectivityInterval
	}

	return clientCfg
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}

	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = DefaultServerAddress
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = DefaultServerRequestTimeout
	}

	return serverCfg
}
