// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the reference server. It is populated by merging environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	App App `envPrefix:"APP_"`

	Storage Storage `envPrefix:"STORAGE_"`

	// Server configures the reference API server listeners.
	Server Server `envPrefix:"SERVER_"`

	// Adapter configures the client connection to the remote API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`

	// CommandArgs holds the positional arguments left after flag parsing.
	// It is never read from the environment or JSON.
	CommandArgs []string
}

// App holds process-wide settings.
type App struct {
	// Version is reported by the server /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is the client log destination.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// MetricsAddress is the host:port the client serves /metrics on while
	// watching. Empty disables the listener.
	// Env: APP_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection string. The client expects a SQLite file
// path, the server a PostgreSQL DSN.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the inbound transport settings of the reference server.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is where the gRPC health service listens. Empty disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound settings of the client.
type Adapter struct {
	// HTTPAddress is the remote API base URL (e.g. "http://localhost:1337").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers configures the client background jobs.
type Workers struct {
	// ConnectivityInterval is how often the remote API is probed.
	// Env: WORKERS_CONNECTIVITY_INTERVAL
	ConnectivityInterval time.Duration `env:"CONNECTIVITY_INTERVAL"`

	// RefreshInterval is how often the restaurant cache is refreshed in
	// watch mode. Zero disables the refresh job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all sources,
// last source wins for non-zero fields:
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
