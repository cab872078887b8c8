// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args with a dedicated flag set, so it can be called more
// than once per process. Positional arguments are kept in CommandArgs.
//
// Flags:
//
//	-a server HTTP address in format [host]:[port]
//	-grpc-address server gRPC health address in format [host]:[port]
//	-metrics-address client metrics address in format [host]:[port]
//	-d database DSN (SQLite path for the client, PostgreSQL DSN for the server)
//	-c/-config json file path with configs
//	-remote remote API base URL used by the client
//	-remote-timeout client request timeout (e.g. "10s")
//	-request-timeout server request timeout (e.g. "30s", "1m")
//	-connectivity-interval remote probe interval (e.g. "30s")
//	-refresh-interval restaurant refresh interval in watch mode
//	-log-file client log file path
//	-log-level log level name
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress, metricsAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var remoteAddress string
	var remoteTimeout time.Duration
	var requestTimeout time.Duration
	var connectivityInterval time.Duration
	var refreshInterval time.Duration
	var logFile string
	var logLevel string

	fs := flag.NewFlagSet("restaurant-reviews", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health address host:port")
	fs.Var(&metricsAddress, "metrics-address", "Client metrics address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&remoteAddress, "remote", "", "Remote API base URL")
	fs.DurationVar(&remoteTimeout, "remote-timeout", 0, "Remote request timeout (e.g., 10s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&connectivityInterval, "connectivity-interval", 0, "Remote probe interval (e.g., 30s)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Restaurant refresh interval (e.g., 5m)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile:        logFile,
			LogLevel:       logLevel,
			MetricsAddress: metricsAddress.String(),
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: remoteTimeout,
		},
		Workers: Workers{
			ConnectivityInterval: connectivityInterval,
			RefreshInterval:      refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
		CommandArgs:  fs.Args(),
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
