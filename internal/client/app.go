// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/MKhiriev/go-restaurant-reviews/internal/config"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/service"
)

type App struct {
	services *service.ClientServices
	args     []string

	// metrics is served on metricsAddress by the watch command.
	metrics        http.Handler
	metricsAddress string

	out    io.Writer
	logger *logger.Logger
}

// command runs with the arguments following its name.
type command struct {
	usage string
	run   func(a *App, ctx context.Context, args []string) error

	// drainsQueue is set for commands that replay the pending-write queue
	// themselves; every other command is preceded by a start replay.
	drainsQueue bool
}

var commands = map[string]command{
	"restaurants":   {usage: "restaurants [-cached] [-cuisine c] [-neighborhood n]", run: (*App).restaurants},
	"restaurant":    {usage: "restaurant [-cached] <id>", run: (*App).restaurant},
	"neighborhoods": {usage: "neighborhoods", run: (*App).neighborhoods},
	"cuisines":      {usage: "cuisines", run: (*App).cuisines},
	"reviews":       {usage: "reviews [-cached] <restaurant id>", run: (*App).reviews},
	"refresh":       {usage: "refresh [id]", run: (*App).refresh},
	"favorite":      {usage: "favorite <id> <true|false>", run: (*App).favorite},
	"review":        {usage: "review <restaurant id> <name> <rating> <comments>", run: (*App).review},
	"pending":       {usage: "pending", run: (*App).pending},
	"replay":        {usage: "replay", run: (*App).replay, drainsQueue: true},
	"watch":         {usage: "watch", run: (*App).watch, drainsQueue: true},
}

func NewApp(services *service.ClientServices, cfg *config.ClientConfig, metrics http.Handler, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, fmt.Errorf("%w: client services are required", ErrUsage)
	}

	return &App{
		services:       services,
		args:           cfg.Args,
		metrics:        metrics,
		metricsAddress: cfg.App.MetricsAddress,
		out:            out,
		logger:         logger,
	}, nil
}

// Run executes the command named by the first positional argument.
func (a *App) Run(ctx context.Context) error {
	if len(a.args) == 0 {
		return fmt.Errorf("%w: no command given\n%s", ErrUsage, Usage())
	}

	name, args := a.args[0], a.args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %q\n%s", ErrUnknownCommand, name, Usage())
	}

	a.logger.Debug().Str("command", name).Strs("args", args).Msg("running command")

	// queued writes of earlier runs go out before this command sends its own
	if !cmd.drainsQueue {
		a.services.ReplayOnStart(ctx)
	}

	if err := cmd.run(a, ctx, args); err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Str("command", name).Msg("command failed")
		if errors.Is(err, ErrUsage) {
			return fmt.Errorf("%w\nusage: %s", err, cmd.usage)
		}
		return err
	}
	return nil
}

// Usage lists every command.
func Usage() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("commands:\n")
	for _, name := range names {
		b.WriteString("  ")
		b.WriteString(commands[name].usage)
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}
