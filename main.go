package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/khedhrije/items-archetype/internal/bootstrap"
	"github.com/khedhrije/items-archetype/internal/configuration"
)

// Default metadata (can be overridden by env variables or -ldflags)
var (
	version  = "dev"
	revision = "unknown"
	builtAt  = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.InitBootstrap(configuration.BuildInfo{
		Version:  version,
		Revision: revision,
		BuiltAt:  builtAt,
	})
	if err != nil {
		slog.Error("error during service instantiation", slog.Any("error", err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		app.Logger.Error("server stopped with error", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}
