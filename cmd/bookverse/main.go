package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/nikolayk812/bookverse/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, os.Args[1:], os.Stdout); err != nil {
		stop()
		config.Exitf("bookverse: %v", err)
	}
}
