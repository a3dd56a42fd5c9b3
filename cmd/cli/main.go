package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mbopage/ezycook-cli/internal/buildinfo"
	"github.com/mbopage/ezycook-cli/internal/client/cli"
	"github.com/mbopage/ezycook-cli/internal/client/config"
	"github.com/mbopage/ezycook-cli/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
