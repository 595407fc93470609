package main

import (
	"context"
	"log"
	"os"
	"syscall"
	"time"

	"github.com/honeycarbs/unified-ats/internal/app"
	"github.com/honeycarbs/unified-ats/internal/config"
	"github.com/honeycarbs/unified-ats/pkg/logging"
	"github.com/honeycarbs/unified-ats/pkg/shutdown"
	"github.com/honeycarbs/unified-ats/pkg/telemetry"
)

const version = "0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	stopTracer, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, version, cfg.Telemetry.Endpoint)
	if err != nil {
		logger.Warn("tracing disabled", "err", err)
		stopTracer = func(context.Context) error { return nil }
	}

	srv, cleanup, err := app.InitializeServer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize server", "err", err)
		os.Exit(1)
	}
	defer cleanup()

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		10*time.Second,
		logger,
		srv,
		shutdown.Func(stopTracer),
	)

	logger.Info("unified ATS server starting", "addr", cfg.Addr(), "zoho_base_url", cfg.Zoho.BaseURL)

	if err := srv.Run(); err != nil {
		logger.Error("server exited with error", "err", err)
	} else {
		logger.Info("server stopped")
	}
}
