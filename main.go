package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dive-media/config"
	"dive-media/di"
	"dive-media/job"
	"dive-media/rest"
	"dive-media/utils/logger"
	"dive-media/utils/otel"

	"github.com/labstack/echo/v4"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "dive-media:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := otel.InitProvider(ctx, otel.Config{
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.OTel.ServiceVersion,
		Environment:    cfg.OTel.Environment,
		OTLPEndpoint:   cfg.OTel.Endpoint,
		Enabled:        cfg.OTel.Enabled,
		SampleRatio:    cfg.OTel.SampleRatio,
	})
	if err != nil {
		return fmt.Errorf("init otel: %w", err)
	}

	log := logger.InitLogger(cfg.Logging.Level, cfg.OTel.Enabled)
	if cfg.Storage.Origin == "" {
		log.Warn("SUPABASE_URL is not set; image requests will fail with a configuration error")
	}

	container, err := di.NewApplicationComponents(cfg)
	if err != nil {
		return fmt.Errorf("build components: %w", err)
	}
	defer func() { _ = container.Close() }()

	if container.VerdictStore != nil {
		if err := container.VerdictStore.Ping(ctx); err != nil {
			// Verdicts still work per process without Redis.
			log.Warn("redis verdict store unreachable", "error", err)
		}
	}

	scheduler := job.NewJobScheduler()
	if cfg.Warmer.Enabled {
		targets, err := config.ParseWarmTargets(cfg.Warmer.URLs)
		if err != nil {
			return fmt.Errorf("parse warm targets: %w", err)
		}
		scheduler.Add(job.Job{
			Name:     "image-warmer",
			Interval: cfg.Warmer.Interval,
			Timeout:  cfg.Warmer.Timeout,
			Fn:       job.ImageWarmerJob(container.ResponsiveImageUsecase, targets),
		})
	}
	scheduler.Start(ctx)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout
	rest.RegisterRoutes(e, container, cfg)

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", "port", cfg.Server.Port)
		if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			stop()
			scheduler.Shutdown()
			return fmt.Errorf("start server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", "error", err)
	}
	scheduler.Shutdown()
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error("otel shutdown failed", "error", err)
	}
	return nil
}
