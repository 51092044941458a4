// Package main is the entry point for the Labyrinth.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.uber.org/zap"

	"github.com/samdwyer/labyrinth/internal/config"
	"github.com/samdwyer/labyrinth/internal/game"
	"github.com/samdwyer/labyrinth/internal/logger"
	"github.com/samdwyer/labyrinth/internal/metrics"
	"github.com/samdwyer/labyrinth/internal/telemetry"
	"github.com/samdwyer/labyrinth/internal/ui"
	"github.com/samdwyer/labyrinth/internal/world"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("labyrinth: %v", err)
	}
}

// run plays one game. Deferred shutdowns all run before it returns.
func run(cfg *config.Config) error {
	zl, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx := context.Background()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx,
			otlptracehttp.WithEndpointURL(cfg.Telemetry.Endpoint),
			otlptracehttp.WithHeaders(cfg.Telemetry.Headers()),
		)
		if err != nil {
			zl.Warn("telemetry setup failed, running without traces", zap.Error(err))
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					zl.Error("telemetry shutdown failed", zap.Error(err))
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	if cfg.MetricsAddr != "" {
		srv := serveMetrics(cfg.MetricsAddr, reg, zl)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	zl.Info("starting labyrinth", zap.Int64("seed", seed))

	catalog, err := world.LoadRandomCatalog(rand.New(rand.NewSource(seed)))
	if err != nil {
		zl.Error("failed to load room catalog", zap.Error(err))
		return fmt.Errorf("load room catalog: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		zl.Error("failed to initialize screen", zap.Error(err))
		return fmt.Errorf("initialize screen: %w", err)
	}

	policy := game.SkipEmpty
	if cfg.StopOnEmpty {
		policy = game.StopOnEmpty
	}

	g := game.New(screen, catalog, game.Config{
		EmptyPolicy: policy,
		Metrics:     m,
		Logger:      zl,
	})

	if err := g.Run(ctx); err != nil {
		zl.Error("game error", zap.Error(err))
		return err
	}
	return nil
}

// serveMetrics exposes /metrics on addr in the background.
func serveMetrics(addr string, reg *prometheus.Registry, zl *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("metrics server stopped", zap.Error(err))
		}
	}()
	return srv
}
