// cmd/worker-manager/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"skillpath-workers/internal/catalog"
	"skillpath-workers/internal/common/camunda"
	"skillpath-workers/internal/common/config"
	"skillpath-workers/internal/common/logger"
	"skillpath-workers/internal/common/observability"
)

const serviceName = "skillpath-worker-manager"

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	tracing, err := observability.NewTracing(serviceName, cfg.Tracing)
	if err != nil {
		zapLog.Fatal("tracing setup failed", zap.Error(err))
	}
	obs, err := observability.New(tracing)
	if err != nil {
		zapLog.Fatal("metrics setup failed", zap.Error(err))
	}
	defer obs.Shutdown(context.Background())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Load(cfg.Assessment.CatalogPath)
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}
	zapLog.Info("catalog loaded", zap.Int("careers", len(cat.Careers)))

	// --- Init Zeebe Client with retry ---
	zeebe, err := camunda.Connect(ctx, &camunda.ClientConfig{
		GatewayAddress:         cfg.Camunda.BrokerAddress,
		UsePlaintextConnection: true,
		ConnectionTimeout:      config.GetDuration(cfg.Camunda.RequestTimeout),
	}, log)
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	infra := connectInfra(ctx, cfg, cat, log)
	defer infra.Close()

	workers, err := registerWorkers(zeebe.Zeebe(), cfg, cat, infra, log)
	if err != nil {
		zapLog.Fatal("worker registration failed", zap.Error(err))
	}
	zapLog.Info("workers registered", zap.Int("count", len(workers)))

	server := startHealthServer(cfg.Server.HealthAddress, zeebe, infra, log)

	// --- Graceful Shutdown ---
	<-ctx.Done()
	zapLog.Info("Shutdown signal received, stopping workers...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Close()
		w.AwaitClose()
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Health server shutdown failed", zap.Error(err))
	}
	if err := zeebe.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}
