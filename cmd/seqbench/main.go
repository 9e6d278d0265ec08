// cmd/seqbench/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/pavanmanishd/containers/internal/config"
	"github.com/pavanmanishd/containers/internal/instrument"
	"github.com/pavanmanishd/containers/internal/workload"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML workload file (default: run every kind once)")
	metricsOut := flag.String("metrics-out", "", "write Prometheus text metrics to this file")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seqbench: %v\n", err)
		os.Exit(2)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *metricsOut != "" {
		cfg.Metrics.OutputPath = *metricsOut
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seqbench: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("seqbench failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newLogger(c config.LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.Level, err)
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	return zc.Build()
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	runner := workload.NewRunner(logger, instrument.NewRecorder(reg, cfg.Metrics.Namespace))

	results, runErr := runner.RunAll(ctx, cfg)
	var ops int
	for _, res := range results {
		ops += res.Ops
	}
	logger.Info("workloads complete",
		zap.Int("workloads", len(results)),
		zap.Int("ops", ops),
	)

	if path := cfg.Metrics.OutputPath; path != "" {
		if err := prometheus.WriteToTextfile(path, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("metrics written", zap.String("path", path))
	}
	return runErr
}
