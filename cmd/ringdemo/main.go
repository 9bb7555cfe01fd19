// Package main implements ringdemo, a command that exercises the ring buffer
// in a scripted scenario or under concurrent load with Prometheus metrics.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/c360/ringbuffer/metric"
	"github.com/c360/ringbuffer/pkg/ring"
	"github.com/c360/ringbuffer/pkg/ring/element"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "ringdemo"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cliCfg, err := parseFlags(args, stderr)
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if err := validateFlags(cliCfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		_, _ = fmt.Fprintf(stdout, "%s version %s\n", appName, Version)
		return nil
	}

	if cliCfg.ShowHelp {
		return printHelp(stdout)
	}

	logger := setupLogger(stderr, cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	cfg, err := loadConfig(cliCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, cliCfg, cliCfg.ConfigPath != "")
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Info("Starting ringdemo",
		"build_time", BuildTime,
		"mode", cfg.Mode,
		"capacity", cfg.Capacity,
		"config_path", cliCfg.ConfigPath)

	registry := metric.NewMetricsRegistry()
	if cfg.MetricsPort > 0 {
		server := metric.NewServer(cfg.MetricsPort, "/metrics", registry)
		if err := server.Listen(); err != nil {
			return err
		}
		defer func() {
			if err := server.Stop(); err != nil {
				logger.Warn("Metrics server stop failed", "error", err)
			}
		}()
		go func() {
			if err := server.Serve(); err != nil {
				logger.Error("Metrics server failed", "error", err)
			}
		}()
		logger.Info("Metrics server listening", "address", server.Address())
	}

	r, err := ring.New[element.Element](cfg.Capacity,
		ring.WithMetrics[element.Element](registry, cfg.Mode),
		ring.WithLogger[element.Element](logger),
	)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Close()
	}()

	switch cfg.Mode {
	case ModeStress:
		_, err = runStress(ctx, cfg, r, registry.CoreMetrics(), logger)
		return err
	default:
		return runScenario(stdout, r)
	}
}

func printHelp(w io.Writer) error {
	fs := newFlagSet(&CLIConfig{}, w)
	printDetailedHelp(w, fs)
	return nil
}
