package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	LogLevel    string
	LogFormat   string
	Mode        string
	Capacity    int
	Workers     int
	Duration    time.Duration
	SwitchEvery int
	MetricsPort int
	ShowVersion bool
	ShowHelp    bool

	// set records which flags were given explicitly so they can override the config file
	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*CLIConfig, error) {
	cfg := &CLIConfig{}
	fs := newFlagSet(cfg, stderr)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		cfg.set[f.Name] = true
	})

	return cfg, nil
}

// newFlagSet binds every ringdemo flag to cfg, with environment fallbacks as defaults
func newFlagSet(cfg *CLIConfig, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(&cfg.ConfigPath, "config",
		getEnv("RINGDEMO_CONFIG", ""),
		"Path to JSON configuration file (env: RINGDEMO_CONFIG)")

	fs.StringVar(&cfg.LogLevel, "log-level",
		getEnv("RINGDEMO_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: RINGDEMO_LOG_LEVEL)")

	fs.StringVar(&cfg.LogFormat, "log-format",
		getEnv("RINGDEMO_LOG_FORMAT", "text"),
		"Log format: json, text (env: RINGDEMO_LOG_FORMAT)")

	fs.StringVar(&cfg.Mode, "mode",
		getEnv("RINGDEMO_MODE", ModeScenario),
		"Run mode: scenario, stress (env: RINGDEMO_MODE)")

	fs.IntVar(&cfg.Capacity, "capacity",
		getEnvInt("RINGDEMO_CAPACITY", DefaultCapacity),
		"Ring capacity in slots, holds capacity-1 elements (env: RINGDEMO_CAPACITY)")

	fs.IntVar(&cfg.Workers, "workers",
		getEnvInt("RINGDEMO_WORKERS", DefaultWorkers),
		"Stress mode worker goroutines (env: RINGDEMO_WORKERS)")

	fs.DurationVar(&cfg.Duration, "duration",
		getEnvDuration("RINGDEMO_DURATION", DefaultDuration),
		"Stress mode run time (env: RINGDEMO_DURATION)")

	fs.IntVar(&cfg.SwitchEvery, "switch-every",
		getEnvInt("RINGDEMO_SWITCH_EVERY", DefaultSwitchEvery),
		"Operations before a stress worker flips between pushing and popping (env: RINGDEMO_SWITCH_EVERY)")

	fs.IntVar(&cfg.MetricsPort, "metrics-port",
		getEnvInt("RINGDEMO_METRICS_PORT", 0),
		"Prometheus metrics port, 0 to disable (env: RINGDEMO_METRICS_PORT)")

	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fs.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	fs.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")

	fs.Usage = func() {
		printDetailedHelp(out, fs)
	}

	return fs
}

func validateFlags(cfg *CLIConfig) error {
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	if cfg.ConfigPath != "" {
		if _, err := os.Stat(cfg.ConfigPath); err != nil {
			return fmt.Errorf("config file not found: %s", cfg.ConfigPath)
		}
	}

	if !contains([]string{"debug", "info", "warn", "error"}, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	if !contains([]string{"json", "text"}, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	if cfg.MetricsPort < 0 || cfg.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port: %d", cfg.MetricsPort)
	}

	return nil
}

func printDetailedHelp(w io.Writer, fs *flag.FlagSet) {
	_, _ = fmt.Fprintf(w, `%s - fixed-capacity ring buffer demonstration

Usage: %s [options]

Options:
`, appName, appName)
	fs.PrintDefaults()
	_, _ = fmt.Fprintf(w, `
Examples:
  # Walk through the capacity-8 scenarios
  %s --mode=scenario

  # Two workers sharing one externally locked ring for ten seconds
  %s --mode=stress --workers=2 --duration=10s --metrics-port=9090

  # Load settings from a file, override the capacity
  %s --config=ringdemo.json --capacity=64

Version: %s
Build: %s
`, appName, appName, appName, Version, BuildTime)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
