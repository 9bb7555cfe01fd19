package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/c360/ringbuffer/errors"
	"github.com/c360/ringbuffer/pkg/ring"
)

// Run modes
const (
	ModeScenario = "scenario"
	ModeStress   = "stress"
)

// Defaults applied before the config file and flags
const (
	DefaultCapacity    = 8
	DefaultWorkers     = 2
	DefaultDuration    = 5 * time.Second
	DefaultSwitchEvery = 77
)

// Duration is a time.Duration that reads and writes as a Go duration string in JSON.
type Duration time.Duration

// UnmarshalJSON accepts "1m30s" style strings.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalJSON writes the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// DemoConfig is the file-backed configuration for ringdemo
type DemoConfig struct {
	Mode        string   `json:"mode"`
	Capacity    int      `json:"capacity"`
	Workers     int      `json:"workers"`
	Duration    Duration `json:"duration"`
	SwitchEvery int      `json:"switch_every"`
	MetricsPort int      `json:"metrics_port"`
}

// DefaultDemoConfig returns the built-in defaults
func DefaultDemoConfig() *DemoConfig {
	return &DemoConfig{
		Mode:        ModeScenario,
		Capacity:    DefaultCapacity,
		Workers:     DefaultWorkers,
		Duration:    Duration(DefaultDuration),
		SwitchEvery: DefaultSwitchEvery,
	}
}

// Validate checks the configuration for values the demo cannot run with
func (c *DemoConfig) Validate() error {
	if c.Mode != ModeScenario && c.Mode != ModeStress {
		return errors.WrapInvalid(fmt.Errorf("%w: unknown mode %q", errors.ErrInvalidConfig, c.Mode),
			"DemoConfig", "Validate", "check mode")
	}
	if c.Capacity < ring.MinCapacity {
		return errors.WrapInvalid(fmt.Errorf("%w: capacity %d below %d", errors.ErrInvalidConfig, c.Capacity, ring.MinCapacity),
			"DemoConfig", "Validate", "check capacity")
	}
	if c.Mode == ModeStress {
		if c.Workers < 1 {
			return errors.WrapInvalid(fmt.Errorf("%w: workers must be positive", errors.ErrInvalidConfig),
				"DemoConfig", "Validate", "check workers")
		}
		if c.Duration <= 0 {
			return errors.WrapInvalid(fmt.Errorf("%w: duration must be positive", errors.ErrInvalidConfig),
				"DemoConfig", "Validate", "check duration")
		}
		if c.SwitchEvery < 1 {
			return errors.WrapInvalid(fmt.Errorf("%w: switch_every must be positive", errors.ErrInvalidConfig),
				"DemoConfig", "Validate", "check switch_every")
		}
	}
	return nil
}

// loadConfig reads the JSON file at path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (*DemoConfig, error) {
	cfg := DefaultDemoConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapInvalid(fmt.Errorf("%w: %v", errors.ErrMissingConfig, err),
			"DemoConfig", "loadConfig", "read file")
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapInvalid(fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err),
			"DemoConfig", "loadConfig", "parse JSON")
	}
	return cfg, nil
}

// applyFlags overrides file values with flags the user set explicitly.
// Values coming from environment defaults count as set when the file is absent.
func applyFlags(cfg *DemoConfig, cli *CLIConfig, fromFile bool) {
	use := func(name string) bool {
		return cli.set[name] || !fromFile
	}

	if use("mode") {
		cfg.Mode = cli.Mode
	}
	if use("capacity") {
		cfg.Capacity = cli.Capacity
	}
	if use("workers") {
		cfg.Workers = cli.Workers
	}
	if use("duration") {
		cfg.Duration = Duration(cli.Duration)
	}
	if use("switch-every") {
		cfg.SwitchEvery = cli.SwitchEvery
	}
	if use("metrics-port") {
		cfg.MetricsPort = cli.MetricsPort
	}
}
