package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ringbuffer/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ringdemo.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDemoConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `{"mode":"stress","capacity":32,"duration":"1m30s","metrics_port":9100}`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ModeStress, cfg.Mode)
	assert.Equal(t, 32, cfg.Capacity)
	assert.Equal(t, Duration(90*time.Second), cfg.Duration)
	assert.Equal(t, 9100, cfg.MetricsPort)
	assert.Equal(t, DefaultWorkers, cfg.Workers, "unset fields keep defaults")
	assert.Equal(t, DefaultSwitchEvery, cfg.SwitchEvery)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMissingConfig)

	_, err = loadConfig(writeConfig(t, `{"duration": 5}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)

	_, err = loadConfig(writeConfig(t, `{"duration": "soon"}`))
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestDemoConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DemoConfig)
		valid  bool
	}{
		{"defaults", func(*DemoConfig) {}, true},
		{"unknown mode", func(c *DemoConfig) { c.Mode = "chaos" }, false},
		{"capacity too small", func(c *DemoConfig) { c.Capacity = 1 }, false},
		{"minimum capacity", func(c *DemoConfig) { c.Capacity = 2 }, true},
		{"stress without workers", func(c *DemoConfig) { c.Mode = ModeStress; c.Workers = 0 }, false},
		{"stress zero duration", func(c *DemoConfig) { c.Mode = ModeStress; c.Duration = 0 }, false},
		{"stress zero switch", func(c *DemoConfig) { c.Mode = ModeStress; c.SwitchEvery = 0 }, false},
		{"scenario ignores workers", func(c *DemoConfig) { c.Workers = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDemoConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsInvalid(err))
			assert.ErrorIs(t, err, errors.ErrInvalidConfig)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(1500 * time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, `"1.5s"`, string(b))
}

func TestApplyFlags(t *testing.T) {
	path := writeConfig(t, `{"mode":"stress","capacity":32,"workers":4}`)

	cli, err := parseFlags([]string{"-config=" + path, "-capacity=64"}, io.Discard)
	require.NoError(t, err)

	cfg, err := loadConfig(cli.ConfigPath)
	require.NoError(t, err)
	applyFlags(cfg, cli, true)

	assert.Equal(t, 64, cfg.Capacity, "explicit flag overrides file")
	assert.Equal(t, ModeStress, cfg.Mode, "file value kept when flag absent")
	assert.Equal(t, 4, cfg.Workers)
}

func TestApplyFlags_NoFile(t *testing.T) {
	t.Setenv("RINGDEMO_WORKERS", "6")

	cli, err := parseFlags([]string{"-mode=stress"}, io.Discard)
	require.NoError(t, err)

	cfg := DefaultDemoConfig()
	applyFlags(cfg, cli, false)

	assert.Equal(t, ModeStress, cfg.Mode)
	assert.Equal(t, 6, cfg.Workers, "environment default applies without a file")
	assert.Equal(t, DefaultCapacity, cfg.Capacity)
}
