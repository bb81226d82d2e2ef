package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"riddle-bridge/internal/anim"
	"riddle-bridge/internal/bridge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsRoundTrip(t *testing.T) {
	c, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestDefaultsMatchGamePacing(t *testing.T) {
	c := Default()
	assert.Equal(t, anim.DefaultTiming(), c.AnimTiming())

	o := c.BridgeOptions(nil)
	assert.Equal(t, bridge.DefaultOptions(), o)
}

func TestReadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riddle-bridge.yaml")
	data := []byte(`max_light: 3
timing:
  walk: 500ms
  riddle_delay: 250ms
log:
  level: debug
ssh:
  max_sessions: 2
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	v := New()
	require.NoError(t, ReadFile(v, path))
	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 3, c.MaxLight)
	assert.Equal(t, 500*time.Millisecond, c.Timing.Walk)
	assert.Equal(t, 250*time.Millisecond, c.Timing.RiddleDelay)
	assert.Equal(t, 2*time.Second, c.Timing.Notice, "unset keys keep defaults")
	assert.Equal(t, 2, c.SSH.MaxSessions)

	lvl, err := ParseLevel(c.Log.Level)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestReadFileMissingExplicitPath(t *testing.T) {
	err := ReadFile(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestReadFileSearchMissIsFine(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	assert.NoError(t, ReadFile(New(), ""))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("RIDDLE_BRIDGE_MAX_LIGHT", "7")
	t.Setenv("RIDDLE_BRIDGE_SSH_ADDR", ":2022")

	c, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, 7, c.MaxLight)
	assert.Equal(t, ":2022", c.SSH.Addr)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero light", func(c *Config) { c.MaxLight = 0 }},
		{"zero walk", func(c *Config) { c.Timing.Walk = 0 }},
		{"negative delay", func(c *Config) { c.Timing.RiddleDelay = -time.Second }},
		{"zero frame", func(c *Config) { c.Timing.Frame = 0 }},
		{"zero step", func(c *Config) { c.Timing.StepDistance = 0 }},
		{"negative sessions", func(c *Config) { c.SSH.MaxSessions = -1 }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
	assert.NoError(t, Default().Validate())
}
