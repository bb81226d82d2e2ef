// Package config loads the game's settings through viper.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"riddle-bridge/internal/anim"
	"riddle-bridge/internal/bridge"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// RIDDLE_BRIDGE_MAX_LIGHT or RIDDLE_BRIDGE_SSH_ADDR.
const EnvPrefix = "RIDDLE_BRIDGE"

// FileName is the config file name searched for, without extension.
const FileName = "riddle-bridge"

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid configuration")

type Timing struct {
	Walk         time.Duration `mapstructure:"walk"`
	StepDistance float64       `mapstructure:"step_distance"`
	PosePeriod   time.Duration `mapstructure:"pose_period"`
	FallPause    time.Duration `mapstructure:"fall_pause"`
	RiddleDelay  time.Duration `mapstructure:"riddle_delay"`
	Notice       time.Duration `mapstructure:"notice"`
	Frame        time.Duration `mapstructure:"frame"`
}

type Log struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

type SSH struct {
	Addr        string `mapstructure:"addr"`
	HostKey     string `mapstructure:"host_key"`
	MaxSessions int    `mapstructure:"max_sessions"`
}

// Config is the full set of settings.
type Config struct {
	RiddlesFile    string `mapstructure:"riddles_file"` // empty uses the embedded riddles
	MaxLight       int    `mapstructure:"max_light"`
	Timing         Timing `mapstructure:"timing"`
	Log            Log    `mapstructure:"log"`
	Sound          bool   `mapstructure:"sound"`
	SSH            SSH    `mapstructure:"ssh"`
	CertificateDir string `mapstructure:"certificate_dir"`
}

// Default returns the built-in settings.
func Default() Config {
	t := anim.DefaultTiming()
	o := bridge.DefaultOptions()
	return Config{
		MaxLight: o.MaxLight,
		Timing: Timing{
			Walk:         t.Walk,
			StepDistance: t.StepDistance,
			PosePeriod:   t.PosePeriod,
			FallPause:    t.FallPause,
			RiddleDelay:  o.RiddleDelay,
			Notice:       o.NoticeDuration,
			Frame:        anim.DefaultFrameInterval,
		},
		Log: Log{
			Level: "info",
		},
		Sound: true,
		SSH: SSH{
			Addr:        ":2222",
			HostKey:     ".ssh/riddle_bridge_host_key",
			MaxSessions: 16,
		},
		CertificateDir: ".",
	}
}

// SetDefaults registers every key with its default on v, so that
// Unmarshal and environment overrides see the full key set.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("riddles_file", d.RiddlesFile)
	v.SetDefault("max_light", d.MaxLight)
	v.SetDefault("timing.walk", d.Timing.Walk)
	v.SetDefault("timing.step_distance", d.Timing.StepDistance)
	v.SetDefault("timing.pose_period", d.Timing.PosePeriod)
	v.SetDefault("timing.fall_pause", d.Timing.FallPause)
	v.SetDefault("timing.riddle_delay", d.Timing.RiddleDelay)
	v.SetDefault("timing.notice", d.Timing.Notice)
	v.SetDefault("timing.frame", d.Timing.Frame)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("sound", d.Sound)
	v.SetDefault("ssh.addr", d.SSH.Addr)
	v.SetDefault("ssh.host_key", d.SSH.HostKey)
	v.SetDefault("ssh.max_sessions", d.SSH.MaxSessions)
	v.SetDefault("certificate_dir", d.CertificateDir)
}

// New returns a viper instance with defaults, environment overrides and
// the config file search path set up. It does not read the file.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/riddle-bridge")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile reads path, or searches the default locations when path is
// empty. A missing file in the default locations is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.MaxLight < 1 {
		errs = append(errs, fmt.Errorf("max_light must be positive, got %d", c.MaxLight))
	}
	durations := []struct {
		key string
		d   time.Duration
	}{
		{"timing.walk", c.Timing.Walk},
		{"timing.pose_period", c.Timing.PosePeriod},
		{"timing.fall_pause", c.Timing.FallPause},
		{"timing.riddle_delay", c.Timing.RiddleDelay},
		{"timing.notice", c.Timing.Notice},
		{"timing.frame", c.Timing.Frame},
	}
	for _, d := range durations {
		if d.d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", d.key, d.d))
		}
	}
	if c.Timing.StepDistance <= 0 {
		errs = append(errs, fmt.Errorf("timing.step_distance must be positive, got %g", c.Timing.StepDistance))
	}
	if c.SSH.MaxSessions < 0 {
		errs = append(errs, fmt.Errorf("ssh.max_sessions must not be negative, got %d", c.SSH.MaxSessions))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// AnimTiming converts the timing keys for the sequencer.
func (c Config) AnimTiming() anim.Timing {
	t := anim.DefaultTiming()
	t.Walk = c.Timing.Walk
	t.StepDistance = c.Timing.StepDistance
	t.PosePeriod = c.Timing.PosePeriod
	t.FallPause = c.Timing.FallPause
	return t
}

// BridgeOptions converts the progression keys for the state machine.
func (c Config) BridgeOptions(logger *slog.Logger) bridge.Options {
	return bridge.Options{
		MaxLight:       c.MaxLight,
		RiddleDelay:    c.Timing.RiddleDelay,
		NoticeDuration: c.Timing.Notice,
		Logger:         logger,
	}
}

// ParseLevel maps a log level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return l, nil
}
