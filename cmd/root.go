// Package cmd is the riddle-bridge command line.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"riddle-bridge/internal/config"
	"riddle-bridge/internal/logging"
	"riddle-bridge/internal/riddle"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	v       = config.New()
)

var rootCmd = &cobra.Command{
	Use:   "riddle-bridge",
	Short: "Cross a broken bridge over lava by answering riddles",
	Long: `The Riddle Bridge is a terminal game. Answer each riddle to walk one
step across the bridge, or sacrifice one of your lights to skip it. Run out
of light and you fall into the lava.

Without a subcommand it starts a local game.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.ReadFile(v, cfgFile)
	},
	RunE: runPlay,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./riddle-bridge.yaml or $HOME/.config/riddle-bridge/riddle-bridge.yaml)")
	pf.String("riddles", "", "YAML riddle file (default: built-in riddles)")
	pf.Int("max-light", 0, "starting light")
	pf.String("log-file", "", "write logs to this file")
	pf.String("log-level", "", "log level: debug, info, warn, error")

	cobra.CheckErr(bindFlags(pf, map[string]string{
		"riddles":   "riddles_file",
		"max-light": "max_light",
		"log-file":  "log.file",
		"log-level": "log.level",
	}))

	addPlayFlags(rootCmd)
}

// bindFlags ties flags to config keys. A flag only overrides its key when
// set on the command line.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	return nil
}

// appEnv is what every game command needs.
type appEnv struct {
	cfg    config.Config
	log    *slog.Logger
	closer io.Closer
	table  *riddle.Table
}

// loadEnv decodes the config and loads the riddles. logStderr sends
// logs to standard error when no log file is configured.
func loadEnv(vp *viper.Viper, logStderr bool) (*appEnv, error) {
	cfg, err := config.Load(vp)
	if err != nil {
		return nil, err
	}
	level, _ := config.ParseLevel(cfg.Log.Level)

	rt := &appEnv{cfg: cfg}
	if cfg.Log.File == "" && logStderr {
		rt.log = logging.Stderr(level)
	} else {
		rt.log, rt.closer, err = logging.New(cfg.Log.File, level)
		if err != nil {
			return nil, err
		}
	}

	rt.table, err = loadTable(cfg.RiddlesFile)
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.log.Info("riddles loaded", "count", rt.table.Len(), "file", cfg.RiddlesFile)
	return rt, nil
}

// Close releases the log file, if any.
func (rt *appEnv) Close() error {
	if rt.closer == nil {
		return nil
	}
	return rt.closer.Close()
}

func loadTable(path string) (*riddle.Table, error) {
	if path == "" {
		return riddle.Default()
	}
	t, err := riddle.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load riddles: %w", err)
	}
	return t, nil
}
