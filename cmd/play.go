package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"riddle-bridge/internal/audio"
	"riddle-bridge/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long:  `Starts a game in the current terminal. Press Esc or Ctrl-C to quit.`,
	RunE:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
	rootCmd.AddCommand(playCmd)
}

// addPlayFlags adds the local game flags to cmd. They are bound to config
// keys only when cmd is the one being run.
func addPlayFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Bool("sound", true, "play sound cues")
	fs.String("certificate-dir", "", "directory for crossing certificates")

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd.Flags(), map[string]string{
			"sound":           "sound",
			"certificate-dir": "certificate_dir",
		})
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	rt, err := loadEnv(v, false)
	if err != nil {
		return err
	}
	defer rt.Close()

	var sound audio.Player = audio.Silent{}
	if rt.cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			rt.log.Warn("sound disabled", "err", err)
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g := game.New(screen, rt.table, sessionOptions(rt, sound, rt.cfg.CertificateDir))
	return g.Run(ctx)
}

// sessionOptions builds one game session's settings from the config.
func sessionOptions(rt *appEnv, sound audio.Player, certDir string) game.Options {
	return game.Options{
		Timing:         rt.cfg.AnimTiming(),
		Bridge:         rt.cfg.BridgeOptions(rt.log),
		Frame:          rt.cfg.Timing.Frame,
		CertificateDir: certDir,
		Sound:          sound,
		Logger:         rt.log,
	}
}
