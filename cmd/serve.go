package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"riddle-bridge/internal/audio"
	"riddle-bridge/internal/game"
	"riddle-bridge/internal/ssh"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game over SSH",
	Long: `Starts an SSH server. Every connection plays its own game:

  ssh -t -p 2222 <host>

The host key is created on first start if it does not exist.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd.Flags(), map[string]string{
			"addr":         "ssh.addr",
			"host-key":     "ssh.host_key",
			"max-sessions": "ssh.max_sessions",
		})
	},
	RunE: runServe,
}

func init() {
	fs := serveCmd.Flags()
	fs.String("addr", "", "listen address (default :2222)")
	fs.String("host-key", "", "PEM host key path, generated if missing")
	fs.Int("max-sessions", 0, "maximum concurrent games, 0 for no limit")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	rt, err := loadEnv(v, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	signer, err := ssh.LoadOrCreateHostKey(rt.cfg.SSH.HostKey, rt.log)
	if err != nil {
		return err
	}

	var sessions atomic.Int64
	play := func(ctx context.Context, screen tcell.Screen) error {
		id := sessions.Add(1)
		opts := sessionOptions(rt, audio.Silent{}, "")
		opts.Logger = rt.log.With("session", id)
		opts.Bridge.Logger = opts.Logger
		return game.New(screen, rt.table, opts).Run(ctx)
	}
	srv := ssh.NewServer(rt.cfg.SSH.Addr, signer, rt.cfg.SSH.MaxSessions, play, rt.log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	rt.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		srv.Close()
	}
	return nil
}
