package ssh

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// PlayFunc runs one game on screen until the player quits or ctx ends.
// It owns the screen and must finalize it.
type PlayFunc func(ctx context.Context, screen tcell.Screen) error

// Server hands every SSH connection its own game.
type Server struct {
	srv   *gossh.Server
	play  PlayFunc
	log   *slog.Logger
	slots chan struct{}
}

// NewServer creates a server on addr. maxSessions caps concurrent games;
// zero means no cap.
func NewServer(addr string, signer gossh.Signer, maxSessions int, play PlayFunc, log *slog.Logger) *Server {
	s := &Server{play: play, log: log}
	if maxSessions > 0 {
		s.slots = make(chan struct{}, maxSessions)
	}
	s.srv = &gossh.Server{
		Addr:    addr,
		Handler: s.handle,
		// Any client may request a PTY and no authentication is asked for.
		PtyCallback: func(gossh.Context, gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}
	return s
}

// ListenAndServe listens on the configured address.
func (s *Server) ListenAndServe() error {
	s.log.Info("ssh server listening", "addr", s.srv.Addr)
	return s.serveErr(s.srv.ListenAndServe())
}

// Serve accepts connections on l.
func (s *Server) Serve(l net.Listener) error {
	s.log.Info("ssh server listening", "addr", l.Addr().String())
	return s.serveErr(s.srv.Serve(l))
}

func (s *Server) serveErr(err error) error {
	if errors.Is(err, gossh.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting connections and waits for open ones to end or
// ctx to expire.
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }

// Close closes the listener and every connection.
func (s *Server) Close() error { return s.srv.Close() }

func (s *Server) acquire() bool {
	if s.slots == nil {
		return true
	}
	select {
	case s.slots <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s *Server) release() {
	if s.slots != nil {
		<-s.slots
	}
}

// handle runs for the lifetime of one connection.
func (s *Server) handle(sess gossh.Session) {
	log := s.log.With("remote", sess.RemoteAddr().String(), "user", sess.User())

	pty, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "The riddle bridge needs a terminal. Connect with: ssh -t <host>")
		log.Info("rejected session without pty")
		return
	}
	if !s.acquire() {
		fmt.Fprintln(sess, "The bridge is crowded. Try again later.")
		log.Warn("rejected session, server full")
		return
	}
	defer s.release()

	screen, err := newScreen(sess, pty, winCh)
	if err != nil {
		fmt.Fprintf(sess, "Terminal setup failed: %v\n", err)
		log.Error("terminal setup failed", "err", err)
		return
	}

	log.Info("session started", "term", pty.Term)
	if err := s.play(sess.Context(), screen); err != nil {
		log.Error("session failed", "err", err)
		return
	}
	log.Info("session ended")
}

// termMu serializes TERM lookups; tcell reads the terminal type from the
// process environment.
var termMu sync.Mutex

func newScreen(sess gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) (tcell.Screen, error) {
	term := pty.Term
	for _, env := range sess.Environ() {
		if v, ok := strings.CutPrefix(env, "TERM="); ok {
			term = v
			break
		}
	}
	if term == "" {
		term = "xterm-256color"
	}

	tty := NewSessionTty(sess, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}
