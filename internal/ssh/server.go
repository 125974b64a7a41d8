// Package ssh serves the game over SSH. Every connection gets a full-screen
// tcell terminal backed by its SSH channel and runs a session.Session; the
// SSH user name is the player identity.
package ssh

import (
	"context"
	"dungeon-crawl/internal/game"
	"dungeon-crawl/internal/session"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
)

// Server accepts SSH connections and runs a game session for each.
type Server struct {
	handler *game.Handler
	logger  *slog.Logger
	srv     *gossh.Server

	// termMu protects os.Setenv("TERM") around screen creation.
	termMu sync.Mutex
}

// NewServer returns a server for addr signed with signer.
func NewServer(addr string, signer gossh.Signer, h *game.Handler, logger *slog.Logger) *Server {
	s := &Server{handler: h, logger: logger}
	s.srv = &gossh.Server{
		Addr:    addr,
		Handler: s.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: the user name is the identity.
		HostSigners: []gossh.Signer{signer},
	}
	return s
}

func (s *Server) ListenAndServe() error {
	s.logger.Info("ssh server listening", "addr", s.srv.Addr)
	return s.srv.ListenAndServe()
}

// Shutdown stops accepting connections and waits for open ones until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// playerName derives the player identity for an SSH user.
func playerName(user string) string {
	if name := sanitizeName(user); name != "" {
		return name
	}
	return "guest-" + uuid.NewString()[:8]
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// for the duration of the connection so the SSH session stays open.
func (s *Server) handleSession(sess gossh.Session) {
	pty, winCh, hasPTY := sess.Pty()
	if !hasPTY {
		fmt.Fprintln(sess, "This game requires a PTY. Connect with: ssh -t <host>")
		return
	}
	name := playerName(sess.User())
	logger := s.logger.With("player", name, "remote", sess.RemoteAddr().String())

	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	tty := NewSessionTty(sess, pty, winCh)
	s.termMu.Lock()
	_ = os.Setenv("TERM", termFromEnv(sess.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	s.termMu.Unlock()
	if err != nil {
		logger.Warn("terminal setup failed", "error", err)
		fmt.Fprintf(sess, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		logger.Warn("screen init failed", "error", err)
		fmt.Fprintf(sess, "Screen init failed: %v\n", err)
		return
	}

	logger.Info("player connected")
	gs := session.New(name, screen, s.handler, logger)
	defer gs.Close()
	gs.Run(sess.Context())
	logger.Info("player disconnected")
}
