// Package session runs one connected player's terminal: it turns key presses
// into game commands, redraws the crawl after every change and shows alerts
// and emotes pushed by the game hub.
package session

import (
	"dungeon-crawl/internal/game"
	"dungeon-crawl/internal/render"
	"log/slog"

	"github.com/gdamore/tcell/v2"
)

// MaxMessages caps the per-session message log.
const MaxMessages = 50

// Session holds all per-player state for one connection.
type Session struct {
	Name     string
	Screen   tcell.Screen
	Renderer *render.Renderer
	Messages []string

	handler *game.Handler
	logger  *slog.Logger
	notices <-chan game.Notice
	stop    func()
}

// New subscribes name to the handler's hub. Call Close when the connection
// ends.
func New(name string, screen tcell.Screen, h *game.Handler, logger *slog.Logger) *Session {
	notices, stop := h.Hub().Subscribe(name)
	return &Session{
		Name:     name,
		Screen:   screen,
		Renderer: render.NewRenderer(screen),
		handler:  h,
		logger:   logger.With("player", name),
		notices:  notices,
		stop:     stop,
	}
}

// Close unsubscribes from the hub and releases the screen.
func (s *Session) Close() {
	s.stop()
	s.Screen.Fini()
}

// AddMessage appends a message to the session's log, capping at MaxMessages.
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)
	if len(s.Messages) > MaxMessages {
		s.Messages = s.Messages[len(s.Messages)-MaxMessages:]
	}
}

// notice turns a hub notice into log lines. It reports whether the screen
// needs a redraw.
func (s *Session) notice(n game.Notice) bool {
	switch n.Kind {
	case game.NoticeAlert:
		s.AddMessage("📣 " + n.Text)
	case game.NoticeEmote:
		if n.From == s.Name {
			s.AddMessage("You: " + n.Text)
		} else {
			s.AddMessage(n.From + ": " + n.Text)
		}
	case game.NoticeParty:
		return n.From != s.Name
	}
	return true
}
