// Package game is the command handler of the dungeon crawler. Each command
// loads the records it needs from a store.Store, runs the simulation against
// that snapshot, writes the result back and reports commit or cancel.
package game

import (
	"context"
	"dungeon-crawl/internal/store"
	"dungeon-crawl/internal/system"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"
)

// ErrUnknownCommand is returned by Handle for a Command type it does not know.
var ErrUnknownCommand = errors.New("game: unknown command")

// Status is the result of a command.
type Status uint8

const (
	Commit Status = iota // state was updated
	Cancel               // a precondition failed and nothing changed
)

func (s Status) String() string {
	if s == Commit {
		return "commit"
	}
	return "cancel"
}

// Outcome reports what a command did.
type Outcome struct {
	Status   Status
	Reason   string   // why the command was cancelled
	Messages []string // narration for the actor
	Alerts   []string // announcements broadcast to everyone
}

// Options tunes a Handler. Zero values pick the defaults.
type Options struct {
	Winter   bool
	LobbyTTL time.Duration
	// Now is the wall clock. Defaults to time.Now.
	Now func() time.Time
	// After schedules f to run once d has passed. Defaults to time.AfterFunc.
	After func(d time.Duration, f func())
	// HistoryDir receives crawls.jsonl. Empty disables the crawl history.
	HistoryDir string
}

// DefaultLobbyTTL is how long a lobby stays open.
const DefaultLobbyTTL = 10 * time.Minute

// Handler serializes commands against the store.
type Handler struct {
	mu      sync.Mutex
	store   store.Store
	rng     *rand.Rand
	logger  *slog.Logger
	hub     *Hub
	history *History
	opts    Options
}

// NewHandler returns a Handler persisting to st. rng must not be shared with
// other goroutines; the handler guards it with its own lock.
func NewHandler(st store.Store, rng *rand.Rand, logger *slog.Logger, opts Options) *Handler {
	if opts.LobbyTTL <= 0 {
		opts.LobbyTTL = DefaultLobbyTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.After == nil {
		opts.After = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	return &Handler{
		store:   st,
		rng:     rng,
		logger:  logger,
		hub:     NewHub(),
		history: NewHistory(opts.HistoryDir, logger),
		opts:    opts,
	}
}

// Hub returns the notice hub front ends subscribe to.
func (h *Handler) Hub() *Hub { return h.hub }

// op is the state of one command while it runs.
type op struct {
	ctx     context.Context
	h       *Handler
	actor   string
	journal system.Journal
	alerts  []string
	notices []Notice
	later   []func()
}

func (o *op) alert(format string, args ...any) {
	o.alerts = append(o.alerts, fmt.Sprintf(format, args...))
}

func (o *op) notify(n Notice) { o.notices = append(o.notices, n) }

func (o *op) logf(format string, args ...any) { o.journal.Logf(format, args...) }

func (o *op) cancel(reason string) (Outcome, error) {
	return Outcome{Status: Cancel, Reason: reason, Messages: o.journal.Messages}, nil
}

func (o *op) commit() (Outcome, error) {
	return Outcome{Status: Commit, Messages: o.journal.Messages, Alerts: o.alerts}, nil
}

// Handle runs cmd on behalf of actor. Precondition failures come back as a
// Cancel outcome; the error is reserved for store and generation failures.
func (h *Handler) Handle(ctx context.Context, actor string, cmd Command) (Outcome, error) {
	o := &op{ctx: ctx, h: h, actor: actor}

	h.mu.Lock()
	out, err := h.dispatch(o, cmd)
	h.mu.Unlock()

	if err != nil {
		h.logger.Error("command failed", "command", cmd.Name(), "player", actor, "error", err)
		return Outcome{}, err
	}
	h.logger.Debug("command handled", "command", cmd.Name(), "player", actor, "status", out.Status, "reason", out.Reason)
	if out.Status != Commit {
		return out, nil
	}
	for _, a := range o.alerts {
		h.hub.Publish(Notice{Kind: NoticeAlert, Text: a})
	}
	for _, n := range o.notices {
		h.hub.Publish(n)
	}
	for _, f := range o.later {
		f()
	}
	return out, nil
}

func (h *Handler) dispatch(o *op, cmd Command) (Outcome, error) {
	switch c := cmd.(type) {
	case CreateFloor:
		return h.createFloor(o, c)
	case MovePlayer:
		return h.movePlayer(o, c)
	case MoveMonsters:
		return h.moveMonsters(o, c)
	case DeleteDungeon:
		return h.deleteDungeon(o)
	case StartParty:
		return h.startParty(o)
	case ResetParty:
		return h.resetParty(o, c)
	case NextPartyFloor:
		return h.nextPartyFloor(o, c)
	case MovePartyPlayer:
		return h.movePartyPlayer(o, c)
	case DeleteParty:
		return h.deleteParty(o, c)
	case CreateLobby:
		return h.createLobby(o)
	case JoinLobby:
		return h.joinLobby(o, c)
	case LeaveLobby:
		return h.leaveLobby(o, c)
	case DeleteLobby:
		return h.deleteLobby(o, c)
	case Emote:
		return h.emote(o, c)
	}
	return Outcome{}, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
}
