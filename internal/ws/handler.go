// Package ws exposes the game as a JSON websocket API. A client sends
// commands, receives an ack or reject per command followed by a fresh state
// snapshot, and gets alerts and emotes pushed as notices.
package ws

import (
	"context"
	"dungeon-crawl/internal/game"
	"encoding/json"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Handler upgrades HTTP requests and runs one websocket session per player.
type Handler struct {
	game     *game.Handler
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewHandler(g *game.Handler, logger *slog.Logger) *Handler {
	return &Handler{
		game:   g,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *nethttp.Request) bool {
				return true
			},
		},
	}
}

// conn serializes writes; gorilla allows a single concurrent writer.
type conn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *conn) writeJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %T: %w", v, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// Handle serves /ws. The id query parameter names the player; clients
// without one get an anonymous id, announced in the hello message.
func (h *Handler) Handle(w nethttp.ResponseWriter, r *nethttp.Request) {
	player := r.URL.Query().Get("id")
	if player == "" {
		player = uuid.NewString()
	}

	raw, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "player", player, "error", err)
		return
	}
	defer raw.Close()
	c := &conn{ws: raw}
	logger := h.logger.With("player", player, "transport", "ws")
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	notices, stop := h.game.Hub().Subscribe(player)
	defer stop()

	if err := c.writeJSON(helloMessage{Ver: ProtocolVersion, Type: "hello", Player: player}); err != nil {
		return
	}
	if err := h.sendState(ctx, c, player); err != nil {
		return
	}
	logger.Info("player connected")

	go func() {
		for n := range notices {
			if n.Kind == game.NoticeParty {
				if n.From == player {
					continue
				}
				if err := h.sendState(ctx, c, player); err != nil {
					cancel()
					return
				}
				continue
			}
			msg := noticeMessage{Ver: ProtocolVersion, Type: "notice", Kind: noticeKind(n.Kind), From: n.From, Text: n.Text}
			if err := c.writeJSON(msg); err != nil {
				cancel()
				return
			}
		}
	}()

	for {
		_, payload, err := raw.ReadMessage()
		if err != nil {
			logger.Info("player disconnected", "reason", err)
			return
		}
		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			logger.Debug("discarding malformed message", "error", err)
			continue
		}
		if err := h.handleMessage(ctx, c, player, msg); err != nil {
			logger.Warn("session ended", "error", err)
			return
		}
	}
}

func (h *Handler) handleMessage(ctx context.Context, c *conn, player string, msg clientMessage) error {
	reject := func(reason string, messages []string) error {
		return c.writeJSON(commandRejectMessage{Ver: ProtocolVersion, Type: "commandReject", Seq: msg.Seq, Reason: reason, Messages: messages})
	}

	switch msg.Type {
	case "state":
		return h.sendState(ctx, c, player)
	case "command":
	default:
		return reject("unknown message type", nil)
	}

	in, err := game.ParseInput(msg.line())
	if err != nil {
		return reject(err.Error(), nil)
	}
	if !in.Action.IsCommand() {
		return reject("not a command", nil)
	}
	cmd, ok, err := h.game.Resolve(ctx, player, in)
	if err != nil {
		h.logger.Error("resolve failed", "player", player, "error", err)
		return reject("internal error", nil)
	}
	if !ok {
		return reject("no crawl", nil)
	}
	out, err := h.game.Handle(ctx, player, cmd)
	if err != nil {
		return reject("internal error", nil)
	}
	if out.Status == game.Cancel {
		return reject(out.Reason, out.Messages)
	}
	if err := c.writeJSON(commandAckMessage{Ver: ProtocolVersion, Type: "commandAck", Seq: msg.Seq, Messages: out.Messages}); err != nil {
		return err
	}
	return h.sendState(ctx, c, player)
}

// line renders a structured command as a prompt line.
func (m clientMessage) line() string {
	if m.Line != "" {
		return m.Line
	}
	parts := []string{strings.ReplaceAll(m.Command, "_", " ")}
	for _, p := range []string{m.Direction, m.Emote, m.Arg} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func (h *Handler) sendState(ctx context.Context, c *conn, player string) error {
	if p, ok, err := h.game.Party(ctx, player); err != nil {
		return err
	} else if ok {
		return c.writeJSON(partyState(&p))
	}
	d, ok, err := h.game.Dungeon(ctx, player)
	if err != nil {
		return err
	}
	if !ok {
		return c.writeJSON(stateMessage{Ver: ProtocolVersion, Type: "state", Mode: "none"})
	}
	return c.writeJSON(soloState(player, &d))
}
