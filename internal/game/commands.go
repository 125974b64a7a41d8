package game

import "dungeon-crawl/internal/component"

// Command is one typed request the Handler understands.
type Command interface {
	Name() string
}

// CreateFloor starts a fresh solo crawl (Reset) or advances the actor's crawl
// to the next floor, which requires standing on the exit.
type CreateFloor struct {
	Reset bool
}

// MovePlayer moves the actor in their solo crawl. Monsters take their turn
// unless the actor lands on the exit.
type MovePlayer struct {
	Direction component.Direction
}

// MoveMonsters runs a monster turn in the actor's solo crawl without a player
// move, for example when the player waits.
type MoveMonsters struct {
	CrawlID uint32
}

// DeleteDungeon abandons the actor's solo crawl.
type DeleteDungeon struct{}

// StartParty turns the actor's lobby into a party crawl.
type StartParty struct{}

// ResetParty restarts a party crawl from its first floor.
type ResetParty struct {
	CrawlID uint32
}

// NextPartyFloor advances a party to the next floor once the actor reaches
// the exit. Dead members are revived with 1 health.
type NextPartyFloor struct {
	CrawlID uint32
}

// MovePartyPlayer is the actor's move for the current round of a party crawl.
type MovePartyPlayer struct {
	CrawlID   uint32
	Direction component.Direction
}

// DeleteParty removes the actor from a party, or disbands it when the actor
// owns it or only two members remain.
type DeleteParty struct {
	CrawlID uint32
}

// CreateLobby opens a lobby owned by the actor.
type CreateLobby struct{}

// JoinLobby adds the actor to Owner's lobby.
type JoinLobby struct {
	Owner string
}

// LeaveLobby removes the actor from Owner's lobby.
type LeaveLobby struct {
	Owner string
}

// DeleteLobby closes the actor's lobby. With ID set only that lobby is
// removed; a lobby the owner has reopened since keeps running.
type DeleteLobby struct {
	ID *uint32
}

// Emote broadcasts a reaction to the actor's party.
type Emote struct {
	Kind EmoteKind
}

func (CreateFloor) Name() string     { return "create_floor" }
func (MovePlayer) Name() string      { return "move_player" }
func (MoveMonsters) Name() string    { return "move_monsters" }
func (DeleteDungeon) Name() string   { return "delete_dungeon" }
func (StartParty) Name() string      { return "start_party" }
func (ResetParty) Name() string      { return "reset_party" }
func (NextPartyFloor) Name() string  { return "next_party_floor" }
func (MovePartyPlayer) Name() string { return "move_party_player" }
func (DeleteParty) Name() string     { return "delete_party" }
func (CreateLobby) Name() string     { return "create_lobby" }
func (JoinLobby) Name() string       { return "join_lobby" }
func (LeaveLobby) Name() string      { return "leave_lobby" }
func (DeleteLobby) Name() string     { return "delete_lobby" }
func (Emote) Name() string           { return "emote" }

// EmoteKind is one of the fixed party reactions.
type EmoteKind uint8

const (
	EmoteLove EmoteKind = iota
	EmoteAnger
	EmoteSob
	EmoteThinking
)

var emotes = [...]struct{ name, glyph string }{
	EmoteLove:     {"love", "❤️"},
	EmoteAnger:    {"anger", "💢"},
	EmoteSob:      {"sob", "😭"},
	EmoteThinking: {"thinking", "🤔"},
}

func (k EmoteKind) String() string {
	if int(k) < len(emotes) {
		return emotes[k].name
	}
	return "unknown"
}

// Glyph is the emoji shown for the emote.
func (k EmoteKind) Glyph() string {
	if int(k) < len(emotes) {
		return emotes[k].glyph
	}
	return "❓"
}

// ParseEmote accepts an emote name.
func ParseEmote(s string) (EmoteKind, bool) {
	for i, e := range emotes {
		if e.name == s {
			return EmoteKind(i), true
		}
	}
	return 0, false
}
