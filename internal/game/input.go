package game

import (
	"context"
	"dungeon-crawl/internal/component"
	"errors"
	"fmt"
	"strings"
)

// Action represents a player-requested action typed at a prompt.
type Action uint8

const (
	ActionNone Action = iota
	ActionNew
	ActionNext
	ActionMove
	ActionWait
	ActionQuit
	ActionHelp
	ActionStats
	ActionAchievements
	ActionLeaderboard
	ActionLobbies
	ActionLook
	ActionPartyCreate
	ActionPartyJoin
	ActionPartyLeave
	ActionPartyStart
	ActionPartyReset
	ActionPartyNext
	ActionPartyMove
	ActionPartyDelete
	ActionEmote
	ActionAbandon
)

// Input is one parsed prompt line.
type Input struct {
	Action    Action
	Direction component.Direction
	Arg       string // lobby owner for join and leave
	Emote     EmoteKind
}

// ErrBadInput is returned by ParseInput for lines it cannot understand.
var ErrBadInput = errors.New("bad input")

// keyToAction maps the single-word commands.
var keyToAction = map[string]Action{
	"":             ActionLook,
	"look":         ActionLook,
	"new":          ActionNew,
	"next":         ActionNext,
	"descend":      ActionNext,
	"wait":         ActionWait,
	".":            ActionWait,
	"quit":         ActionQuit,
	"exit":         ActionQuit,
	"q":            ActionQuit,
	"help":         ActionHelp,
	"?":            ActionHelp,
	"stats":        ActionStats,
	"achievements": ActionAchievements,
	"leaderboard":  ActionLeaderboard,
	"lobbies":      ActionLobbies,
	"abandon":      ActionAbandon,
}

// wasd are the one-letter moves accepted at the prompt. Other letters keep
// their key-binding meaning.
var wasd = map[string]component.Direction{
	"w": component.DirUp,
	"a": component.DirLeft,
	"s": component.DirDown,
	"d": component.DirRight,
}

var partyActions = map[string]Action{
	"create": ActionPartyCreate,
	"join":   ActionPartyJoin,
	"leave":  ActionPartyLeave,
	"start":  ActionPartyStart,
	"reset":  ActionPartyReset,
	"next":   ActionPartyNext,
	"move":   ActionPartyMove,
	"delete": ActionPartyDelete,
}

// ParseInput reads one prompt line.
func ParseInput(line string) (Input, error) {
	f := strings.Fields(strings.ToLower(line))
	if len(f) == 0 {
		return Input{Action: ActionLook}, nil
	}
	if len(f) == 1 {
		if a, ok := keyToAction[f[0]]; ok {
			return Input{Action: a}, nil
		}
		if d, ok := wasd[f[0]]; ok {
			return Input{Action: ActionMove, Direction: d}, nil
		}
	}

	switch f[0] {
	case "move", "go":
		if len(f) != 2 {
			return Input{}, fmt.Errorf("%w: move <up|down|left|right>", ErrBadInput)
		}
		d, ok := component.ParseDirection(f[1])
		if !ok {
			return Input{}, fmt.Errorf("%w: unknown direction %q", ErrBadInput, f[1])
		}
		return Input{Action: ActionMove, Direction: d}, nil
	case "emote":
		if len(f) != 2 {
			return Input{}, fmt.Errorf("%w: emote <love|anger|sob|thinking>", ErrBadInput)
		}
		k, ok := ParseEmote(f[1])
		if !ok {
			return Input{}, fmt.Errorf("%w: unknown emote %q", ErrBadInput, f[1])
		}
		return Input{Action: ActionEmote, Emote: k}, nil
	case "party":
		if len(f) < 2 {
			return Input{}, fmt.Errorf("%w: party <create|join|leave|start|reset|next|move|delete>", ErrBadInput)
		}
		a, ok := partyActions[f[1]]
		if !ok {
			return Input{}, fmt.Errorf("%w: unknown party command %q", ErrBadInput, f[1])
		}
		in := Input{Action: a}
		switch a {
		case ActionPartyJoin, ActionPartyLeave:
			if len(f) != 3 {
				return Input{}, fmt.Errorf("%w: party %s <owner>", ErrBadInput, f[1])
			}
			// owners are matched as typed
			in.Arg = strings.Fields(line)[2]
		case ActionPartyMove:
			if len(f) != 3 {
				return Input{}, fmt.Errorf("%w: party move <direction>", ErrBadInput)
			}
			d, ok := component.ParseDirection(f[2])
			if !ok {
				return Input{}, fmt.Errorf("%w: unknown direction %q", ErrBadInput, f[2])
			}
			in.Direction = d
		}
		return in, nil
	}
	return Input{}, fmt.Errorf("%w: %q", ErrBadInput, line)
}

// IsCommand reports whether the action changes game state.
func (a Action) IsCommand() bool {
	switch a {
	case ActionNone, ActionQuit, ActionHelp, ActionStats, ActionAchievements,
		ActionLeaderboard, ActionLobbies, ActionLook:
		return false
	}
	return true
}

// Resolve turns a state-changing input into a Command for actor. Plain moves
// and next go to the actor's party when they are in one. ok is false when
// the input needs a crawl the actor does not have.
func (h *Handler) Resolve(ctx context.Context, actor string, in Input) (cmd Command, ok bool, err error) {
	h.mu.Lock()
	crawl, inParty, err := h.manifest(ctx, actor)
	h.mu.Unlock()
	if err != nil {
		return nil, false, err
	}

	needParty := func(c Command) (Command, bool, error) { return c, inParty, nil }
	switch in.Action {
	case ActionNew:
		return CreateFloor{Reset: true}, true, nil
	case ActionAbandon:
		return DeleteDungeon{}, true, nil
	case ActionNext:
		if inParty {
			return NextPartyFloor{CrawlID: crawl}, true, nil
		}
		return CreateFloor{}, true, nil
	case ActionMove:
		if inParty {
			return MovePartyPlayer{CrawlID: crawl, Direction: in.Direction}, true, nil
		}
		return MovePlayer{Direction: in.Direction}, true, nil
	case ActionWait:
		// monsters in a party move with the round
		if inParty {
			return nil, false, nil
		}
		d, ok, err := h.Dungeon(ctx, actor)
		if err != nil || !ok {
			return nil, false, err
		}
		return MoveMonsters{CrawlID: d.CrawlID}, true, nil
	case ActionPartyCreate:
		return CreateLobby{}, true, nil
	case ActionPartyJoin:
		return JoinLobby{Owner: in.Arg}, true, nil
	case ActionPartyLeave:
		return LeaveLobby{Owner: in.Arg}, true, nil
	case ActionPartyStart:
		return StartParty{}, true, nil
	case ActionPartyReset:
		return needParty(ResetParty{CrawlID: crawl})
	case ActionPartyNext:
		return needParty(NextPartyFloor{CrawlID: crawl})
	case ActionPartyMove:
		return needParty(MovePartyPlayer{CrawlID: crawl, Direction: in.Direction})
	case ActionPartyDelete:
		return needParty(DeleteParty{CrawlID: crawl})
	case ActionEmote:
		return Emote{Kind: in.Emote}, true, nil
	}
	return nil, false, nil
}

// Help lists the prompt commands.
const Help = `commands:
  new                     start a new crawl
  w a s d | move <dir>    move or attack
  wait                    let the monsters act
  next                    descend when standing on the exit
  abandon                 delete your solo crawl
  stats | achievements | leaderboard | lobbies
  party create | join <owner> | leave <owner> | start
  party reset | next | move <dir> | delete
  emote love|anger|sob|thinking
  quit`
