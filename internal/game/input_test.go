package game

import (
	"context"
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/store"
	"errors"
	"testing"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		line string
		want Input
	}{
		{"", Input{Action: ActionLook}},
		{"w", Input{Action: ActionMove, Direction: component.DirUp}},
		{"a", Input{Action: ActionMove, Direction: component.DirLeft}},
		{"S", Input{Action: ActionMove, Direction: component.DirDown}},
		{"d", Input{Action: ActionMove, Direction: component.DirRight}},
		{"move left", Input{Action: ActionMove, Direction: component.DirLeft}},
		{"  wait ", Input{Action: ActionWait}},
		{"q", Input{Action: ActionQuit}},
		{"next", Input{Action: ActionNext}},
		{"party create", Input{Action: ActionPartyCreate}},
		{"party join Bob", Input{Action: ActionPartyJoin, Arg: "Bob"}},
		{"party move down", Input{Action: ActionPartyMove, Direction: component.DirDown}},
		{"emote sob", Input{Action: ActionEmote, Emote: EmoteSob}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseInput(tt.line)
			if err != nil {
				t.Fatalf("ParseInput(%q): %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseInput(%q) = %+v; want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseInputErrors(t *testing.T) {
	for _, line := range []string{"move", "move sideways", "party", "party dance", "party join", "emote shrug", "fly", "n", "l", "e", "r", "u"} {
		if _, err := ParseInput(line); !errors.Is(err, ErrBadInput) {
			t.Errorf("ParseInput(%q) err = %v; want ErrBadInput", line, err)
		}
	}
}

func TestActionIsCommand(t *testing.T) {
	if ActionStats.IsCommand() || ActionQuit.IsCommand() {
		t.Error("queries reported as commands")
	}
	if !ActionMove.IsCommand() || !ActionPartyStart.IsCommand() {
		t.Error("commands reported as queries")
	}
}

func TestResolve(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	up := Input{Action: ActionMove, Direction: component.DirUp}

	cmd, ok, err := f.h.Resolve(ctx, "alice", up)
	if err != nil || !ok || cmd != (MovePlayer{Direction: component.DirUp}) {
		t.Errorf("solo move = %v %v %v", cmd, ok, err)
	}
	if _, ok, _ := f.h.Resolve(ctx, "alice", Input{Action: ActionPartyDelete}); ok {
		t.Error("party delete resolved without a party")
	}
	if _, ok, _ := f.h.Resolve(ctx, "alice", Input{Action: ActionWait}); ok {
		t.Error("wait resolved without a dungeon")
	}

	f.put(t, store.ManifestPath("alice"), uint32(42))
	cmd, ok, err = f.h.Resolve(ctx, "alice", up)
	if err != nil || !ok || cmd != (MovePartyPlayer{CrawlID: 42, Direction: component.DirUp}) {
		t.Errorf("party move = %v %v %v", cmd, ok, err)
	}
	cmd, _, _ = f.h.Resolve(ctx, "alice", Input{Action: ActionNext})
	if cmd != (NextPartyFloor{CrawlID: 42}) {
		t.Errorf("party next = %v", cmd)
	}
}

func TestResolveWaitInPartyLeavesSoloCrawl(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mustCommit(t, f.do(t, "alice", CreateFloor{Reset: true}))

	cmd, ok, err := f.h.Resolve(ctx, "alice", Input{Action: ActionWait})
	if err != nil || !ok {
		t.Fatalf("solo wait = %v %v %v", cmd, ok, err)
	}
	if _, isWait := cmd.(MoveMonsters); !isWait {
		t.Fatalf("solo wait = %T; want MoveMonsters", cmd)
	}

	f.put(t, store.ManifestPath("alice"), uint32(42))
	if cmd, ok, err := f.h.Resolve(ctx, "alice", Input{Action: ActionWait}); err != nil || ok {
		t.Errorf("wait in a party = %v %v %v; want not ok", cmd, ok, err)
	}
}
