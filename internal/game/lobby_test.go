package game

import (
	"context"
	"dungeon-crawl/internal/dungeon"
	"testing"
	"time"
)

func TestLobbyCreateJoinLeave(t *testing.T) {
	f := newFixture(t)
	out := f.do(t, "alice", CreateLobby{})
	mustCommit(t, out)
	if !contains(out.Alerts, "alice created a party!") {
		t.Errorf("alerts = %v", out.Alerts)
	}
	if len(f.timers) != 1 || f.timers[0].d != DefaultLobbyTTL {
		t.Fatalf("timers = %v; want one expiry after %v", len(f.timers), DefaultLobbyTTL)
	}

	mustCommit(t, f.do(t, "bob", JoinLobby{Owner: "alice"}))
	mustCommit(t, f.do(t, "bob", JoinLobby{Owner: "alice"}))
	mustCancel(t, f.do(t, "carol", JoinLobby{Owner: "nobody"}), "no such lobby")

	list, err := f.h.Lobbies(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	l, ok := list.Get("alice")
	if !ok || len(l.Players) != 2 {
		t.Fatalf("lobby = %+v", l)
	}

	mustCommit(t, f.do(t, "bob", LeaveLobby{Owner: "alice"}))
	mustCommit(t, f.do(t, "bob", LeaveLobby{Owner: "nobody"}))
	list, _ = f.h.Lobbies(context.Background())
	if l, _ := list.Get("alice"); len(l.Players) != 1 {
		t.Errorf("players after leave = %v", l.Players)
	}
}

func TestLobbyExpiry(t *testing.T) {
	f := newFixture(t)
	mustCommit(t, f.do(t, "alice", CreateLobby{}))
	f.timers[0].f()

	list, _ := f.h.Lobbies(context.Background())
	if _, ok := list.Get("alice"); ok {
		t.Error("lobby survived its expiry")
	}
	// Already gone: the expiry is a no-op.
	f.timers[0].f()
}

func TestLobbyExpirySparesReopenedLobby(t *testing.T) {
	f := newFixture(t)
	// Closing and reopening within the same second.
	mustCommit(t, f.do(t, "alice", CreateLobby{}))
	mustCommit(t, f.do(t, "alice", DeleteLobby{}))
	mustCommit(t, f.do(t, "alice", CreateLobby{}))

	f.timers[0].f()
	list, _ := f.h.Lobbies(context.Background())
	if _, ok := list.Get("alice"); !ok {
		t.Fatal("stale expiry removed the newer lobby")
	}

	f.timers[1].f()
	list, _ = f.h.Lobbies(context.Background())
	if _, ok := list.Get("alice"); ok {
		t.Error("second expiry left the lobby")
	}
}

func TestDeleteLobbyByID(t *testing.T) {
	f := newFixture(t)
	mustCommit(t, f.do(t, "alice", CreateLobby{}))
	list, _ := f.h.Lobbies(context.Background())
	l, _ := list.Get("alice")

	other := l.ID + 1
	mustCancel(t, f.do(t, "alice", DeleteLobby{ID: &other}), "lobby was reopened")
	id := l.ID
	mustCommit(t, f.do(t, "alice", DeleteLobby{ID: &id}))
	mustCommit(t, f.do(t, "alice", DeleteLobby{ID: &id}))
}

func TestLobbyRejectsPlayersInAParty(t *testing.T) {
	f := newFixture(t)
	f.putParty(t, dungeon.Party{
		Owner: "alice",
		Floor: soloFloor(),
		Players: map[string]*dungeon.PlayerContext{
			"alice": member(0, 0, PartyHealth),
			"bob":   member(4, 4, PartyHealth),
		},
	})

	mustCancel(t, f.do(t, "alice", CreateLobby{}), "already in a party")
	mustCommit(t, f.do(t, "carol", CreateLobby{}))
	mustCancel(t, f.do(t, "bob", JoinLobby{Owner: "carol"}), "already in a party")

	// A finished crawl no longer holds bob.
	p := f.party(t, "bob")
	p.Players["bob"].Finalized = true
	f.putParty(t, p)
	mustCommit(t, f.do(t, "bob", JoinLobby{Owner: "carol"}))
}

func TestStartPartySkipsMembersAlreadyPlaying(t *testing.T) {
	f := newFixture(t)
	mustCommit(t, f.do(t, "carol", CreateLobby{}))
	mustCommit(t, f.do(t, "dave", JoinLobby{Owner: "carol"}))
	mustCommit(t, f.do(t, "erin", CreateLobby{}))
	mustCommit(t, f.do(t, "dave", JoinLobby{Owner: "erin"}))
	mustCommit(t, f.do(t, "erin", StartParty{}))

	mustCancel(t, f.do(t, "carol", StartParty{}), "not enough players")
	p := f.party(t, "dave")
	if p.Owner != "erin" || !p.Has("dave") {
		t.Fatalf("dave's party = owner %s members %v; want erin's", p.Owner, p.IDs())
	}
}

func TestCreateLobbyPurgesExpired(t *testing.T) {
	f := newFixture(t)
	mustCommit(t, f.do(t, "alice", CreateLobby{}))
	f.now = f.now.Add(DefaultLobbyTTL + time.Second)
	mustCommit(t, f.do(t, "bob", CreateLobby{}))

	list, _ := f.h.Lobbies(context.Background())
	if got := list.Owners(); len(got) != 1 || got[0] != "bob" {
		t.Errorf("owners = %v; want [bob]", got)
	}
}
