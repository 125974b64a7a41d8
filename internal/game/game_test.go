package game

import (
	"context"
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/dungeon"
	"dungeon-crawl/internal/progress"
	"dungeon-crawl/internal/store"
	"dungeon-crawl/internal/store/mocks"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

type timer struct {
	d time.Duration
	f func()
}

type fixture struct {
	h      *Handler
	st     *store.Memory
	now    time.Time
	timers []timer
	dir    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		st:  store.NewMemory(),
		now: time.Date(2024, 12, 24, 18, 0, 0, 0, time.UTC),
		dir: t.TempDir(),
	}
	f.h = NewHandler(f.st, rand.New(rand.NewSource(1)), slog.New(slog.NewTextHandler(io.Discard, nil)), Options{
		Winter:     true,
		Now:        func() time.Time { return f.now },
		After:      func(d time.Duration, fn func()) { f.timers = append(f.timers, timer{d, fn}) },
		HistoryDir: f.dir,
	})
	return f
}

func (f *fixture) do(t *testing.T, actor string, cmd Command) Outcome {
	t.Helper()
	out, err := f.h.Handle(context.Background(), actor, cmd)
	if err != nil {
		t.Fatalf("%s %s: %v", actor, cmd.Name(), err)
	}
	return out
}

func (f *fixture) put(t *testing.T, path string, v any) {
	t.Helper()
	if err := store.WriteRecord(context.Background(), f.st, path, v); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func (f *fixture) dungeon(t *testing.T, player string) dungeon.Dungeon {
	t.Helper()
	d, ok, err := f.h.Dungeon(context.Background(), player)
	if err != nil || !ok {
		t.Fatalf("dungeon of %s: ok=%v err=%v", player, ok, err)
	}
	return d
}

func mustCommit(t *testing.T, out Outcome) {
	t.Helper()
	if out.Status != Commit {
		t.Fatalf("status = %v (%q); want commit", out.Status, out.Reason)
	}
}

func mustCancel(t *testing.T, out Outcome, reason string) {
	t.Helper()
	if out.Status != Cancel || out.Reason != reason {
		t.Fatalf("outcome = %v %q; want cancel %q", out.Status, out.Reason, reason)
	}
}

func contains(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// soloFloor is a bare 5×5 floor for hand-built scenarios.
func soloFloor(monsters ...component.Monster) dungeon.Floor {
	return dungeon.Floor{
		Theme:    dungeon.Castle,
		Width:    5,
		Height:   5,
		Monsters: monsters,
	}
}

func TestCreateFloorReset(t *testing.T) {
	f := newFixture(t)
	out := f.do(t, "alice", CreateFloor{Reset: true})
	mustCommit(t, out)
	if !contains(out.Alerts, "Player alice has entered the dungeon!") {
		t.Errorf("alerts = %v; want welcome", out.Alerts)
	}

	d := f.dungeon(t, "alice")
	if d.Player.Health.Current != SoloHealth || d.Player.Health.Max != SoloHealth {
		t.Errorf("health = %+v; want %d/%d", d.Player.Health, SoloHealth, SoloHealth)
	}
	if d.Floor.Number != 0 || d.Floor.Theme != dungeon.Arctic {
		t.Errorf("floor = %d %v; want 0 Arctic", d.Floor.Number, d.Floor.Theme)
	}
	if len(d.Floor.Monsters) != 0 {
		t.Errorf("first floor has %d monsters", len(d.Floor.Monsters))
	}
	if d.Floor.ExitKey == nil {
		t.Error("no exit key placed")
	}
	if d.Floor.IsOutOfBounds(d.Player.Pos) {
		t.Errorf("player at %v is off the floor", d.Player.Pos)
	}
}

func TestCreateFloorAdvancePreconditions(t *testing.T) {
	f := newFixture(t)
	mustCancel(t, f.do(t, "alice", CreateFloor{}), "no dungeon")

	f.put(t, store.DungeonPath("alice"), dungeon.Dungeon{
		Floor:  soloFloor(),
		Player: component.NewPlayer(component.Position{X: 0, Y: 0}, SoloHealth, 1),
	})
	mustCancel(t, f.do(t, "alice", CreateFloor{}), "not at the exit")
}

func TestCreateFloorAdvance(t *testing.T) {
	f := newFixture(t)
	exit := component.Position{X: 2, Y: 2}
	fl := soloFloor()
	fl.Exit = &exit
	f.put(t, store.DungeonPath("alice"), dungeon.Dungeon{
		CrawlID: 9,
		Floor:   fl,
		Player:  component.NewPlayer(exit, SoloHealth, 1),
	})

	mustCommit(t, f.do(t, "alice", CreateFloor{}))
	d := f.dungeon(t, "alice")
	if d.Floor.Number != 1 {
		t.Errorf("floor = %d; want 1", d.Floor.Number)
	}
	if d.Floor.Exit != nil {
		t.Error("exit survived the floor change")
	}
	if got := d.Stats.Get(progress.FloorsCleared); got != 1 {
		t.Errorf("FloorsCleared = %d; want 1", got)
	}
	if d.CrawlID != 9 {
		t.Errorf("crawl id changed to %d", d.CrawlID)
	}
	if d.Floor.MonsterAt(d.Player.Pos) >= 0 || d.Floor.IsObstacle(d.Player.Pos) {
		t.Error("something spawned on the player")
	}
}

func TestSoloDeathBookkeeping(t *testing.T) {
	f := newFixture(t)
	f.put(t, store.DungeonPath("alice"), dungeon.Dungeon{
		CrawlID:     7,
		Floor:       soloFloor(component.NewMonster(component.GreenGoblin, component.Position{X: 2, Y: 0})),
		Player:      component.NewPlayer(component.Position{X: 0, Y: 0}, 1, 1),
		Unlocked:    progress.NewAchievementSet(),
		AllUnlocked: progress.NewAchievementSet(),
	})

	out := f.do(t, "alice", MovePlayer{Direction: component.DirRight})
	mustCommit(t, out)
	if !contains(out.Messages, "You died on floor 1.") {
		t.Errorf("messages = %v", out.Messages)
	}
	if !contains(out.Alerts, "died after only 1 steps") {
		t.Errorf("alerts = %v; want a least-steps alert", out.Alerts)
	}

	ctx := context.Background()
	prof, err := f.h.Profile(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if got := prof.Stats.Get(progress.CrawlsCompleted); got != 1 {
		t.Errorf("CrawlsCompleted = %d; want 1", got)
	}
	if got := prof.Stats.DeathsBy(component.GreenGoblin); got != 1 {
		t.Errorf("deaths by goblin = %d; want 1", got)
	}

	board, err := f.h.Leaderboard(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range progress.LeaderboardKinds {
		top := board.Top(k)
		if len(top) != 1 || top[0].Name != "alice" || top[0].CrawlID != 7 {
			t.Errorf("%v board = %+v", k, top)
		}
	}
	floors, _, err := f.h.Rankings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if floors.Scores["alice"] != 1 {
		t.Errorf("floor ranking = %d; want 1", floors.Scores["alice"])
	}

	data, err := os.ReadFile(filepath.Join(f.dir, "crawls.jsonl"))
	if err != nil {
		t.Fatalf("crawl history not written: %v", err)
	}
	if !strings.Contains(string(data), `"cause_of_death":"Green Goblin"`) {
		t.Errorf("history = %s", data)
	}

	mustCancel(t, f.do(t, "alice", MovePlayer{Direction: component.DirLeft}), "player is dead")
}

func TestMovePlayerRejections(t *testing.T) {
	f := newFixture(t)
	mustCancel(t, f.do(t, "alice", MovePlayer{Direction: component.DirUp}), "no dungeon")

	f.put(t, store.DungeonPath("alice"), dungeon.Dungeon{
		CrawlID: 3,
		Floor:   soloFloor(),
		Player:  component.NewPlayer(component.Position{X: 0, Y: 0}, SoloHealth, 1),
	})
	mustCancel(t, f.do(t, "alice", MovePlayer{Direction: component.DirUp}), "blocked")
	mustCancel(t, f.do(t, "alice", MoveMonsters{CrawlID: 4}), "wrong crawl")
	mustCommit(t, f.do(t, "alice", MoveMonsters{CrawlID: 3}))
	if d := f.dungeon(t, "alice"); d.Floor.Turn != 1 {
		t.Errorf("turn = %d; want 1", d.Floor.Turn)
	}
}

func TestDeleteDungeonIdempotent(t *testing.T) {
	f := newFixture(t)
	mustCommit(t, f.do(t, "alice", CreateFloor{Reset: true}))
	mustCommit(t, f.do(t, "alice", DeleteDungeon{}))
	mustCommit(t, f.do(t, "alice", DeleteDungeon{}))
	if _, ok, _ := f.h.Dungeon(context.Background(), "alice"); ok {
		t.Error("dungeon still present")
	}
}

func TestUnknownCommand(t *testing.T) {
	f := newFixture(t)
	_, err := f.h.Handle(context.Background(), "alice", bogus{})
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("err = %v; want ErrUnknownCommand", err)
	}
}

type bogus struct{}

func (bogus) Name() string { return "bogus" }

func newMockHandler(t *testing.T) (*Handler, *mocks.MockStore) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockStore(ctrl)
	h := NewHandler(m, rand.New(rand.NewSource(1)), slog.New(slog.NewTextHandler(io.Discard, nil)), Options{})
	return h, m
}

func TestHandleReadErrorPropagates(t *testing.T) {
	h, m := newMockHandler(t)
	boom := errors.New("disk on fire")
	m.EXPECT().Read(gomock.Any(), store.DungeonPath("alice")).Return(nil, boom)

	_, err := h.Handle(context.Background(), "alice", MovePlayer{Direction: component.DirUp})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v; want %v", err, boom)
	}
}

func TestHandleWriteErrorPropagates(t *testing.T) {
	h, m := newMockHandler(t)
	boom := errors.New("read-only")
	m.EXPECT().Read(gomock.Any(), gomock.Any()).Return(nil, store.ErrNotFound).AnyTimes()
	m.EXPECT().Write(gomock.Any(), store.DungeonPath("alice"), gomock.Any()).Return(boom)

	_, err := h.Handle(context.Background(), "alice", CreateFloor{Reset: true})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v; want %v", err, boom)
	}
}

func TestCancelWritesNothing(t *testing.T) {
	h, m := newMockHandler(t)
	// No Write expectation: any write fails the test.
	m.EXPECT().Read(gomock.Any(), store.DungeonPath("alice")).Return(nil, store.ErrNotFound)

	out, err := h.Handle(context.Background(), "alice", CreateFloor{})
	if err != nil {
		t.Fatal(err)
	}
	mustCancel(t, out, "no dungeon")
}
