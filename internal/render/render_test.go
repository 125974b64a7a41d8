package render

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/dungeon"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	ss.SetSize(w, h)
	t.Cleanup(ss.Fini)
	return ss
}

func TestCameraFrame(t *testing.T) {
	tests := []struct {
		name          string
		cx, cy        int
		width, height int
		wantX, wantY  int
	}{
		{"small floor pinned", 3, 3, 5, 5, 0, 0},
		{"centred", 20, 20, 40, 40, 15, 15},
		{"clamped right", 39, 39, 40, 40, 30, 30},
		{"clamped left", 0, 0, 40, 40, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(20, 10) // 10 world columns
			c.Frame(tt.cx, tt.cy, tt.width, tt.height)
			if c.OffsetX != tt.wantX || c.OffsetY != tt.wantY {
				t.Errorf("offset = (%d,%d); want (%d,%d)", c.OffsetX, c.OffsetY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestWorldToScreen(t *testing.T) {
	c := NewCamera(20, 10)
	if sx, sy, ok := c.WorldToScreen(3, 4); !ok || sx != 6 || sy != 4 {
		t.Errorf("WorldToScreen(3,4) = %d,%d,%v", sx, sy, ok)
	}
	if _, _, ok := c.WorldToScreen(10, 0); ok {
		t.Error("column past the view reported visible")
	}
}

func TestStatusLine(t *testing.T) {
	exit := component.Position{X: 1, Y: 1}
	d := dungeon.Dungeon{
		Floor:  dungeon.Floor{Theme: dungeon.IceCave, Number: 2, Turn: 14, Width: 5, Height: 5, Exit: &exit},
		Player: component.NewPlayer(exit, 8, 1),
	}
	d.Player.Gold = 120
	line := StatusLine(SoloView("alice", &d))
	for _, want := range []string{"HP: 8/8", "Gold: 120", "Floor 3 · Ice Cave", "Turn 14", "[>] descend"} {
		if !strings.Contains(line, want) {
			t.Errorf("status %q lacks %q", line, want)
		}
	}

	d.Player.Health.Current = 0
	if line := StatusLine(SoloView("alice", &d)); !strings.Contains(line, "You are dead") {
		t.Errorf("dead status = %q", line)
	}
}

func TestPartyLine(t *testing.T) {
	p := dungeon.Party{
		Round: 2,
		Floor: dungeon.Floor{Width: 5, Height: 5},
		Players: map[string]*dungeon.PlayerContext{
			"alice": {Player: component.NewPlayer(component.Position{}, 10, 1), NextRound: 3},
			"bob":   {Player: component.NewPlayer(component.Position{X: 1}, 0, 1)},
			"carol": {Player: component.NewPlayer(component.Position{X: 2}, 7, 1), NextRound: 2},
		},
	}
	v := PartyView("alice", &p)
	if got, want := PartyLine(v), "Party: alice 10✓  bob ☠  carol 7"; got != want {
		t.Errorf("PartyLine = %q; want %q", got, want)
	}
	if !strings.Contains(StatusLine(v), "Round 3 (waiting)") {
		t.Errorf("status = %q", StatusLine(v))
	}
	if PartyLine(View{Floor: &p.Floor}) != "" {
		t.Error("solo view has a party line")
	}
}

func TestDrawFrame(t *testing.T) {
	screen := newSimScreen(t, 40, 15)
	r := NewRenderer(screen)
	d := dungeon.Dungeon{
		Floor: dungeon.Floor{
			Theme:    dungeon.Castle,
			Width:    5,
			Height:   5,
			Monsters: []component.Monster{component.NewMonster(component.Zombie, component.Position{X: 4, Y: 4})},
		},
		Player: component.NewPlayer(component.Position{X: 2, Y: 1}, 8, 1),
	}
	r.DrawFrame(SoloView("alice", &d), []string{"hello"})

	if ch, _, _, _ := screen.GetContent(4, 1); ch != []rune(GlyphPlayer)[0] {
		t.Errorf("player cell = %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(0, 10); ch != '─' {
		t.Errorf("separator cell = %q", ch)
	}
}
