package gamemap

import (
	"dungeon-crawl/internal/component"
	"testing"
)

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIsWalkable(t *testing.T) {
	m := New(5, 5)
	if !m.IsWalkable(2, 2) {
		t.Error("fresh map should be open floor")
	}
	m.Set(2, 2, MakeWall())
	if m.IsWalkable(2, 2) {
		t.Error("wall tile should not be walkable")
	}
	if m.IsWalkable(-1, 2) {
		t.Error("out of bounds should not be walkable")
	}
	if got := len(m.Walls()); got != 1 {
		t.Errorf("Walls() returned %d cells, want 1", got)
	}
}

func TestConnected(t *testing.T) {
	m := New(5, 5)
	if !m.Connected() {
		t.Fatal("open map should be connected")
	}
	// Seal column x=2 completely.
	for y := 0; y < 5; y++ {
		m.Set(2, y, MakeWall())
	}
	if m.Connected() {
		t.Fatal("map split by a full wall column should not be connected")
	}
	// Open one gap.
	m.Set(2, 4, MakeFloor())
	if !m.Connected() {
		t.Fatal("one gap should reconnect both halves")
	}
	if got := m.Reachable(component.Position{X: 2, Y: 0}).Size(); got != 0 {
		t.Errorf("Reachable from a wall = %d cells, want 0", got)
	}
}
