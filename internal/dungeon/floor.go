// Package dungeon holds the world model: the entities on a floor and the pure
// queries every movement rule and spawn routine goes through.
package dungeon

import "dungeon-crawl/internal/component"

// Floor is the state shared by single-player and party crawls. At most one of
// ExitKey and Exit is non-nil.
type Floor struct {
	Theme     Theme
	Number    int // zero-based floor index within the crawl
	Turn      int
	Width     int
	Height    int
	Monsters  []component.Monster
	Treasures []component.Treasure
	Obstacles []component.Obstacle
	ExitKey   *component.Position
	Exit      *component.Position
}

// StartWidth and StartHeight are the dimensions of floor zero.
const (
	StartWidth  = 5
	StartHeight = 5
)

// IsOutOfBounds reports whether p lies outside the grid.
func (f *Floor) IsOutOfBounds(p component.Position) bool {
	return p.X < 0 || p.Y < 0 || p.X >= f.Width || p.Y >= f.Height
}

func (f *Floor) IsObstacle(p component.Position) bool {
	for i := range f.Obstacles {
		if f.Obstacles[i].Pos == p {
			return true
		}
	}
	return false
}

// IsMonster reports whether a living monster stands on p.
func (f *Floor) IsMonster(p component.Position) bool {
	return f.MonsterAt(p) >= 0
}

// MonsterAt returns the index of the living monster on p, or -1.
func (f *Floor) MonsterAt(p component.Position) int {
	for i := range f.Monsters {
		if f.Monsters[i].Pos == p && f.Monsters[i].Alive() {
			return i
		}
	}
	return -1
}

func (f *Floor) IsTreasure(p component.Position) bool {
	return f.TreasureAt(p) >= 0
}

// TreasureAt returns the index of the treasure on p, or -1.
func (f *Floor) TreasureAt(p component.Position) int {
	for i := range f.Treasures {
		if f.Treasures[i].Pos == p {
			return i
		}
	}
	return -1
}

func (f *Floor) IsExitKey(p component.Position) bool {
	return f.ExitKey != nil && *f.ExitKey == p
}

func (f *Floor) IsExit(p component.Position) bool {
	return f.Exit != nil && *f.Exit == p
}

// AllMonstersDefeated reports whether every monster on the floor has 0 health.
// A floor without monsters counts as cleared.
func (f *Floor) AllMonstersDefeated() bool {
	for i := range f.Monsters {
		if f.Monsters[i].Alive() {
			return false
		}
	}
	return true
}

// RemoveTreasure drops the treasure at index i.
func (f *Floor) RemoveTreasure(i int) {
	f.Treasures = append(f.Treasures[:i], f.Treasures[i+1:]...)
}

// Reset clears everything spawned on the floor ahead of the next one.
func (f *Floor) Reset() {
	f.Monsters = nil
	f.Treasures = nil
	f.Obstacles = nil
	f.ExitKey = nil
	f.Exit = nil
	f.Turn = 0
}

// Magic is the area-derived scale used by the spawn tables.
func (f *Floor) Magic() int {
	return ((f.Width - 1) * (f.Height - 1)) / 32
}
