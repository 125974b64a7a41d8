package gamemap

import (
	"dungeon-crawl/internal/component"

	"github.com/zyedidia/generic/mapset"
)

// GameMap is the scratch grid the layout generator carves walls into.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
}

// New creates a GameMap filled with floor.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable()
}

// Walls returns every wall cell in row-major order.
func (m *GameMap) Walls() []component.Position {
	var out []component.Position
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.Tiles[y][x].Walkable() {
				out = append(out, component.Position{X: x, Y: y})
			}
		}
	}
	return out
}

// Reachable flood-fills walkable tiles from start and returns the visited set.
func (m *GameMap) Reachable(start component.Position) mapset.Set[component.Position] {
	visited := mapset.New[component.Position]()
	if !m.IsWalkable(start.X, start.Y) {
		return visited
	}
	queue := []component.Position{start}
	visited.Put(start)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range component.Directions {
			next := cur.Step(d)
			if !m.IsWalkable(next.X, next.Y) || visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return visited
}

// Connected reports whether every walkable tile can reach every other one.
// A map with no walkable tiles is trivially connected.
func (m *GameMap) Connected() bool {
	total := 0
	start := component.Position{X: -1, Y: -1}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x].Walkable() {
				if total == 0 {
					start = component.Position{X: x, Y: y}
				}
				total++
			}
		}
	}
	if total == 0 {
		return true
	}
	return m.Reachable(start).Size() == total
}
