package generate

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/gamemap"
	"math/rand"
)

// minDivisible is the smallest region side that is still split by a wall.
const minDivisible = 4

// Maze returns the wall cells of a width×height recursive-division maze.
//
// Walls sit on odd rows and columns and passages on even ones, so a wall laid
// inside a sub-region can never seal the passage of the wall that created it.
// Every open cell of the returned layout is reachable from every other one,
// and removing any subset of the walls keeps it that way.
func Maze(width, height int, rng *rand.Rand) []component.Position {
	if width <= 0 || height <= 0 {
		return nil
	}
	m := gamemap.New(width, height)
	divide(m, rng, 0, 0, width, height)
	return m.Walls()
}

func divide(m *gamemap.GameMap, rng *rand.Rand, x, y, w, h int) {
	if w < minDivisible || h < minDivisible {
		return
	}
	if rng.Intn(2) == 0 {
		wy := y + 1 + 2*rng.Intn((h-3)/2+1)
		px := x + 2*rng.Intn((w-1)/2+1)
		for i := x; i < x+w; i++ {
			if i != px {
				m.Set(i, wy, gamemap.MakeWall())
			}
		}
		divide(m, rng, x, y, w, wy-y)
		divide(m, rng, x, wy+1, w, y+h-wy-1)
		return
	}
	wx := x + 1 + 2*rng.Intn((w-3)/2+1)
	py := y + 2*rng.Intn((h-1)/2+1)
	for i := y; i < y+h; i++ {
		if i != py {
			m.Set(wx, i, gamemap.MakeWall())
		}
	}
	divide(m, rng, x, y, wx-x, h)
	divide(m, rng, wx+1, y, x+w-wx-1, h)
}
