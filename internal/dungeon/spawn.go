package dungeon

import (
	"dungeon-crawl/internal/component"
	"errors"
	"math/rand"
)

// ErrNoFreeCell is returned when no unoccupied cell satisfies a placement rule.
var ErrNoFreeCell = errors.New("dungeon: no free cell")

const freeCellAttempts = 64

// RandomFreeCell picks an in-bounds, unoccupied cell for which accept returns
// true (a nil accept takes any free cell). It samples at random first and
// falls back to a uniform pick over an exhaustive scan, so a free cell is
// always found when one exists.
func (b *Board) RandomFreeCell(rng *rand.Rand, accept func(component.Position) bool) (component.Position, error) {
	ok := func(p component.Position) bool {
		return b.Free(p) && (accept == nil || accept(p))
	}
	if b.Width <= 0 || b.Height <= 0 {
		return component.Position{}, ErrNoFreeCell
	}
	for range freeCellAttempts {
		p := component.Position{X: rng.Intn(b.Width), Y: rng.Intn(b.Height)}
		if ok(p) {
			return p, nil
		}
	}
	var cands []component.Position
	for y := range b.Height {
		for x := range b.Width {
			if p := (component.Position{X: x, Y: y}); ok(p) {
				cands = append(cands, p)
			}
		}
	}
	if len(cands) == 0 {
		return component.Position{}, ErrNoFreeCell
	}
	return cands[rng.Intn(len(cands))], nil
}
