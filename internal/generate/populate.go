package generate

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/dungeon"
	"fmt"
	"math/rand"
)

// Config drives population of one floor.
type Config struct {
	Winter bool
	Party  bool // party floors spawn more monsters and treasure
	Rand   *rand.Rand
}

// Populate fills an empty floor on b: monsters and treasure (from the second
// floor on), then the exit key, then the obstacles. Each entity is placed on
// a free cell so nothing overlaps.
func Populate(b *dungeon.Board, cfg *Config) error {
	rng := cfg.Rand
	magic := b.Magic()

	if b.Number > 0 {
		table := MonsterTable(b.Theme, b.Number, cfg.Winter)
		n := 2 + magic/2
		if cfg.Party {
			n = 2 + magic
		}
		for range n {
			p, err := b.RandomFreeCell(rng, nil)
			if err != nil {
				return fmt.Errorf("place monster: %w", err)
			}
			b.Monsters = append(b.Monsters, component.NewMonster(PickMonster(table, rng), p))
		}

		n = magic + b.Number/2
		if cfg.Party {
			n = magic + b.Number*3/4
		}
		for i := range n {
			p, err := b.RandomFreeCell(rng, nil)
			if err != nil {
				return fmt.Errorf("place treasure: %w", err)
			}
			b.Treasures = append(b.Treasures, treasure(p, i == n-1, rng))
		}
	}

	key, err := placeKey(b, rng)
	if err != nil {
		return fmt.Errorf("place key: %w", err)
	}
	b.ExitKey = &key

	PlaceObstacles(b, rng)
	return nil
}

// treasure rolls a floor treasure. The last one placed is always a heal.
func treasure(p component.Position, last bool, rng *rand.Rand) component.Treasure {
	if last {
		return component.Treasure{Pos: p, Value: 2, Kind: component.TreasureHeal}
	}
	if rng.Intn(10) < 9 {
		return component.Treasure{Pos: p, Value: 1, Kind: component.TreasureGold}
	}
	return component.Treasure{Pos: p, Value: 10, Kind: component.TreasureGold}
}

// placeKey puts the key at least half the smaller dimension away from every
// player, relaxing the distance when the floor has no such free cell.
func placeKey(b *dungeon.Board, rng *rand.Rand) (component.Position, error) {
	minDist := min(b.Width, b.Height) / 2
	p, err := b.RandomFreeCell(rng, func(p component.Position) bool {
		for _, pl := range b.Players {
			if p.Manhattan(pl.Pos) < minDist {
				return false
			}
		}
		return true
	})
	if err == nil {
		return p, nil
	}
	return b.RandomFreeCell(rng, nil)
}

// PlaceObstacles lays a maze over the floor, skipping about a third of its
// walls and every occupied cell. One wall in ten uses the alternate look.
func PlaceObstacles(b *dungeon.Board, rng *rand.Rand) {
	for _, p := range Maze(b.Width, b.Height, rng) {
		if rng.Intn(3) == 0 {
			continue
		}
		if b.IsPositionOccupied(p) {
			continue
		}
		kind := component.WallA
		if rng.Intn(10) == 9 {
			kind = component.WallB
		}
		b.Obstacles = append(b.Obstacles, component.Obstacle{Pos: p, Kind: kind})
	}
}
