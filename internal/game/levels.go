package game

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/dungeon"
	"dungeon-crawl/internal/generate"
	"dungeon-crawl/internal/progress"
	"fmt"
	"math/rand"
)

// Starting stats for a solo crawler and a party member.
const (
	SoloHealth     = 8
	PartyHealth    = 10
	PlayerStrength = 1
)

// growEvery is how many floors pass between each +2/+2 growth of the grid.
const growEvery = 3

// newFloor returns the empty first floor of a crawl.
func newFloor(winter bool) dungeon.Floor {
	return dungeon.Floor{
		Theme:  generate.StartTheme(winter),
		Width:  dungeon.StartWidth,
		Height: dungeon.StartHeight,
	}
}

// advanceFloor clears f and turns it into the next floor.
func advanceFloor(f *dungeon.Floor, rng *rand.Rand, winter bool) {
	f.Reset()
	f.Number++
	f.Theme = generate.PickTheme(rng, winter)
	if f.Number%growEvery == 0 {
		f.Width += 2
		f.Height += 2
	}
}

// placePlayers puts each player on its own free cell of f, in order.
func placePlayers(f *dungeon.Floor, players []*component.Player, rng *rand.Rand) error {
	b := dungeon.NewBoard(f)
	for _, p := range players {
		pos, err := b.RandomFreeCell(rng, nil)
		if err != nil {
			return fmt.Errorf("place player: %w", err)
		}
		p.Pos = pos
		b.Players = append(b.Players, p)
	}
	return nil
}

func (h *Handler) populate(b *dungeon.Board, party bool) error {
	return generate.Populate(b, &generate.Config{
		Winter: h.opts.Winter,
		Party:  party,
		Rand:   h.rng,
	})
}

// unlockFloor runs the between-floors achievement evaluation and narrates
// anything new. who prefixes the message in a party.
func (o *op) unlockFloor(who string, unlocked *progress.AchievementSet, allTime progress.AchievementSet, crawl, total *progress.Stats) {
	next, fresh := progress.Unlock(*unlocked, allTime, crawl, total, false)
	*unlocked = next
	o.announceUnlocks(who, fresh)
}

func (o *op) announceUnlocks(who string, fresh progress.AchievementSet) {
	for _, name := range fresh.Names() {
		if who == "" {
			o.logf("Achievement unlocked: %s!", name)
		} else {
			o.logf("%s unlocked %s!", who, name)
		}
	}
}
