package dungeon

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/progress"
	"slices"
)

// PlayerContext is one participant's share of a party crawl.
type PlayerContext struct {
	Player      component.Player
	Stats       progress.Stats
	TotalStats  progress.Stats
	Unlocked    progress.AchievementSet
	AllUnlocked progress.AchievementSet

	// NextRound is the round this player may act in next. A player whose
	// NextRound exceeds the party round has already moved.
	NextRound int
	// Finalized is set once the end-of-crawl bookkeeping has run for this
	// player, so it never runs twice.
	Finalized bool
}

func (c *PlayerContext) Ledger() progress.Ledger {
	return progress.Ledger{Crawl: &c.Stats, Total: &c.TotalStats}
}

// Party is a multiplayer crawl record.
type Party struct {
	Owner   string
	CrawlID uint32
	Floor   Floor
	Round   int
	Players map[string]*PlayerContext
}

// IDs returns the participant ids in a stable order.
func (p *Party) IDs() []string {
	ids := make([]string, 0, len(p.Players))
	for id := range p.Players {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Board returns the occupancy view with every living player on it. Dead
// players do not block cells.
func (p *Party) Board() *Board {
	b := NewBoard(&p.Floor)
	for _, id := range p.IDs() {
		if c := p.Players[id]; c.Player.Alive() {
			b.Players = append(b.Players, &c.Player)
		}
	}
	return b
}

// AllMoved reports whether every living player has acted this round.
func (p *Party) AllMoved() bool {
	for _, c := range p.Players {
		if c.Player.Alive() && c.NextRound <= p.Round {
			return false
		}
	}
	return true
}

// AllDead reports whether no participant has health left.
func (p *Party) AllDead() bool {
	for _, c := range p.Players {
		if c.Player.Alive() {
			return false
		}
	}
	return true
}

// Has reports whether id participates in the party.
func (p *Party) Has(id string) bool {
	_, ok := p.Players[id]
	return ok
}
