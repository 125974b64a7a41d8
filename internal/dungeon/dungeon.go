package dungeon

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/progress"
)

// Dungeon is the single-player record stored per user.
type Dungeon struct {
	CrawlID uint32
	Floor   Floor
	Player  component.Player

	Stats       progress.Stats
	TotalStats  progress.Stats
	Unlocked    progress.AchievementSet // earned this crawl, never in AllUnlocked
	AllUnlocked progress.AchievementSet
}

// Board returns the occupancy view over the floor and the player.
func (d *Dungeon) Board() *Board {
	return NewBoard(&d.Floor, &d.Player)
}

// Ledger returns a recorder that credits both the crawl and lifetime stats.
func (d *Dungeon) Ledger() progress.Ledger {
	return progress.Ledger{Crawl: &d.Stats, Total: &d.TotalStats}
}

// OnExit reports whether the player stands on the floor's exit.
func (d *Dungeon) OnExit() bool {
	return d.Floor.IsExit(d.Player.Pos)
}
