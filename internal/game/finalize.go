package game

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/progress"
	"dungeon-crawl/internal/store"
)

// crawlEnd carries one player's records into the end-of-crawl bookkeeping.
type crawlEnd struct {
	player      string
	crawlID     uint32
	party       bool
	floor       int // zero-based floor the player died on
	gold        int
	stats       *progress.Stats
	total       *progress.Stats
	unlocked    *progress.AchievementSet
	allUnlocked *progress.AchievementSet
}

// endCrawl closes a crawl for one player: it counts the crawl, posts the
// leaderboards, saves lifetime stats and achievements, updates the shared
// rankings and appends the crawl history.
func (o *op) endCrawl(e crawlEnd) error {
	ctx, st := o.ctx, o.h.store
	progress.Ledger{Crawl: e.stats, Total: e.total}.Record(progress.CrawlsCompleted, 1)

	board, err := store.ReadOr(ctx, st, store.LeaderboardPath, progress.Leaderboard{})
	if err != nil {
		return err
	}
	steps := e.stats.Get(progress.StepsMoved)
	kills := e.stats.MonstersDefeated()
	gold := e.stats.Get(progress.GoldCollected)
	reached := e.stats.Get(progress.FloorsCleared) + 1
	if _, ok := board.Update(e.crawlID, progress.LeastSteps, e.player, steps); ok {
		o.alert("Player %s died after only %d steps! R.I.P.", e.player, steps)
	}
	if _, ok := board.Update(e.crawlID, progress.MostKills, e.player, kills); ok {
		o.alert("Player %s slayed %d monsters!", e.player, kills)
	}
	if _, ok := board.Update(e.crawlID, progress.MostGold, e.player, gold); ok {
		o.alert("Player %s amassed %d gold!", e.player, gold)
	}
	if _, ok := board.Update(e.crawlID, progress.HighestFloor, e.player, reached); ok {
		o.alert("Player %s reached floor %d!", e.player, reached)
	}
	if err := store.WriteRecord(ctx, st, store.LeaderboardPath, board); err != nil {
		return err
	}

	if err := store.WriteRecord(ctx, st, store.StatsPath(e.player), e.total); err != nil {
		return err
	}

	next, fresh := progress.Unlock(*e.unlocked, *e.allUnlocked, e.stats, e.total, true)
	*e.unlocked = next
	*e.allUnlocked = e.allUnlocked.Union(next)
	who := ""
	if e.party {
		who = e.player
	}
	o.announceUnlocks(who, fresh)
	if err := store.WriteRecord(ctx, st, store.AchievementsPath(e.player), *e.allUnlocked); err != nil {
		return err
	}

	floors, err := store.ReadOr(ctx, st, store.FloorRankingsPath, progress.Rankings{})
	if err != nil {
		return err
	}
	floors.Raise(e.player, reached)
	if err := store.WriteRecord(ctx, st, store.FloorRankingsPath, floors); err != nil {
		return err
	}
	yetis, err := store.ReadOr(ctx, st, store.YetiRankingsPath, progress.Rankings{})
	if err != nil {
		return err
	}
	yetis.Set(e.player, e.total.Kills(component.IceYeti))
	if err := store.WriteRecord(ctx, st, store.YetiRankingsPath, yetis); err != nil {
		return err
	}

	o.h.logger.Info("crawl ended", "player", e.player, "crawl", e.crawlID, "floor", reached, "party", e.party)
	o.h.history.Append(newCrawlRecord(e, o.h.opts.Now()))
	return nil
}
