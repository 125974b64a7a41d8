package game

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/dungeon"
	"dungeon-crawl/internal/progress"
	"dungeon-crawl/internal/store"
	"dungeon-crawl/internal/system"
	"errors"
)

// loadDungeon reads the actor's solo crawl. ok is false when there is none.
func (o *op) loadDungeon() (d dungeon.Dungeon, ok bool, err error) {
	d, err = store.ReadRequired[dungeon.Dungeon](o.ctx, o.h.store, store.DungeonPath(o.actor))
	if errors.Is(err, store.ErrNotFound) {
		return d, false, nil
	}
	return d, err == nil, err
}

func (o *op) saveDungeon(d *dungeon.Dungeon) error {
	return store.WriteRecord(o.ctx, o.h.store, store.DungeonPath(o.actor), d)
}

func (h *Handler) createFloor(o *op, c CreateFloor) (Outcome, error) {
	var d dungeon.Dungeon
	if c.Reset {
		total, err := store.ReadOr(o.ctx, h.store, store.StatsPath(o.actor), progress.Stats{})
		if err != nil {
			return Outcome{}, err
		}
		all, err := store.ReadOr(o.ctx, h.store, store.AchievementsPath(o.actor), progress.NewAchievementSet())
		if err != nil {
			return Outcome{}, err
		}
		d = dungeon.Dungeon{
			CrawlID:     h.rng.Uint32(),
			Floor:       newFloor(h.opts.Winter),
			TotalStats:  total,
			Unlocked:    progress.NewAchievementSet(),
			AllUnlocked: all,
		}
		d.Player = component.NewPlayer(component.Position{
			X: h.rng.Intn(d.Floor.Width),
			Y: h.rng.Intn(d.Floor.Height),
		}, SoloHealth, PlayerStrength)
		if total.Get(progress.CrawlsCompleted) == 0 {
			o.alert("Player %s has entered the dungeon!", o.actor)
		}
		h.logger.Info("crawl started", "player", o.actor, "crawl", d.CrawlID)
	} else {
		var ok bool
		var err error
		d, ok, err = o.loadDungeon()
		if err != nil {
			return Outcome{}, err
		}
		if !ok {
			return o.cancel("no dungeon")
		}
		if !d.OnExit() {
			return o.cancel("not at the exit")
		}
		advanceFloor(&d.Floor, h.rng, h.opts.Winter)
		d.Ledger().Record(progress.FloorsCleared, 1)
		o.unlockFloor("", &d.Unlocked, d.AllUnlocked, &d.Stats, &d.TotalStats)
		o.logf("You descend to floor %d.", d.Floor.Number+1)
	}

	if err := h.populate(d.Board(), false); err != nil {
		return Outcome{}, err
	}
	if err := o.saveDungeon(&d); err != nil {
		return Outcome{}, err
	}
	return o.commit()
}

func (h *Handler) movePlayer(o *op, c MovePlayer) (Outcome, error) {
	d, ok, err := o.loadDungeon()
	if err != nil {
		return Outcome{}, err
	}
	if !ok {
		return o.cancel("no dungeon")
	}
	if !d.Player.Alive() {
		return o.cancel("player is dead")
	}

	res := system.MovePlayer(d.Board(), &d.Player, d.Ledger(), c.Direction, system.StunSolo, h.rng, &o.journal)
	if !res.Success() {
		return o.cancel(res.String())
	}
	if !d.OnExit() {
		h.monsterTurn(o, &d)
	}
	d.Floor.Turn++

	if err := o.settleDeath(&d); err != nil {
		return Outcome{}, err
	}
	if err := o.saveDungeon(&d); err != nil {
		return Outcome{}, err
	}
	return o.commit()
}

func (h *Handler) moveMonsters(o *op, c MoveMonsters) (Outcome, error) {
	d, ok, err := o.loadDungeon()
	if err != nil {
		return Outcome{}, err
	}
	if !ok {
		return o.cancel("no dungeon")
	}
	if d.CrawlID != c.CrawlID {
		return o.cancel("wrong crawl")
	}
	if !d.Player.Alive() {
		return o.cancel("player is dead")
	}

	h.monsterTurn(o, &d)
	d.Floor.Turn++

	if err := o.settleDeath(&d); err != nil {
		return Outcome{}, err
	}
	if err := o.saveDungeon(&d); err != nil {
		return Outcome{}, err
	}
	return o.commit()
}

func (h *Handler) monsterTurn(o *op, d *dungeon.Dungeon) {
	targets := []system.Target{{Player: &d.Player, Rec: d.Ledger()}}
	system.MoveMonsters(d.Board(), targets, d.Floor.Turn, h.rng, &o.journal)
}

// settleDeath runs the end-of-crawl bookkeeping when the player just died.
func (o *op) settleDeath(d *dungeon.Dungeon) error {
	if d.Player.Alive() {
		return nil
	}
	o.logf("You died on floor %d.", d.Floor.Number+1)
	return o.endCrawl(crawlEnd{
		player:      o.actor,
		crawlID:     d.CrawlID,
		floor:       d.Floor.Number,
		gold:        d.Player.Gold,
		stats:       &d.Stats,
		total:       &d.TotalStats,
		unlocked:    &d.Unlocked,
		allUnlocked: &d.AllUnlocked,
	})
}

func (h *Handler) deleteDungeon(o *op) (Outcome, error) {
	if err := store.DeleteRecord(o.ctx, h.store, store.DungeonPath(o.actor)); err != nil {
		return Outcome{}, err
	}
	return o.commit()
}
