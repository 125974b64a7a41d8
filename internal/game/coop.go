package game

import (
	"context"
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/dungeon"
	"dungeon-crawl/internal/progress"
	"dungeon-crawl/internal/store"
	"dungeon-crawl/internal/system"
	"errors"
)

// ─── records ─────────────────────────────────────────────────────────────────

func (o *op) loadParty(id uint32) (p dungeon.Party, ok bool, err error) {
	p, err = store.ReadRequired[dungeon.Party](o.ctx, o.h.store, store.PartyPath(id))
	if errors.Is(err, store.ErrNotFound) {
		return p, false, nil
	}
	return p, err == nil, err
}

func (o *op) saveParty(p *dungeon.Party) error {
	if err := store.WriteRecord(o.ctx, o.h.store, store.PartyPath(p.CrawlID), p); err != nil {
		return err
	}
	o.notify(Notice{Kind: NoticeParty, From: o.actor, To: p.IDs()})
	return nil
}

// manifest returns the crawl id of the party player is in.
func (h *Handler) manifest(ctx context.Context, player string) (uint32, bool, error) {
	id, err := store.ReadRequired[uint32](ctx, h.store, store.ManifestPath(player))
	if errors.Is(err, store.ErrNotFound) {
		return 0, false, nil
	}
	return id, err == nil, err
}

// loadMember reads crawl id and checks the actor takes part in it.
func (o *op) loadMember(id uint32) (p dungeon.Party, reason string, err error) {
	p, ok, err := o.loadParty(id)
	if err != nil {
		return p, "", err
	}
	if !ok {
		return p, "no such party", nil
	}
	if !p.Has(o.actor) {
		return p, "not a participant", nil
	}
	return p, "", nil
}

// inParty reports whether player still takes part in a running crawl: their
// manifest names a party they belong to and their crawl has not ended.
func (o *op) inParty(player string) (bool, error) {
	id, ok, err := o.h.manifest(o.ctx, player)
	if err != nil || !ok {
		return false, err
	}
	p, ok, err := o.loadParty(id)
	if err != nil || !ok {
		return false, err
	}
	pc, ok := p.Players[player]
	return ok && !pc.Finalized, nil
}

// freshContext loads a member's lifetime records into a new crawl context.
func (o *op) freshContext(player string, hp int) (*dungeon.PlayerContext, error) {
	total, err := store.ReadOr(o.ctx, o.h.store, store.StatsPath(player), progress.Stats{})
	if err != nil {
		return nil, err
	}
	all, err := store.ReadOr(o.ctx, o.h.store, store.AchievementsPath(player), progress.NewAchievementSet())
	if err != nil {
		return nil, err
	}
	return &dungeon.PlayerContext{
		Player:      component.NewPlayer(component.Position{}, hp, PlayerStrength),
		TotalStats:  total,
		Unlocked:    progress.NewAchievementSet(),
		AllUnlocked: all,
	}, nil
}

// partyPlayers lists member players in id order.
func partyPlayers(p *dungeon.Party) []*component.Player {
	out := make([]*component.Player, 0, len(p.Players))
	for _, id := range p.IDs() {
		out = append(out, &p.Players[id].Player)
	}
	return out
}

// restart puts every member of p on a fresh first floor.
func (h *Handler) restart(o *op, p *dungeon.Party, members []string, hp int) error {
	p.Floor = newFloor(h.opts.Winter)
	p.Round = 0
	p.Players = make(map[string]*dungeon.PlayerContext, len(members))
	for _, id := range members {
		c, err := o.freshContext(id, hp)
		if err != nil {
			return err
		}
		p.Players[id] = c
	}
	if err := placePlayers(&p.Floor, partyPlayers(p), h.rng); err != nil {
		return err
	}
	return h.populate(p.Board(), true)
}

// ─── commands ────────────────────────────────────────────────────────────────

func (h *Handler) startParty(o *op) (Outcome, error) {
	list, err := store.ReadOr(o.ctx, h.store, store.LobbyListPath, dungeon.LobbyList{})
	if err != nil {
		return Outcome{}, err
	}
	lobby, ok := list.Get(o.actor)
	if !ok {
		return o.cancel("no lobby")
	}
	// Members who have since started another crawl stay with it.
	members := make([]string, 0, len(lobby.Players))
	for _, id := range lobby.Players {
		busy, err := o.inParty(id)
		if err != nil {
			return Outcome{}, err
		}
		if busy {
			if id == o.actor {
				return o.cancel("already in a party")
			}
			continue
		}
		members = append(members, id)
	}
	if len(members) < 2 {
		return o.cancel("not enough players")
	}

	p := dungeon.Party{Owner: o.actor, CrawlID: lobby.ID}
	if err := h.restart(o, &p, members, PartyHealth); err != nil {
		return Outcome{}, err
	}
	list.Remove(o.actor)
	if err := store.WriteRecord(o.ctx, h.store, store.LobbyListPath, list); err != nil {
		return Outcome{}, err
	}
	if err := o.saveParty(&p); err != nil {
		return Outcome{}, err
	}
	for _, id := range p.IDs() {
		if err := store.WriteRecord(o.ctx, h.store, store.ManifestPath(id), p.CrawlID); err != nil {
			return Outcome{}, err
		}
	}
	h.logger.Info("party started", "owner", o.actor, "crawl", p.CrawlID, "players", len(p.Players))
	o.logf("The party enters the dungeon.")
	return o.commit()
}

func (h *Handler) resetParty(o *op, c ResetParty) (Outcome, error) {
	p, reason, err := o.loadMember(c.CrawlID)
	if err != nil {
		return Outcome{}, err
	}
	if reason != "" {
		return o.cancel(reason)
	}
	if err := h.restart(o, &p, p.IDs(), SoloHealth); err != nil {
		return Outcome{}, err
	}
	if err := o.saveParty(&p); err != nil {
		return Outcome{}, err
	}
	o.logf("The party starts over.")
	return o.commit()
}

func (h *Handler) nextPartyFloor(o *op, c NextPartyFloor) (Outcome, error) {
	p, reason, err := o.loadMember(c.CrawlID)
	if err != nil {
		return Outcome{}, err
	}
	if reason != "" {
		return o.cancel(reason)
	}
	me := p.Players[o.actor]
	if !me.Player.Alive() {
		return o.cancel("player is dead")
	}
	if !p.Floor.IsExit(me.Player.Pos) {
		return o.cancel("not at the exit")
	}

	advanceFloor(&p.Floor, h.rng, h.opts.Winter)
	p.Round = 0
	for _, id := range p.IDs() {
		pc := p.Players[id]
		pc.NextRound = 0
		if !pc.Player.Alive() {
			pc.Player.Health.Current = 1
		}
		pc.Ledger().Record(progress.FloorsCleared, 1)
		o.unlockFloor(id, &pc.Unlocked, pc.AllUnlocked, &pc.Stats, &pc.TotalStats)
	}
	if err := placePlayers(&p.Floor, partyPlayers(&p), h.rng); err != nil {
		return Outcome{}, err
	}
	if err := h.populate(p.Board(), true); err != nil {
		return Outcome{}, err
	}
	if err := o.saveParty(&p); err != nil {
		return Outcome{}, err
	}
	o.logf("The party descends to floor %d.", p.Floor.Number+1)
	return o.commit()
}

func (h *Handler) movePartyPlayer(o *op, c MovePartyPlayer) (Outcome, error) {
	p, reason, err := o.loadMember(c.CrawlID)
	if err != nil {
		return Outcome{}, err
	}
	if reason != "" {
		return o.cancel(reason)
	}
	me := p.Players[o.actor]
	if !me.Player.Alive() {
		return o.cancel("player is dead")
	}
	if me.NextRound != p.Round {
		return o.cancel("already moved this round")
	}

	res := system.MovePlayer(p.Board(), &me.Player, me.Ledger(), c.Direction, system.StunParty, h.rng, &o.journal)
	if !res.Success() {
		return o.cancel(res.String())
	}
	me.NextRound++
	p.Floor.Turn++

	if err := h.settleRound(o, &p); err != nil {
		return Outcome{}, err
	}

	if err := o.saveParty(&p); err != nil {
		return Outcome{}, err
	}
	return o.commit()
}

// settleRound closes the round once every living member has acted, then
// finalizes the crawl for everyone when nobody is left standing.
func (h *Handler) settleRound(o *op, p *dungeon.Party) error {
	if p.AllMoved() && !p.AllDead() {
		var targets []system.Target
		for _, id := range p.IDs() {
			pc := p.Players[id]
			if pc.Player.Alive() {
				targets = append(targets, system.Target{Name: id, Player: &pc.Player, Rec: pc.Ledger()})
			}
		}
		system.MoveMonsters(p.Board(), targets, p.Round, h.rng, &o.journal)
		p.Round++
	}

	if !p.AllDead() {
		return nil
	}
	announced := false
	for _, id := range p.IDs() {
		pc := p.Players[id]
		if pc.Finalized {
			continue
		}
		if !announced {
			o.logf("The whole party has fallen on floor %d.", p.Floor.Number+1)
			announced = true
		}
		err := o.endCrawl(crawlEnd{
			player:      id,
			crawlID:     p.CrawlID,
			party:       true,
			floor:       p.Floor.Number,
			gold:        pc.Player.Gold,
			stats:       &pc.Stats,
			total:       &pc.TotalStats,
			unlocked:    &pc.Unlocked,
			allUnlocked: &pc.AllUnlocked,
		})
		if err != nil {
			return err
		}
		pc.Finalized = true
	}
	return nil
}

func (h *Handler) deleteParty(o *op, c DeleteParty) (Outcome, error) {
	p, reason, err := o.loadMember(c.CrawlID)
	if err != nil {
		return Outcome{}, err
	}
	if reason != "" {
		return o.cancel(reason)
	}

	if o.actor == p.Owner || len(p.Players) <= 2 {
		if err := store.DeleteRecord(o.ctx, h.store, store.PartyPath(p.CrawlID)); err != nil {
			return Outcome{}, err
		}
		for _, id := range p.IDs() {
			if err := store.DeleteRecord(o.ctx, h.store, store.ManifestPath(id)); err != nil {
				return Outcome{}, err
			}
		}
		o.notify(Notice{Kind: NoticeParty, From: o.actor, To: p.IDs()})
		o.logf("The party has disbanded.")
		h.logger.Info("party deleted", "crawl", p.CrawlID, "by", o.actor)
		return o.commit()
	}

	delete(p.Players, o.actor)
	if err := h.settleRound(o, &p); err != nil {
		return Outcome{}, err
	}
	if err := store.DeleteRecord(o.ctx, h.store, store.ManifestPath(o.actor)); err != nil {
		return Outcome{}, err
	}
	if err := o.saveParty(&p); err != nil {
		return Outcome{}, err
	}
	o.alert("%s left the party", o.actor)
	return o.commit()
}

func (h *Handler) emote(o *op, c Emote) (Outcome, error) {
	id, ok, err := h.manifest(o.ctx, o.actor)
	if err != nil {
		return Outcome{}, err
	}
	if !ok {
		return o.cancel("not in a party")
	}
	p, reason, err := o.loadMember(id)
	if err != nil {
		return Outcome{}, err
	}
	if reason != "" {
		return o.cancel(reason)
	}
	o.notify(Notice{Kind: NoticeEmote, From: o.actor, Text: c.Kind.Glyph(), To: p.IDs()})
	return o.commit()
}
