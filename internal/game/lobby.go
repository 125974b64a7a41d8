package game

import (
	"context"
	"dungeon-crawl/internal/dungeon"
	"dungeon-crawl/internal/store"
)

func (o *op) loadLobbies() (dungeon.LobbyList, error) {
	return store.ReadOr(o.ctx, o.h.store, store.LobbyListPath, dungeon.LobbyList{})
}

func (o *op) saveLobbies(list *dungeon.LobbyList) error {
	return store.WriteRecord(o.ctx, o.h.store, store.LobbyListPath, list)
}

func (h *Handler) createLobby(o *op) (Outcome, error) {
	list, err := o.loadLobbies()
	if err != nil {
		return Outcome{}, err
	}
	if busy, err := o.inParty(o.actor); err != nil {
		return Outcome{}, err
	} else if busy {
		return o.cancel("already in a party")
	}
	now := h.opts.Now().Unix()
	if n := list.Purge(now, int64(h.opts.LobbyTTL.Seconds())); n > 0 {
		h.logger.Info("expired lobbies purged", "count", n)
	}
	id := h.rng.Uint32()
	list.Put(&dungeon.Lobby{
		ID:        id,
		Owner:     o.actor,
		CreatedAt: now,
		Players:   []string{o.actor},
	})
	if err := o.saveLobbies(&list); err != nil {
		return Outcome{}, err
	}
	o.alert("%s created a party!", o.actor)

	actor := o.actor
	o.later = append(o.later, func() {
		h.opts.After(h.opts.LobbyTTL, func() {
			if _, err := h.Handle(context.Background(), actor, DeleteLobby{ID: &id}); err != nil {
				h.logger.Warn("lobby expiry failed", "owner", actor, "error", err)
			}
		})
	})
	return o.commit()
}

func (h *Handler) joinLobby(o *op, c JoinLobby) (Outcome, error) {
	list, err := o.loadLobbies()
	if err != nil {
		return Outcome{}, err
	}
	l, ok := list.Get(c.Owner)
	if !ok {
		return o.cancel("no such lobby")
	}
	if busy, err := o.inParty(o.actor); err != nil {
		return Outcome{}, err
	} else if busy {
		return o.cancel("already in a party")
	}
	l.Join(o.actor)
	if err := o.saveLobbies(&list); err != nil {
		return Outcome{}, err
	}
	o.notify(Notice{Kind: NoticeParty, From: o.actor, To: l.Players})
	return o.commit()
}

func (h *Handler) leaveLobby(o *op, c LeaveLobby) (Outcome, error) {
	list, err := o.loadLobbies()
	if err != nil {
		return Outcome{}, err
	}
	l, ok := list.Get(c.Owner)
	if !ok {
		return o.commit()
	}
	l.Leave(o.actor)
	if err := o.saveLobbies(&list); err != nil {
		return Outcome{}, err
	}
	o.notify(Notice{Kind: NoticeParty, From: o.actor, To: l.Players})
	return o.commit()
}

// deleteLobby removes the actor's lobby. With ID set, a lobby reopened under
// another id survives.
func (h *Handler) deleteLobby(o *op, c DeleteLobby) (Outcome, error) {
	list, err := o.loadLobbies()
	if err != nil {
		return Outcome{}, err
	}
	l, ok := list.Get(o.actor)
	if !ok {
		return o.commit()
	}
	if c.ID != nil && l.ID != *c.ID {
		return o.cancel("lobby was reopened")
	}
	list.Remove(o.actor)
	if err := o.saveLobbies(&list); err != nil {
		return Outcome{}, err
	}
	h.logger.Debug("lobby deleted", "owner", o.actor, "id", l.ID)
	return o.commit()
}
