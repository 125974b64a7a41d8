package game

import (
	"context"
	"dungeon-crawl/internal/dungeon"
	"dungeon-crawl/internal/progress"
	"dungeon-crawl/internal/store"
	"errors"
)

// Profile is a player's lifetime record.
type Profile struct {
	Stats        progress.Stats
	Achievements progress.AchievementSet
}

// Dungeon returns player's solo crawl.
func (h *Handler) Dungeon(ctx context.Context, player string) (dungeon.Dungeon, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	d, err := store.ReadRequired[dungeon.Dungeon](ctx, h.store, store.DungeonPath(player))
	if errors.Is(err, store.ErrNotFound) {
		return d, false, nil
	}
	return d, err == nil, err
}

// Party returns the party crawl player belongs to.
func (h *Handler) Party(ctx context.Context, player string) (dungeon.Party, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id, ok, err := h.manifest(ctx, player)
	if err != nil || !ok {
		return dungeon.Party{}, false, err
	}
	p, err := store.ReadRequired[dungeon.Party](ctx, h.store, store.PartyPath(id))
	if errors.Is(err, store.ErrNotFound) {
		return p, false, nil
	}
	return p, err == nil, err
}

func (h *Handler) Leaderboard(ctx context.Context) (progress.Leaderboard, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return store.ReadOr(ctx, h.store, store.LeaderboardPath, progress.Leaderboard{})
}

// Rankings returns the deepest floor and the yeti kill rankings.
func (h *Handler) Rankings(ctx context.Context) (floors, yetis progress.Rankings, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if floors, err = store.ReadOr(ctx, h.store, store.FloorRankingsPath, progress.Rankings{}); err != nil {
		return
	}
	yetis, err = store.ReadOr(ctx, h.store, store.YetiRankingsPath, progress.Rankings{})
	return
}

// Lobbies returns the open lobbies, expired ones excluded.
func (h *Handler) Lobbies(ctx context.Context) (dungeon.LobbyList, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	list, err := store.ReadOr(ctx, h.store, store.LobbyListPath, dungeon.LobbyList{})
	if err != nil {
		return list, err
	}
	list.Purge(h.opts.Now().Unix(), int64(h.opts.LobbyTTL.Seconds()))
	return list, nil
}

func (h *Handler) Profile(ctx context.Context, player string) (Profile, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	stats, err := store.ReadOr(ctx, h.store, store.StatsPath(player), progress.Stats{})
	if err != nil {
		return Profile{}, err
	}
	all, err := store.ReadOr(ctx, h.store, store.AchievementsPath(player), progress.NewAchievementSet())
	if err != nil {
		return Profile{}, err
	}
	return Profile{Stats: stats, Achievements: all}, nil
}
